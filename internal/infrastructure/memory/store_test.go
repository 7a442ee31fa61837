package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

// tickingClock advances one second per call so records get distinct timestamps.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func seedEmployer(t *testing.T, s *Store, email string) (*entity.User, *entity.Company) {
	t.Helper()
	ctx := context.Background()
	u := &entity.User{Name: "Owner", Email: email, Password: "hash"}
	if err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	c := &entity.Company{Name: "Acme", OwnerID: u.ID}
	if err := s.Companies().Create(ctx, c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	return u, c
}

func addJob(t *testing.T, s *Store, companyID, title string, salary int) *entity.Job {
	t.Helper()
	j := &entity.Job{
		Title:          title,
		Description:    title + " role",
		Location:       "Remote",
		Salary:         salary,
		EmploymentType: entity.FullTime,
		JobType:        entity.Remote,
		CompanyID:      companyID,
	}
	if err := s.Jobs().Create(context.Background(), j); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

func TestUsers_EmailUnique(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Users().Create(ctx, &entity.User{Email: "a@x.io"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := s.Users().Create(ctx, &entity.User{Email: "a@x.io"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUsers_ConcurrentRegistrationHasOneWinner(t *testing.T) {
	s := New()
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		dups int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Users().Create(ctx, &entity.User{Email: "race@x.io"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, repository.ErrDuplicate):
				dups++
			}
		}()
	}
	wg.Wait()
	if wins != 1 || dups != 19 {
		t.Fatalf("expected 1 winner and 19 duplicates, got %d/%d", wins, dups)
	}
}

func TestUsers_NotFound(t *testing.T) {
	s := New()
	if _, err := s.Users().GetByID(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Users().GetByEmail(context.Background(), "no@x.io"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanies_OneOwnerOneCompany(t *testing.T) {
	s := New()
	u, _ := seedEmployer(t, s, "boss@x.io")

	err := s.Companies().Create(context.Background(), &entity.Company{Name: "Second", OwnerID: u.ID})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	err = s.Companies().Create(context.Background(), &entity.Company{Name: "Orphan", OwnerID: "nobody"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown owner, got %v", err)
	}
}

func TestCompanies_UpdateLogo(t *testing.T) {
	s := New()
	u, c := seedEmployer(t, s, "boss@x.io")
	ctx := context.Background()

	if err := s.Companies().UpdateLogo(ctx, c.ID, "https://cdn/logo.png"); err != nil {
		t.Fatalf("update logo: %v", err)
	}
	got, err := s.Companies().GetByOwner(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by owner: %v", err)
	}
	if got.Logo != "https://cdn/logo.png" {
		t.Errorf("logo not persisted: %q", got.Logo)
	}
	if err := s.Companies().UpdateLogo(ctx, "missing", "x"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJobs_CreateRequiresCompany(t *testing.T) {
	s := New()
	err := s.Jobs().Create(context.Background(), &entity.Job{Title: "x", CompanyID: "missing"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobs_GetByIDEmbedsCompany(t *testing.T) {
	s := New()
	_, c := seedEmployer(t, s, "boss@x.io")
	j := addJob(t, s, c.ID, "Go Developer", 90000)

	got, err := s.Jobs().GetByID(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Company == nil || got.Company.ID != c.ID {
		t.Fatalf("expected embedded company %s, got %+v", c.ID, got.Company)
	}
}

func TestJobs_ListNewestFirstAndFiltered(t *testing.T) {
	s := New().WithClock(tickingClock())
	_, c := seedEmployer(t, s, "boss@x.io")
	first := addJob(t, s, c.ID, "Backend Developer", 50000)
	second := addJob(t, s, c.ID, "Designer", 70000)
	third := addJob(t, s, c.ID, "Frontend Developer", 120000)

	all, err := s.Jobs().List(context.Background(), jobfilter.Predicate{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{third.ID, second.ID, first.ID}
	if len(all) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(all))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: got %s want %s", i, all[i].ID, id)
		}
	}

	lo, hi := 40000, 100000
	pred := jobfilter.Predicate{Text: "developer", MinSalary: &lo, MaxSalary: &hi}
	got, err := s.Jobs().List(context.Background(), pred)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(got) != 1 || got[0].ID != first.ID {
		t.Fatalf("expected only %s, got %+v", first.ID, got)
	}
}

func TestJobs_SuggestTitlesCapsAtLimit(t *testing.T) {
	s := New().WithClock(tickingClock())
	_, c := seedEmployer(t, s, "boss@x.io")
	for i := 0; i < 8; i++ {
		addJob(t, s, c.ID, fmt.Sprintf("Developer %d", i), 1000)
	}
	addJob(t, s, c.ID, "Accountant", 1000)

	got, err := s.Jobs().SuggestTitles(context.Background(), "DEV", 5)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	for _, sg := range got {
		if !jobfilter.ContainsFold(sg.Title, "dev") {
			t.Errorf("unexpected suggestion %q", sg.Title)
		}
	}
}

func TestSavedJobs_IdempotentSaveAndDelete(t *testing.T) {
	s := New().WithClock(tickingClock())
	u, c := seedEmployer(t, s, "boss@x.io")
	j1 := addJob(t, s, c.ID, "One", 1)
	j2 := addJob(t, s, c.ID, "Two", 2)
	ctx := context.Background()
	repo := s.SavedJobs()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, u.ID, j1.ID); err != nil {
			t.Fatalf("save j1: %v", err)
		}
	}
	if err := repo.Save(ctx, u.ID, j2.ID); err != nil {
		t.Fatalf("save j2: %v", err)
	}

	list, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 saved jobs, got %d", len(list))
	}
	if list[0].JobID != j2.ID || list[0].Job == nil || list[0].Job.Title != "Two" {
		t.Errorf("expected most recently saved first, got %+v", list[0])
	}

	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, u.ID, j1.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	list, _ = repo.ListByUser(ctx, u.ID)
	if len(list) != 1 {
		t.Fatalf("expected 1 saved job after delete, got %d", len(list))
	}

	if err := repo.Save(ctx, u.ID, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown job, got %v", err)
	}
}
