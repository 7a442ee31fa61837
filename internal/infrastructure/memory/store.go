// Package memory is a process-local store used for development runs
// (STORE_DRIVER=memory) and as the repository fake in tests. It enforces the
// same uniqueness and reference constraints as the Postgres schema.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
)

type savedKey struct{ userID, jobID string }

type jobRecord struct {
	job entity.Job
	seq int64
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	seq int64

	users          map[string]entity.User
	usersByEmail   map[string]string
	companies      map[string]entity.Company
	companyByOwner map[string]string
	jobs           map[string]jobRecord
	saved          map[savedKey]time.Time
}

func New() *Store {
	return &Store{
		now:            time.Now,
		users:          make(map[string]entity.User),
		usersByEmail:   make(map[string]string),
		companies:      make(map[string]entity.Company),
		companyByOwner: make(map[string]string),
		jobs:           make(map[string]jobRecord),
		saved:          make(map[savedKey]time.Time),
	}
}

// WithClock replaces the timestamp source; used by tests to order records.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

func (s *Store) Users() *UserRepository         { return &UserRepository{s: s} }
func (s *Store) Companies() *CompanyRepository  { return &CompanyRepository{s: s} }
func (s *Store) Jobs() *JobRepository           { return &JobRepository{s: s} }
func (s *Store) SavedJobs() *SavedJobRepository { return &SavedJobRepository{s: s} }

// stamp must be called with mu held.
func (s *Store) stamp() (string, time.Time, int64) {
	s.seq++
	return uuid.NewString(), s.now().UTC(), s.seq
}

// sortNewest orders records by created time then insertion, newest first.
func sortNewest(recs []jobRecord) {
	sort.SliceStable(recs, func(i, k int) bool {
		a, b := recs[i], recs[k]
		if !a.job.CreatedAt.Equal(b.job.CreatedAt) {
			return a.job.CreatedAt.After(b.job.CreatedAt)
		}
		return a.seq > b.seq
	})
}
