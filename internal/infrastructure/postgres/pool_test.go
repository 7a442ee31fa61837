package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-job-board/internal/domain/repository"
)

func TestMapErr(t *testing.T) {
	if mapErr(nil) != nil {
		t.Fatal("nil must stay nil")
	}
	if !errors.Is(mapErr(pgx.ErrNoRows), repository.ErrNotFound) {
		t.Error("no rows should map to ErrNotFound")
	}
	if !errors.Is(mapErr(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound) {
		t.Error("wrapped no rows should map to ErrNotFound")
	}

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !errors.Is(mapErr(dup), repository.ErrDuplicate) {
		t.Error("unique violation should map to ErrDuplicate")
	}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "saved_jobs_job_id_fkey"}
	if !errors.Is(mapErr(fk), repository.ErrNotFound) {
		t.Error("foreign key violation should map to ErrNotFound")
	}

	other := &pgconn.PgError{Code: "42P01"}
	got := mapErr(other)
	if errors.Is(got, repository.ErrDuplicate) || errors.Is(got, repository.ErrNotFound) {
		t.Errorf("unrelated error mapped to sentinel: %v", got)
	}
}
