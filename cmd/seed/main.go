package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-job-board/config"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	pginfra "github.com/oksasatya/go-job-board/internal/infrastructure/postgres"
	"github.com/oksasatya/go-job-board/internal/infrastructure/search"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

type seedJob struct {
	title, description, location string
	salary                       int
	employmentType, jobType      string
}

var demoJobs = []seedJob{
	{"Backend Developer", "Build Go services on PostgreSQL and Redis.", "Jakarta", 90000, "full_time", "hybrid"},
	{"Frontend Engineer", "Ship accessible React interfaces.", "Bandung", 75000, "full_time", "remote"},
	{"DevOps Intern", "Help run our devops pipelines and Kubernetes clusters.", "Jakarta", 12000, "internship", "onsite"},
	{"Data Analyst", "Own dashboards and weekly reporting.", "Surabaya", 60000, "part_time", "remote"},
	{"Security Consultant", "Six month contract reviewing our cloud posture.", "Remote", 110000, "contract", "remote"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	email := "employer@example.com"
	password := "password123"
	name := "Demo Employer"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
		RETURNING id
	`, name, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var companyID string
	err = pool.QueryRow(ctx, `
		INSERT INTO companies (name, description, location, owner_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, "Acme Labs", "A small product studio.", "Jakarta", userID).Scan(&companyID)
	if err != nil {
		log.Fatalf("failed to seed company: %v", err)
	}
	fmt.Printf("seeded company: id=%s\n", companyID)

	if err := seedJobs(ctx, pool, companyID); err != nil {
		log.Fatalf("failed to seed jobs: %v", err)
	}

	if err := reindex(ctx, cfg, pool); err != nil {
		log.Printf("search reindex skipped: %v", err)
	}
}

// seedJobs inserts each demo job unless the company already has one with the same title.
func seedJobs(ctx context.Context, pool *pgxpool.Pool, companyID string) error {
	for _, j := range demoJobs {
		tag, err := pool.Exec(ctx, `
			INSERT INTO jobs (title, description, location, salary, employment_type, job_type, company_id)
			SELECT $1, $2, $3, $4, $5, $6, $7
			WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE company_id = $7 AND title = $1)
		`, j.title, j.description, j.location, j.salary, j.employmentType, j.jobType, companyID)
		if err != nil {
			return fmt.Errorf("insert %q: %w", j.title, err)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("seeded job: %s\n", j.title)
		}
	}
	return nil
}

// reindex copies every stored job into the search index when Elasticsearch is configured.
func reindex(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
	es, err := helpers.NewESClient(helpers.ESOptions{
		Addrs:    cfg.ESAddrs(),
		Username: cfg.ElasticsearchUser,
		Password: cfg.ElasticsearchPass,
	})
	if err != nil {
		return err
	}
	if es == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	idx := search.NewJobIndex(es, cfg.ESJobsIndex)
	if err := idx.EnsureIndex(ctx); err != nil {
		return err
	}
	jobs, err := pginfra.NewJobRepository(pool).List(ctx, jobfilter.Predicate{})
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if err := idx.Index(ctx, j); err != nil {
			return err
		}
	}
	fmt.Printf("indexed %d jobs into %s\n", len(jobs), cfg.ESJobsIndex)
	return nil
}
