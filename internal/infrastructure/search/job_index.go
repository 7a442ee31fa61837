// Package search keeps an Elasticsearch index of job postings.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
)

const requestTimeout = 3 * time.Second

// rawLimit is the longest value kept in a keyword subfield; Lucene caps terms
// at 32766 bytes and a rune takes up to four.
const rawLimit = 8191

func textWithRaw() map[string]any {
	return map[string]any{
		"type":   "text",
		"fields": map[string]any{"raw": map[string]any{"type": "keyword", "ignore_above": rawLimit}},
	}
}

// JobDocument is the indexed shape of a job.
type JobDocument struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Salary         int       `json:"salary"`
	EmploymentType string    `json:"employment_type"`
	JobType        string    `json:"job_type"`
	CompanyID      string    `json:"company_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toDocument(j *entity.Job) JobDocument {
	return JobDocument{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		Salary:         j.Salary,
		EmploymentType: string(j.EmploymentType),
		JobType:        string(j.JobType),
		CompanyID:      j.CompanyID,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func (d JobDocument) toEntity() *entity.Job {
	return &entity.Job{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		Location:       d.Location,
		Salary:         d.Salary,
		EmploymentType: entity.EmploymentType(d.EmploymentType),
		JobType:        entity.JobType(d.JobType),
		CompanyID:      d.CompanyID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

var indexMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"id":              map[string]any{"type": "keyword"},
			"title":           textWithRaw(),
			"description":     textWithRaw(),
			"location":        map[string]any{"type": "text"},
			"salary":          map[string]any{"type": "integer"},
			"employment_type": map[string]any{"type": "keyword"},
			"job_type":        map[string]any{"type": "keyword"},
			"company_id":      map[string]any{"type": "keyword"},
			"created_at":      map[string]any{"type": "date"},
			"updated_at":      map[string]any{"type": "date"},
		},
	},
}

type JobIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewJobIndex(es *elasticsearch.Client, index string) *JobIndex {
	return &JobIndex{es: es, index: index}
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (x *JobIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.IndicesExistsRequest{Index: []string{x.index}}.Do(c, x.es)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	_ = res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	body, _ := json.Marshal(indexMapping)
	res, err = esapi.IndicesCreateRequest{Index: x.index, Body: bytes.NewReader(body)}.Do(c, x.es)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return fmt.Errorf("create index: %s", res.Status())
	}
	return nil
}

// Index upserts j into the index.
func (x *JobIndex) Index(ctx context.Context, j *entity.Job) error {
	b, err := json.Marshal(toDocument(j))
	if err != nil {
		return err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := esapi.IndexRequest{Index: x.index, DocumentID: j.ID, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, x.es)
	if err != nil {
		return fmt.Errorf("index job %s: %w", j.ID, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index job %s: %s", j.ID, res.Status())
	}
	return nil
}

// Search runs p against the index and returns at most size jobs.
func (x *JobIndex) Search(ctx context.Context, p jobfilter.Predicate, size int) ([]*entity.Job, error) {
	b, err := json.Marshal(BuildQuery(p, size))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search jobs: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source JobDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]*entity.Job, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.toEntity())
	}
	return out, nil
}

// BuildQuery renders p as a bool query. Every dimension is a filter; free
// text is a case-insensitive substring match on title or description, the
// same semantics as the stores. A multi_match should clause ranks text hits.
func BuildQuery(p jobfilter.Predicate, size int) map[string]any {
	var filter []any
	if p.EmploymentType != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"employment_type": p.EmploymentType}})
	}
	if p.JobType != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"job_type": p.JobType}})
	}
	if p.MinSalary != nil || p.MaxSalary != nil {
		rng := map[string]any{}
		if p.MinSalary != nil {
			rng["gte"] = *p.MinSalary
		}
		if p.MaxSalary != nil {
			rng["lte"] = *p.MaxSalary
		}
		filter = append(filter, map[string]any{"range": map[string]any{"salary": rng}})
	}

	if p.Text != "" {
		filter = append(filter, containsText(p.Text))
	}

	boolQ := map[string]any{}
	if len(filter) > 0 {
		boolQ["filter"] = filter
	}

	q := map[string]any{"size": size}
	if p.Text != "" {
		// scoring only; matching is decided by the substring filter
		boolQ["should"] = []any{map[string]any{
			"multi_match": map[string]any{
				"query":  p.Text,
				"fields": []string{"title^2", "description"},
			},
		}}
	} else {
		q["sort"] = []any{map[string]any{"created_at": map[string]any{"order": "desc"}}}
	}

	if len(boolQ) == 0 {
		q["query"] = map[string]any{"match_all": map[string]any{}}
	} else {
		q["query"] = map[string]any{"bool": boolQ}
	}
	return q
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// containsText matches documents whose raw title or description contains text.
func containsText(text string) map[string]any {
	pattern := "*" + wildcardEscaper.Replace(text) + "*"
	clause := func(field string) map[string]any {
		return map[string]any{"wildcard": map[string]any{
			field: map[string]any{"value": pattern, "case_insensitive": true},
		}}
	}
	return map[string]any{"bool": map[string]any{
		"should":               []any{clause("title.raw"), clause("description.raw")},
		"minimum_should_match": 1,
	}}
}
