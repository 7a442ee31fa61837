package search

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
)

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestBuildQuery_EmptyPredicateIsMatchAll(t *testing.T) {
	got := toJSON(t, BuildQuery(jobfilter.Predicate{}, 10))
	want := `{"query":{"match_all":{}},"size":10,"sort":[{"created_at":{"order":"desc"}}]}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestBuildQuery_OnlyPresentClauses(t *testing.T) {
	lo := 1000
	got := toJSON(t, BuildQuery(jobfilter.Predicate{JobType: "remote", MinSalary: &lo}, 5))
	want := `{"query":{"bool":{"filter":[{"term":{"job_type":"remote"}},{"range":{"salary":{"gte":1000}}}]}},` +
		`"size":5,"sort":[{"created_at":{"order":"desc"}}]}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestBuildQuery_TextAndFilters(t *testing.T) {
	lo, hi := 10, 20
	got := toJSON(t, BuildQuery(jobfilter.Predicate{
		EmploymentType: "contract",
		MinSalary:      &lo,
		MaxSalary:      &hi,
		Text:           "golang",
	}, 3))
	want := `{"query":{"bool":{"filter":[{"term":{"employment_type":"contract"}},{"range":{"salary":{"gte":10,"lte":20}}},` +
		`{"bool":{"minimum_should_match":1,"should":[` +
		`{"wildcard":{"title.raw":{"case_insensitive":true,"value":"*golang*"}}},` +
		`{"wildcard":{"description.raw":{"case_insensitive":true,"value":"*golang*"}}}]}}],` +
		`"should":[{"multi_match":{"fields":["title^2","description"],"query":"golang"}}]}},"size":3}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestContainsTextEscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"c++":     "*c++*",
		"50%*off": `*50%\*off*`,
		"what?":   `*what\?*`,
		`a\b`:     `*a\\b*`,
	}
	for text, want := range cases {
		q := containsText(text)
		should := q["bool"].(map[string]any)["should"].([]any)
		for _, c := range should {
			for field, v := range c.(map[string]any)["wildcard"].(map[string]any) {
				got := v.(map[string]any)["value"]
				if got != want {
					t.Errorf("%q on %s: got %q, want %q", text, field, got, want)
				}
			}
		}
	}
}

func TestIndexMappingKeepsRawText(t *testing.T) {
	props := indexMapping["mappings"].(map[string]any)["properties"].(map[string]any)
	for _, f := range []string{"title", "description"} {
		fields, ok := props[f].(map[string]any)["fields"].(map[string]any)
		if !ok || fields["raw"] == nil {
			t.Errorf("%s has no raw keyword subfield", f)
		}
	}
}

func TestDocumentRoundTripKeepsFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	j := &entity.Job{
		ID: "j1", Title: "Go", Description: "d", Location: "Berlin", Salary: 42,
		EmploymentType: entity.PartTime, JobType: entity.Hybrid, CompanyID: "c1",
		CreatedAt: now, UpdatedAt: now,
	}
	back := toDocument(j).toEntity()
	if *back != *j {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, j)
	}
}
