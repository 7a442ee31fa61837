// Package jobfilter turns sparse job-search parameters into a Predicate that
// each store renders in its own query language.
//
// Dimensions combine with AND; the free-text query matches title OR
// description. An absent parameter never narrows the result set.
package jobfilter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/pkg/apperror"
)

// Params are the raw query-string filters. Empty or blank values are absent.
type Params struct {
	EmploymentType string `form:"employmentType"`
	JobType        string `form:"jobType"`
	MinSalary      string `form:"minSalary"`
	MaxSalary      string `form:"maxSalary"`
	Q              string `form:"q"`
}

// Predicate is the structured filter. The zero value matches every job.
type Predicate struct {
	EmploymentType string
	JobType        string
	MinSalary      *int
	MaxSalary      *int
	Text           string
}

// Build validates p and returns its predicate. Salary bounds that are not
// whole numbers or fall outside the stored salary range are rejected with a
// validation error; min > max is allowed and matches nothing.
func Build(p Params) (Predicate, error) {
	pred := Predicate{
		EmploymentType: strings.TrimSpace(p.EmploymentType),
		JobType:        strings.TrimSpace(p.JobType),
		Text:           strings.TrimSpace(p.Q),
	}

	details := map[string]string{}
	if v, ok, err := parseBound(p.MinSalary); err != nil {
		details["minSalary"] = boundMessage(err)
	} else if ok {
		pred.MinSalary = &v
	}
	if v, ok, err := parseBound(p.MaxSalary); err != nil {
		details["maxSalary"] = boundMessage(err)
	} else if ok {
		pred.MaxSalary = &v
	}
	if len(details) > 0 {
		return Predicate{}, apperror.Validation("invalid salary filter", details)
	}
	return pred, nil
}

var errOutOfRange = errors.New("salary bound out of range")

func parseBound(raw string) (int, bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, errOutOfRange
		}
		return 0, false, err
	}
	if v < math.MinInt32 || v > entity.MaxSalary {
		return 0, false, errOutOfRange
	}
	return int(v), true, nil
}

func boundMessage(err error) string {
	if errors.Is(err, errOutOfRange) {
		return fmt.Sprintf("must be between %d and %d", math.MinInt32, entity.MaxSalary)
	}
	return "must be a whole number"
}

// IsEmpty reports whether the predicate is the universal match.
func (p Predicate) IsEmpty() bool {
	return p.EmploymentType == "" && p.JobType == "" &&
		p.MinSalary == nil && p.MaxSalary == nil && p.Text == ""
}

// Matches evaluates the predicate against a job in memory.
func (p Predicate) Matches(j *entity.Job) bool {
	if j == nil {
		return false
	}
	if p.EmploymentType != "" && string(j.EmploymentType) != p.EmploymentType {
		return false
	}
	if p.JobType != "" && string(j.JobType) != p.JobType {
		return false
	}
	if p.MinSalary != nil && j.Salary < *p.MinSalary {
		return false
	}
	if p.MaxSalary != nil && j.Salary > *p.MaxSalary {
		return false
	}
	if p.Text != "" && !ContainsFold(j.Title, p.Text) && !ContainsFold(j.Description, p.Text) {
		return false
	}
	return true
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
