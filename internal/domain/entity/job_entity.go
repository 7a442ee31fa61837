package entity

import (
	"math"
	"time"
)

// MaxSalary is the largest salary the jobs table can hold (INTEGER).
const MaxSalary = math.MaxInt32

type EmploymentType string

const (
	FullTime   EmploymentType = "full_time"
	PartTime   EmploymentType = "part_time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
)

type JobType string

const (
	Onsite JobType = "onsite"
	Remote JobType = "remote"
	Hybrid JobType = "hybrid"
)

// Job is a posting owned by a company. Salary is a yearly amount in whole currency units.
type Job struct {
	ID             string
	Title          string
	Description    string
	Location       string
	Salary         int
	EmploymentType EmploymentType
	JobType        JobType
	CompanyID      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Company is only populated by lookups that join the owning company.
	Company *Company
}

// JobSuggestion is the typeahead projection of a job.
type JobSuggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
