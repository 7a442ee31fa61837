package entity

import "time"

// Company is an employer profile. Each user owns at most one.
type Company struct {
	ID          string
	Name        string
	Description string
	Location    string
	Logo        string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
