package entity

import "time"

// SavedJob records that a user bookmarked a job.
type SavedJob struct {
	UserID  string
	JobID   string
	SavedAt time.Time
	Job     *Job
}
