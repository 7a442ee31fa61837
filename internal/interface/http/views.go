package handlers

import (
	"time"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
)

// userView is the public shape of a user; the password hash never leaves the service.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(u *entity.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

type companyView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCompanyView(c *entity.Company) *companyView {
	if c == nil {
		return nil
	}
	return &companyView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Logo:        c.Logo,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type jobView struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Location       string       `json:"location"`
	Salary         int          `json:"salary"`
	EmploymentType string       `json:"employment_type"`
	JobType        string       `json:"job_type"`
	CompanyID      string       `json:"company_id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Company        *companyView `json:"company,omitempty"`
	// Saved is only set for signed-in callers.
	Saved *bool `json:"saved,omitempty"`
}

func toJobView(j *entity.Job) jobView {
	return jobView{
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
		Company:        toCompanyView(j.Company),
	}
}

func toJobViews(jobs []*entity.Job) []jobView {
	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobView(j))
	}
	return out
}

// markSaved flags every view with whether its job is in saved.
func markSaved(views []jobView, saved map[string]bool) {
	for i := range views {
		v := saved[views[i].ID]
		views[i].Saved = &v
	}
}

type savedJobView struct {
	SavedAt time.Time `json:"saved_at"`
	Job     jobView   `json:"job"`
}
