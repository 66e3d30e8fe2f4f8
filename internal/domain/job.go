package domain

import "context"

// Job represents an open position listed on the public careers page.
type Job struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Department  string `gorm:"size:100;index" json:"department"`
	Location    string `gorm:"size:150" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	Vacancies   int    `gorm:"not null;default:1" json:"vacancies"`
}

// JobApplication represents one submission against a job. Resume holds the
// stored upload filename; ResumeURL is derived and never persisted.
type JobApplication struct {
	BaseModel
	JobID     uint   `gorm:"index;not null" json:"job_id"`
	Job       *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Name      string `gorm:"size:150;not null" json:"name"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`
	Resume    string `gorm:"size:255" json:"resume"`
	ResumeURL string `gorm:"-" json:"resume_url"`
	CoverNote string `gorm:"type:text" json:"cover_note"`
}

// JobRepository defines the data access interface for jobs.
type JobRepository interface {
	Repository[Job]
	GetBySlug(ctx context.Context, slug string) (*Job, error)
}

// JobApplicationRepository defines the data access interface for job applications.
type JobApplicationRepository interface {
	Repository[JobApplication]
}
