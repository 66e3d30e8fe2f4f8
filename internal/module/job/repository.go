package job

import (
	"context"

	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the jobs table.
var resource = crud.Resource{
	Name:             "Job",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "title", "department", "location", "vacancies", "created_at", "updated_at"},
	FilterFields:     []string{"department", "location"},
	SearchFields:     []string{"title", "department", "location"},
	UniqueFields:     []string{"slug"},
	StatsGroupColumn: "department",
}

// applicationResource configures the query core for the job_applications table.
var applicationResource = crud.Resource{
	Name:             "Job application",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "name", "email", "job_id", "created_at", "updated_at"},
	FilterFields:     []string{"job_id"},
	SearchFields:     []string{"name", "email", "phone"},
	StatsGroupColumn: "job_id",
	Preloads:         []string{"Job"},
}

type jobRepository struct {
	*crud.Repository[domain.Job]
}

// NewJobRepository creates a JobRepository backed by the generic query core.
func NewJobRepository(db *gorm.DB) domain.JobRepository {
	return &jobRepository{crud.New[domain.Job](db, resource)}
}

// GetBySlug retrieves a job by its URL slug.
func (r *jobRepository) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	return r.GetBy(ctx, "slug", slug)
}

type applicationRepository struct {
	*crud.Repository[domain.JobApplication]
}

// NewApplicationRepository creates a JobApplicationRepository backed by the
// generic query core.
func NewApplicationRepository(db *gorm.DB) domain.JobApplicationRepository {
	return &applicationRepository{crud.New[domain.JobApplication](db, applicationResource)}
}
