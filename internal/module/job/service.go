package job

import (
	"context"
	"strings"

	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/pkg"
)

// FileRemover deletes a stored upload. Removal is best-effort and never
// rolls back the surrounding write.
type FileRemover interface {
	Remove(name string)
}

// Service defines the business operations for job postings and their
// applications.
type Service interface {
	ListJobs(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Job], error)
	GetJob(ctx context.Context, id uint) (*domain.Job, error)
	GetJobBySlug(ctx context.Context, slug string) (*domain.Job, error)
	CreateJob(ctx context.Context, req CreateJobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, id uint, req UpdateJobRequest) (*domain.Job, error)
	SetStatus(ctx context.Context, id uint, status int) error
	DeleteJob(ctx context.Context, id uint) error
	DeleteJobPermanently(ctx context.Context, id uint) error
	RestoreJob(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)

	Apply(ctx context.Context, jobID uint, req ApplyRequest, resume string) (*domain.JobApplication, error)
	ListApplications(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.JobApplication], error)
	GetApplication(ctx context.Context, id uint) (*domain.JobApplication, error)
	DeleteApplication(ctx context.Context, id uint) error
	DeleteApplicationPermanently(ctx context.Context, id uint) error
	RestoreApplication(ctx context.Context, id uint) error
	BulkDeleteApplications(ctx context.Context, ids []uint) (int64, error)
	ApplicationStats(ctx context.Context) (*domain.Stats, error)
}

type jobService struct {
	repo         domain.JobRepository
	applications domain.JobApplicationRepository
	files        FileRemover
	assetBaseURL string
}

// NewService creates a job Service.
func NewService(repo domain.JobRepository, applications domain.JobApplicationRepository, files FileRemover, assetBaseURL string) Service {
	return &jobService{repo: repo, applications: applications, files: files, assetBaseURL: assetBaseURL}
}

func (s *jobService) ListJobs(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Job], error) {
	return s.repo.List(ctx, req)
}

func (s *jobService) GetJob(ctx context.Context, id uint) (*domain.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *jobService) GetJobBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// CreateJob inserts a posting. A caller-supplied slug that collides fails
// with a conflict; a derived slug gets a timestamp suffix instead.
func (s *jobService) CreateJob(ctx context.Context, req CreateJobRequest) (*domain.Job, error) {
	title := strings.TrimSpace(req.Title)

	slug, err := s.resolveSlug(ctx, req.Slug, title)
	if err != nil {
		return nil, err
	}

	vacancies := req.Vacancies
	if vacancies < 1 {
		vacancies = 1
	}

	record := &domain.Job{
		Title:       title,
		Slug:        slug,
		Department:  strings.TrimSpace(req.Department),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Vacancies:   vacancies,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateJob applies a partial update covering only the supplied fields.
func (s *jobService) UpdateJob(ctx context.Context, id uint, req UpdateJobRequest) (*domain.Job, error) {
	fields := domain.Fields{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "title cannot be empty", nil)
		}
		fields["title"] = title
	}
	if req.Slug != nil {
		slug := pkg.Slugify(*req.Slug)
		if slug == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "slug cannot be empty", nil)
		}
		fields["slug"] = slug
	}
	if req.Department != nil {
		fields["department"] = strings.TrimSpace(*req.Department)
	}
	if req.Location != nil {
		fields["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Vacancies != nil {
		fields["vacancies"] = *req.Vacancies
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *jobService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *jobService) DeleteJobPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *jobService) RestoreJob(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *jobService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *jobService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *jobService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *jobService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// Apply records a public application against an active posting.
func (s *jobService) Apply(ctx context.Context, jobID uint, req ApplyRequest, resume string) (*domain.JobApplication, error) {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	record := &domain.JobApplication{
		JobID:     jobID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Resume:    resume,
		CoverNote: req.CoverNote,
	}
	if err := s.applications.Create(ctx, record); err != nil {
		return nil, err
	}

	s.decorateApplication(record)
	return record, nil
}

func (s *jobService) ListApplications(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.JobApplication], error) {
	result, err := s.applications.List(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Items {
		s.decorateApplication(&result.Items[i])
	}
	return result, nil
}

func (s *jobService) GetApplication(ctx context.Context, id uint) (*domain.JobApplication, error) {
	record, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorateApplication(record)
	return record, nil
}

func (s *jobService) DeleteApplication(ctx context.Context, id uint) error {
	return s.applications.SoftDelete(ctx, id)
}

// DeleteApplicationPermanently removes the row and its stored resume file.
func (s *jobService) DeleteApplicationPermanently(ctx context.Context, id uint) error {
	record, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.applications.HardDelete(ctx, id); err != nil {
		return err
	}
	if record.Resume != "" {
		s.files.Remove(record.Resume)
	}
	return nil
}

func (s *jobService) RestoreApplication(ctx context.Context, id uint) error {
	return s.applications.Restore(ctx, id)
}

func (s *jobService) BulkDeleteApplications(ctx context.Context, ids []uint) (int64, error) {
	return s.applications.BulkSoftDelete(ctx, ids)
}

func (s *jobService) ApplicationStats(ctx context.Context) (*domain.Stats, error) {
	return s.applications.Stats(ctx)
}

// resolveSlug picks the slug for a new posting: an explicit request slug must
// be free, a derived one gets a timestamp suffix on collision.
func (s *jobService) resolveSlug(ctx context.Context, requested, title string) (string, error) {
	if requested != "" {
		slug := pkg.Slugify(requested)
		if slug == "" {
			return "", domain.NewAppError(domain.CodeValidation, "slug cannot be empty", nil)
		}
		taken, err := s.repo.Exists(ctx, "slug", slug, 0)
		if err != nil {
			return "", err
		}
		if taken {
			return "", domain.NewAppError(domain.CodeAlreadyExists, "job slug already exists", nil)
		}
		return slug, nil
	}

	slug := pkg.Slugify(title)
	if slug == "" {
		return "", domain.NewAppError(domain.CodeValidation, "title must contain at least one alphanumeric character", nil)
	}
	taken, err := s.repo.Exists(ctx, "slug", slug, 0)
	if err != nil {
		return "", err
	}
	if taken {
		slug = pkg.DisambiguateSlug(slug)
	}
	return slug, nil
}

func (s *jobService) decorateApplication(record *domain.JobApplication) {
	record.ResumeURL = pkg.AssetURL(s.assetBaseURL, record.Resume)
}
