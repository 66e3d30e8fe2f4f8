package city

import (
	"context"
	"strings"

	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/pkg"
)

// FileRemover deletes a stored upload. Removal of a superseded image is
// best-effort: a failure never rolls back the surrounding update.
type FileRemover interface {
	Remove(name string)
}

// Service defines the business operations for cities.
type Service interface {
	ListCities(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.City], error)
	GetCity(ctx context.Context, id uint) (*domain.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*domain.City, error)
	CreateCity(ctx context.Context, req CreateCityRequest, image string) (*domain.City, error)
	UpdateCity(ctx context.Context, id uint, req UpdateCityRequest, image string) (*domain.City, error)
	SetStatus(ctx context.Context, id uint, status int) error
	DeleteCity(ctx context.Context, id uint) error
	DeleteCityPermanently(ctx context.Context, id uint) error
	RestoreCity(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type cityService struct {
	repo         domain.CityRepository
	files        FileRemover
	assetBaseURL string
}

// NewService creates a city Service.
func NewService(repo domain.CityRepository, files FileRemover, assetBaseURL string) Service {
	return &cityService{repo: repo, files: files, assetBaseURL: assetBaseURL}
}

// ListCities returns a paginated list with derived image URLs.
func (s *cityService) ListCities(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.City], error) {
	result, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Items {
		s.decorate(&result.Items[i])
	}
	return result, nil
}

func (s *cityService) GetCity(ctx context.Context, id uint) (*domain.City, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(record)
	return record, nil
}

func (s *cityService) GetCityBySlug(ctx context.Context, slug string) (*domain.City, error) {
	record, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.decorate(record)
	return record, nil
}

// CreateCity inserts a city. A caller-supplied slug that collides fails with
// a conflict; a derived slug is disambiguated with a timestamp suffix instead.
func (s *cityService) CreateCity(ctx context.Context, req CreateCityRequest, image string) (*domain.City, error) {
	name := strings.TrimSpace(req.Name)

	slug, err := s.resolveSlug(ctx, req.Slug, name)
	if err != nil {
		return nil, err
	}

	record := &domain.City{
		Name:      name,
		Slug:      slug,
		State:     strings.TrimSpace(req.State),
		CountryID: req.CountryID,
		Image:     image,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.decorate(record)
	return record, nil
}

// UpdateCity applies a partial update covering only the supplied fields. When
// a new image was stored, the superseded file is removed best-effort after
// the write.
func (s *cityService) UpdateCity(ctx context.Context, id uint, req UpdateCityRequest, image string) (*domain.City, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := domain.Fields{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		fields["name"] = name
	}
	if req.Slug != nil {
		slug := pkg.Slugify(*req.Slug)
		if slug == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "slug cannot be empty", nil)
		}
		fields["slug"] = slug
	}
	if req.State != nil {
		fields["state"] = strings.TrimSpace(*req.State)
	}
	if req.CountryID != nil {
		fields["country_id"] = *req.CountryID
	}
	if image != "" {
		fields["image"] = image
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	if image != "" && existing.Image != "" && existing.Image != image {
		s.files.Remove(existing.Image)
	}

	return s.GetCity(ctx, id)
}

func (s *cityService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *cityService) DeleteCity(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *cityService) DeleteCityPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *cityService) RestoreCity(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *cityService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *cityService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *cityService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *cityService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// resolveSlug picks the slug for a new city: an explicit request slug must be
// free, a derived one gets a timestamp suffix on collision.
func (s *cityService) resolveSlug(ctx context.Context, requested, name string) (string, error) {
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
			return "", domain.NewAppError(domain.CodeAlreadyExists, "city slug already exists", nil)
		}
		return slug, nil
	}

	slug := pkg.Slugify(name)
	if slug == "" {
		return "", domain.NewAppError(domain.CodeValidation, "name must contain at least one alphanumeric character", nil)
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

func (s *cityService) decorate(record *domain.City) {
	record.ImageURL = pkg.AssetURL(s.assetBaseURL, record.Image)
}
