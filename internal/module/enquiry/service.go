package enquiry

import (
	"context"
	"strings"

	"github.com/estateops/backoffice/internal/domain"
)

// Service defines the business operations for enquiries.
type Service interface {
	ListEnquiries(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Enquiry], error)
	GetEnquiry(ctx context.Context, id uint) (*domain.Enquiry, error)
	CreateEnquiry(ctx context.Context, req CreateEnquiryRequest) (*domain.Enquiry, error)
	UpdateEnquiry(ctx context.Context, id uint, req UpdateEnquiryRequest) (*domain.Enquiry, error)
	SetStatus(ctx context.Context, id uint, status int) error
	SetLeadStatus(ctx context.Context, id uint, leadStatus int) error
	DeleteEnquiry(ctx context.Context, id uint) error
	DeleteEnquiryPermanently(ctx context.Context, id uint) error
	RestoreEnquiry(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type enquiryService struct {
	repo domain.EnquiryRepository
}

// NewService creates an enquiry Service.
func NewService(repo domain.EnquiryRepository) Service {
	return &enquiryService{repo: repo}
}

func (s *enquiryService) ListEnquiries(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Enquiry], error) {
	return s.repo.List(ctx, req)
}

func (s *enquiryService) GetEnquiry(ctx context.Context, id uint) (*domain.Enquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateEnquiry records a public submission. New enquiries always start in
// the "new" workflow stage regardless of caller input.
func (s *enquiryService) CreateEnquiry(ctx context.Context, req CreateEnquiryRequest) (*domain.Enquiry, error) {
	record := &domain.Enquiry{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     req.Message,
		PropertyRef: strings.TrimSpace(req.PropertyRef),
		CityID:      req.CityID,
		LeadStatus:  domain.LeadStatusNew,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateEnquiry applies a partial update covering only the supplied fields.
func (s *enquiryService) UpdateEnquiry(ctx context.Context, id uint, req UpdateEnquiryRequest) (*domain.Enquiry, error) {
	fields := domain.Fields{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Subject != nil {
		fields["subject"] = strings.TrimSpace(*req.Subject)
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}
	if req.PropertyRef != nil {
		fields["property_ref"] = strings.TrimSpace(*req.PropertyRef)
	}
	if req.CityID != nil {
		fields["city_id"] = *req.CityID
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *enquiryService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *enquiryService) SetLeadStatus(ctx context.Context, id uint, leadStatus int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"lead_status": leadStatus})
}

func (s *enquiryService) DeleteEnquiry(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *enquiryService) DeleteEnquiryPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *enquiryService) RestoreEnquiry(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *enquiryService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *enquiryService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *enquiryService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *enquiryService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
