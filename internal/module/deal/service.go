package deal

import (
	"context"
	"strings"

	"github.com/estateops/backoffice/internal/domain"
)

// Service defines the business operations for deals.
type Service interface {
	ListDeals(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Deal], error)
	GetDeal(ctx context.Context, id uint) (*domain.Deal, error)
	CreateDeal(ctx context.Context, req CreateDealRequest) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, id uint, req UpdateDealRequest) (*domain.Deal, error)
	SetStage(ctx context.Context, id uint, stage string) error
	SetStatus(ctx context.Context, id uint, status int) error
	DeleteDeal(ctx context.Context, id uint) error
	DeleteDealPermanently(ctx context.Context, id uint) error
	RestoreDeal(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkStage(ctx context.Context, ids []uint, stage string) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type dealService struct {
	repo     domain.DealRepository
	contacts domain.ContactRepository
}

// NewService creates a deal Service. The contact repository is used to
// verify that the counterparty exists before a deal references it.
func NewService(repo domain.DealRepository, contacts domain.ContactRepository) Service {
	return &dealService{repo: repo, contacts: contacts}
}

func (s *dealService) ListDeals(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Deal], error) {
	return s.repo.List(ctx, req)
}

func (s *dealService) GetDeal(ctx context.Context, id uint) (*domain.Deal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *dealService) CreateDeal(ctx context.Context, req CreateDealRequest) (*domain.Deal, error) {
	if _, err := s.contacts.GetByID(ctx, req.ContactID); err != nil {
		return nil, err
	}

	stage := req.Stage
	if stage == "" {
		stage = domain.DealStageOpen
	}
	record := &domain.Deal{
		Title:         strings.TrimSpace(req.Title),
		ContactID:     req.ContactID,
		Amount:        req.Amount,
		Stage:         stage,
		ExpectedClose: req.ExpectedClose,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, record.ID)
}

// UpdateDeal applies a partial update covering only the supplied fields.
func (s *dealService) UpdateDeal(ctx context.Context, id uint, req UpdateDealRequest) (*domain.Deal, error) {
	fields := domain.Fields{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.ContactID != nil {
		if _, err := s.contacts.GetByID(ctx, *req.ContactID); err != nil {
			return nil, err
		}
		fields["contact_id"] = *req.ContactID
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.ExpectedClose != nil {
		fields["expected_close"] = *req.ExpectedClose
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *dealService) SetStage(ctx context.Context, id uint, stage string) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"stage": stage})
}

func (s *dealService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *dealService) DeleteDeal(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *dealService) DeleteDealPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *dealService) RestoreDeal(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *dealService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *dealService) BulkStage(ctx context.Context, ids []uint, stage string) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"stage": stage})
}

func (s *dealService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *dealService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *dealService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
