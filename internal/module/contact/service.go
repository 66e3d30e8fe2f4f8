package contact

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/pkg"
)

// Service defines the business operations for contacts.
type Service interface {
	ListContacts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Contact], error)
	GetContact(ctx context.Context, id uint) (*domain.Contact, error)
	GetContactByCuid(ctx context.Context, cuid string) (*domain.Contact, error)
	CreateContact(ctx context.Context, req CreateContactRequest) (*domain.Contact, error)
	UpdateContact(ctx context.Context, id uint, req UpdateContactRequest) (*domain.Contact, error)
	SetStatus(ctx context.Context, id uint, status int) error
	SetLeadStatus(ctx context.Context, id uint, leadStatus int) error
	Assign(ctx context.Context, id, userID uint) error
	DeleteContact(ctx context.Context, id uint) error
	DeleteContactPermanently(ctx context.Context, id uint) error
	RestoreContact(ctx context.Context, id uint) error
	BulkStatus(ctx context.Context, ids []uint, status int) (int64, error)
	BulkLeadStatus(ctx context.Context, ids []uint, leadStatus int) (int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error)
	ConvertToDeal(ctx context.Context, id uint, req ConvertRequest) (*domain.Deal, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type contactService struct {
	db   *gorm.DB
	repo domain.ContactRepository
}

// NewService creates a contact Service. The raw handle is needed for the
// transactional contact-to-deal conversion.
func NewService(db *gorm.DB, repo domain.ContactRepository) Service {
	return &contactService{db: db, repo: repo}
}

func (s *contactService) ListContacts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Contact], error) {
	return s.repo.List(ctx, req)
}

func (s *contactService) GetContact(ctx context.Context, id uint) (*domain.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) GetContactByCuid(ctx context.Context, cuid string) (*domain.Contact, error) {
	cuid = strings.TrimSpace(cuid)
	if cuid == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "cuid is required", nil)
	}
	return s.repo.GetByCuid(ctx, cuid)
}

// CreateContact inserts a new lead. At least one identifying field is
// required. Email, phone, and cuid are pre-checked for duplicates; a supplied
// cuid that already exists signals a duplicate submission from another
// channel and fails with a conflict.
func (s *contactService) CreateContact(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" && email == "" && phone == "" {
		return nil, domain.NewAppError(domain.CodeValidation,
			"at least one of name, email, or phone is required", nil)
	}

	for _, check := range []struct{ column, value string }{
		{"email", email},
		{"phone", phone},
	} {
		if check.value == "" {
			continue
		}
		taken, err := s.repo.Exists(ctx, check.column, check.value, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewAppError(domain.CodeAlreadyExists,
				"contact "+check.column+" already exists", nil)
		}
	}

	cuid := strings.TrimSpace(req.Cuid)
	if cuid != "" {
		taken, err := s.repo.Exists(ctx, "cuid", cuid, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "contact cuid already exists", nil)
		}
	} else {
		cuid = ulid.Make().String()
	}

	record := &domain.Contact{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Cuid:       cuid,
		CityID:     req.CityID,
		Source:     strings.TrimSpace(req.Source),
		Notes:      req.Notes,
		LeadStatus: domain.LeadStatusNew,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateContact applies a partial update covering only the supplied fields.
func (s *contactService) UpdateContact(ctx context.Context, id uint, req UpdateContactRequest) (*domain.Contact, error) {
	fields := domain.Fields{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" {
			taken, err := s.repo.Exists(ctx, "email", email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.NewAppError(domain.CodeAlreadyExists, "contact email already exists", nil)
			}
		}
		fields["email"] = email
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != "" {
			taken, err := s.repo.Exists(ctx, "phone", phone, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.NewAppError(domain.CodeAlreadyExists, "contact phone already exists", nil)
			}
		}
		fields["phone"] = phone
	}
	if req.CityID != nil {
		fields["city_id"] = *req.CityID
	}
	if req.Source != nil {
		fields["source"] = strings.TrimSpace(*req.Source)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) SetStatus(ctx context.Context, id uint, status int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"status": status})
}

func (s *contactService) SetLeadStatus(ctx context.Context, id uint, leadStatus int) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"lead_status": leadStatus})
}

func (s *contactService) Assign(ctx context.Context, id, userID uint) error {
	return s.repo.UpdateFields(ctx, id, domain.Fields{"assigned_to": userID})
}

func (s *contactService) DeleteContact(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *contactService) DeleteContactPermanently(ctx context.Context, id uint) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *contactService) RestoreContact(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *contactService) BulkStatus(ctx context.Context, ids []uint, status int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"status": status})
}

func (s *contactService) BulkLeadStatus(ctx context.Context, ids []uint, leadStatus int) (int64, error) {
	return s.repo.BulkUpdate(ctx, ids, domain.Fields{"lead_status": leadStatus})
}

func (s *contactService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkSoftDelete(ctx, ids)
}

func (s *contactService) BulkDeletePermanently(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

// ConvertToDeal creates a deal for a contact and marks it qualified, in one
// transaction so a failed deal insert never leaves the contact half-moved.
func (s *contactService) ConvertToDeal(ctx context.Context, id uint, req ConvertRequest) (*domain.Deal, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deal := &domain.Deal{
		Title:     strings.TrimSpace(req.Title),
		ContactID: contact.ID,
		Amount:    req.Amount,
		Stage:     domain.DealStageOpen,
	}

	err = pkg.WithTx(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(deal).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Contact{}).Where("id = ?", contact.ID).
			Update("lead_status", domain.LeadStatusQualified).Error
	})
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to convert contact", err)
	}

	return deal, nil
}

func (s *contactService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
