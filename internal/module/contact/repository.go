package contact

import (
	"context"

	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the contacts table. Email
// and phone are deduplicated by service-level pre-checks rather than a schema
// index: empty values are legal and would collide under a unique index.
var resource = crud.Resource{
	Name:             "Contact",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "name", "email", "lead_status", "assigned_to", "created_at", "updated_at"},
	FilterFields:     []string{"city_id", "source", "lead_status", "assigned_to"},
	SearchFields:     []string{"name", "email", "phone"},
	UniqueFields:     []string{"cuid"},
	StatsGroupColumn: "lead_status",
}

type contactRepository struct {
	*crud.Repository[domain.Contact]
}

// NewContactRepository creates a ContactRepository backed by the generic query core.
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &contactRepository{crud.New[domain.Contact](db, resource)}
}

// GetByCuid retrieves a contact by its external correlation identifier.
func (r *contactRepository) GetByCuid(ctx context.Context, cuid string) (*domain.Contact, error) {
	return r.GetBy(ctx, "cuid", cuid)
}
