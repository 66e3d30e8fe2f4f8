package deal

import (
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the deals table. Contact is
// preloaded on reads so list rows carry the counterparty without a second
// round trip.
var resource = crud.Resource{
	Name:             "Deal",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "title", "amount", "stage", "expected_close", "created_at", "updated_at"},
	FilterFields:     []string{"contact_id", "stage"},
	SearchFields:     []string{"title", "notes"},
	StatsGroupColumn: "stage",
	Preloads:         []string{"Contact"},
}

type dealRepository struct {
	*crud.Repository[domain.Deal]
}

// NewDealRepository creates a DealRepository backed by the generic query core.
func NewDealRepository(db *gorm.DB) domain.DealRepository {
	return &dealRepository{crud.New[domain.Deal](db, resource)}
}
