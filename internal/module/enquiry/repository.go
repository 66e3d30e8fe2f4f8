package enquiry

import (
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the enquiries table.
var resource = crud.Resource{
	Name:             "Enquiry",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "name", "email", "lead_status", "city_id", "created_at", "updated_at"},
	FilterFields:     []string{"city_id", "property_ref", "lead_status"},
	SearchFields:     []string{"name", "email", "phone", "subject"},
	StatsGroupColumn: "lead_status",
}

type enquiryRepository struct {
	*crud.Repository[domain.Enquiry]
}

// NewEnquiryRepository creates an EnquiryRepository backed by the generic query core.
func NewEnquiryRepository(db *gorm.DB) domain.EnquiryRepository {
	return &enquiryRepository{crud.New[domain.Enquiry](db, resource)}
}
