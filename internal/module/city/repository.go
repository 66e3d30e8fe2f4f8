package city

import (
	"context"

	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/crud"
	"github.com/estateops/backoffice/internal/domain"
)

// resource configures the generic query core for the cities table.
var resource = crud.Resource{
	Name:             "City",
	DefaultSort:      "created_at DESC",
	SortFields:       []string{"id", "name", "state", "country_id", "created_at", "updated_at"},
	FilterFields:     []string{"country_id", "state"},
	SearchFields:     []string{"name", "state"},
	UniqueFields:     []string{"slug"},
	StatsGroupColumn: "state",
}

type cityRepository struct {
	*crud.Repository[domain.City]
}

// NewCityRepository creates a CityRepository backed by the generic query core.
func NewCityRepository(db *gorm.DB) domain.CityRepository {
	return &cityRepository{crud.New[domain.City](db, resource)}
}

// GetBySlug retrieves a city by its slug.
func (r *cityRepository) GetBySlug(ctx context.Context, slug string) (*domain.City, error) {
	return r.GetBy(ctx, "slug", slug)
}
