package domain

import "context"

// City represents a serviced city. Image holds the stored upload filename;
// ImageURL is derived from it against the configured public base URL and is
// never persisted.
type City struct {
	BaseModel
	Name      string `gorm:"size:150;not null" json:"name"`
	Slug      string `gorm:"size:180;uniqueIndex;not null" json:"slug"`
	State     string `gorm:"size:100" json:"state"`
	CountryID uint   `gorm:"index" json:"country_id"`
	Image     string `gorm:"size:255" json:"image"`
	ImageURL  string `gorm:"-" json:"image_url"`
}

// CityRepository defines the data access interface for cities.
type CityRepository interface {
	Repository[City]
	GetBySlug(ctx context.Context, slug string) (*City, error)
}
