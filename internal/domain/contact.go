package domain

import "context"

// Lead status workflow stages shared by contacts and enquiries.
const (
	LeadStatusNew       = 1
	LeadStatusContacted = 2
	LeadStatusQualified = 3
	LeadStatusWon       = 4
	LeadStatusLost      = 5
)

// Contact represents a lead. Cuid is an external correlation identifier used
// to deduplicate submissions arriving through different channels; when the
// caller supplies none, one is generated at creation time.
type Contact struct {
	BaseModel
	Name       string `gorm:"size:150" json:"name"`
	Email      string `gorm:"size:255;index" json:"email"`
	Phone      string `gorm:"size:30;index" json:"phone"`
	Cuid       string `gorm:"size:40;uniqueIndex;not null" json:"cuid"`
	CityID     uint   `gorm:"index" json:"city_id"`
	Source     string `gorm:"size:100" json:"source"`
	Notes      string `gorm:"type:text" json:"notes"`
	LeadStatus int    `gorm:"not null;default:1;index" json:"lead_status"`
	AssignedTo uint   `gorm:"index" json:"assigned_to"`
}

// ContactRepository defines the data access interface for contacts.
type ContactRepository interface {
	Repository[Contact]
	GetByCuid(ctx context.Context, cuid string) (*Contact, error)
}
