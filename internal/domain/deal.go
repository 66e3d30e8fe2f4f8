package domain

// Deal stages.
const (
	DealStageOpen        = "open"
	DealStageNegotiation = "negotiation"
	DealStageWon         = "won"
	DealStageLost        = "lost"
)

// Deal represents an active transaction tied to a contact. ExpectedClose is
// kept as a plain date string, matching the historical schema.
type Deal struct {
	BaseModel
	Title         string   `gorm:"size:200;not null" json:"title"`
	ContactID     uint     `gorm:"index;not null" json:"contact_id"`
	Contact       *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	Amount        float64  `json:"amount"`
	Stage         string   `gorm:"size:30;not null;default:open;index" json:"stage"`
	ExpectedClose string   `gorm:"size:10" json:"expected_close"`
	Notes         string   `gorm:"type:text" json:"notes"`
}

// DealRepository defines the data access interface for deals.
type DealRepository interface {
	Repository[Deal]
}
