package domain

// Enquiry represents a property enquiry submitted through a public channel.
type Enquiry struct {
	BaseModel
	Name        string `gorm:"size:150;not null" json:"name"`
	Email       string `gorm:"size:255;index" json:"email"`
	Phone       string `gorm:"size:30" json:"phone"`
	Subject     string `gorm:"size:200" json:"subject"`
	Message     string `gorm:"type:text" json:"message"`
	PropertyRef string `gorm:"size:100;index" json:"property_ref"`
	CityID      uint   `gorm:"index" json:"city_id"`
	LeadStatus  int    `gorm:"not null;default:1;index" json:"lead_status"`
}

// EnquiryRepository defines the data access interface for enquiries.
type EnquiryRepository interface {
	Repository[Enquiry]
}
