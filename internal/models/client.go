package models

// Client is a customer whose portfolio is managed by a relationship manager.
type Client struct {
	Base
	FullName  string `gorm:"not null" json:"fullName"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	ManagerID string `gorm:"index" json:"managerId,omitempty"`

	Holdings []Holding `gorm:"foreignKey:ClientID" json:"-"`
}
