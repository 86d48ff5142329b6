package models

import (
	"time"
)

// Customer represents a paying customer that owns projects
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"default:null;index"`
	Phone     string    `json:"phone" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CustomerID"`
}
