package models

import (
	"fmt"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
// Transitions are unconstrained: any status is reachable from any other.
type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "not_started"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPaused     ProjectStatus = "paused"
	StatusCompleted  ProjectStatus = "completed"
)

// IsValid reports whether the status is a defined enum member
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// ParseProjectStatus converts a string into a ProjectStatus
func ParseProjectStatus(s string) (ProjectStatus, error) {
	status := ProjectStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown project status: %q", s)
	}
	return status, nil
}

// Project represents a project owned by exactly one customer
type Project struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"default:null"`
	StartDate   *time.Time    `json:"startDate" gorm:"default:null"`
	EndDate     *time.Time    `json:"endDate" gorm:"default:null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);default:'not_started'"`
	CustomerID  string        `json:"customerId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relations
	Customer         *Customer         `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProjectEmployees []ProjectEmployee `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
