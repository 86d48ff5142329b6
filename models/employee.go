package models

import (
	"fmt"
	"time"
)

// EmployeeRole represents the role an employee fills on projects
type EmployeeRole string

const (
	RoleDeveloper EmployeeRole = "developer"
	RoleManager   EmployeeRole = "manager"
	RoleDesigner  EmployeeRole = "designer"
)

// IsValid reports whether the role is a defined enum member
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleDeveloper, RoleManager, RoleDesigner:
		return true
	}
	return false
}

// ParseEmployeeRole converts a string into an EmployeeRole
func ParseEmployeeRole(s string) (EmployeeRole, error) {
	role := EmployeeRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown employee role: %q", s)
	}
	return role, nil
}

// Employee represents an employee that can be assigned to projects
type Employee struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid"`
	FirstName string       `json:"firstName" gorm:"not null"`
	LastName  string       `json:"lastName" gorm:"not null"`
	Email     string       `json:"email" gorm:"default:null"`
	Phone     string       `json:"phone" gorm:"default:null"`
	Role      EmployeeRole `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Relations
	ProjectEmployees []ProjectEmployee `json:"-" gorm:"foreignKey:EmployeeID"`
}
