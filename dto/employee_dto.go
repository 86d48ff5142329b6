package dto

import "github.com/projectdesk/models"

// EmployeeRegistrationForm represents the payload for creating a new employee
type EmployeeRegistrationForm struct {
	FirstName string              `json:"firstName" binding:"required"`
	LastName  string              `json:"lastName" binding:"required"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Role      models.EmployeeRole `json:"role" binding:"required"`
}

// UpdateEmployeeRequest represents a partial employee update.
// Nil text fields are left unchanged. Role is re-asserted on every update
// and must be a defined enum member.
type UpdateEmployeeRequest struct {
	FirstName *string             `json:"firstName"`
	LastName  *string             `json:"lastName"`
	Email     *string             `json:"email"`
	Phone     *string             `json:"phone"`
	Role      models.EmployeeRole `json:"role" binding:"required"`
}

// Employee is the read model returned to callers
type Employee struct {
	ID        string              `json:"id"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Role      models.EmployeeRole `json:"role"`
}
