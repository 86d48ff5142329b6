package dto

import (
	"time"

	"github.com/projectdesk/models"
)

// ProjectRegistrationForm represents the payload for creating a new project
type ProjectRegistrationForm struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	StartDate   *time.Time           `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Status      models.ProjectStatus `json:"status"`
	CustomerID  string               `json:"customerId" binding:"required"`
}

// UpdateProjectRequest represents a partial project update.
// Nil scalar fields are left unchanged. Status is re-asserted on every
// update. EmployeeIDs distinguishes three cases: nil leaves the assignment
// set untouched, an empty slice clears it, a non-empty slice replaces it.
type UpdateProjectRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	StartDate   *time.Time           `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Status      models.ProjectStatus `json:"status" binding:"required"`
	EmployeeIDs []string             `json:"employeeIds"`
}

// AssignEmployeesRequest represents the payload for assigning employees to a project
type AssignEmployeesRequest struct {
	EmployeeIDs []string `json:"employeeIds" binding:"required"`
}

// Project is the read model returned to callers. CustomerName is resolved
// from the joined read so listings need no follow-up lookups.
type Project struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	StartDate    *time.Time           `json:"startDate"`
	EndDate      *time.Time           `json:"endDate"`
	Status       models.ProjectStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	CustomerID   string               `json:"customerId"`
	CustomerName string               `json:"customerName"`
	EmployeeIDs  []string             `json:"employeeIds"`
}
