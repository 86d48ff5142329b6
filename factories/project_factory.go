package factories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

// UnknownCustomerName is the fallback shown when a project's customer
// relation is unexpectedly missing from a read.
const UnknownCustomerName = "Unknown Customer"

// NewProject builds a persistence entity from a registration form and its
// owning customer. The customer must already exist; the service checks that
// before calling here.
func NewProject(form dto.ProjectRegistrationForm, customer models.Customer) (models.Project, error) {
	if strings.TrimSpace(form.Title) == "" {
		return models.Project{}, errors.New("project title is required")
	}

	status := form.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	if !status.IsValid() {
		return models.Project{}, errors.New("invalid project status: " + string(status))
	}

	return models.Project{
		ID:          uuid.NewString(),
		Title:       form.Title,
		Description: form.Description,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Status:      status,
		CustomerID:  customer.ID,
	}, nil
}

// ProjectModel maps a persistence entity to its read model. The customer
// name comes from the preloaded relation; a missing relation falls back to
// a sentinel instead of failing the read.
func ProjectModel(entity models.Project) dto.Project {
	customerName := UnknownCustomerName
	if entity.Customer != nil {
		customerName = entity.Customer.Name
	}

	return dto.Project{
		ID:           entity.ID,
		Title:        entity.Title,
		Description:  entity.Description,
		StartDate:    entity.StartDate,
		EndDate:      entity.EndDate,
		Status:       entity.Status,
		CreatedAt:    entity.CreatedAt,
		CustomerID:   entity.CustomerID,
		CustomerName: customerName,
		EmployeeIDs:  []string{},
	}
}
