package factories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

// NewEmployee builds a persistence entity from a registration form
func NewEmployee(form dto.EmployeeRegistrationForm) (models.Employee, error) {
	if strings.TrimSpace(form.FirstName) == "" || strings.TrimSpace(form.LastName) == "" {
		return models.Employee{}, errors.New("employee first and last name are required")
	}
	if !form.Role.IsValid() {
		return models.Employee{}, fmt.Errorf("invalid employee role: %q", form.Role)
	}

	return models.Employee{
		ID:        uuid.NewString(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Role:      form.Role,
	}, nil
}

// EmployeeModel maps a persistence entity to its read model
func EmployeeModel(entity models.Employee) dto.Employee {
	return dto.Employee{
		ID:        entity.ID,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		Email:     entity.Email,
		Phone:     entity.Phone,
		Role:      entity.Role,
	}
}
