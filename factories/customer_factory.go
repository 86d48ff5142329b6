package factories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

// NewCustomer builds a persistence entity from a registration form
func NewCustomer(form dto.CustomerRegistrationForm) (models.Customer, error) {
	if strings.TrimSpace(form.Name) == "" {
		return models.Customer{}, errors.New("customer name is required")
	}

	return models.Customer{
		ID:    uuid.NewString(),
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	}, nil
}

// CustomerModel maps a persistence entity to its read model
func CustomerModel(entity models.Customer) dto.Customer {
	return dto.Customer{
		ID:        entity.ID,
		Name:      entity.Name,
		Email:     entity.Email,
		Phone:     entity.Phone,
		CreatedAt: entity.CreatedAt,
	}
}
