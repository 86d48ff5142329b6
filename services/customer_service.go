package services

import (
	"strings"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/factories"
	"github.com/projectdesk/repositories"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CustomerService handles business logic for customers. Mutating
// operations follow the boolean contract: validation failures, missing
// records and storage errors are logged here and surface as false, nothing
// above this layer observes a raw storage error.
type CustomerService struct {
	customers *repositories.CustomerRepository
	logger    zerolog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(customers *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		customers: customers,
		logger:    log.With().Str("service", "customer").Logger(),
	}
}

// Create validates the registration form and persists a new customer
func (s *CustomerService) Create(form dto.CustomerRegistrationForm) bool {
	entity, err := factories.NewCustomer(form)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected customer registration")
		return false
	}

	if _, err := s.customers.Create(entity); err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return false
	}
	return true
}

// GetAll retrieves every customer as a read model. Empty input yields an
// empty slice, never nil.
func (s *CustomerService) GetAll() []dto.Customer {
	entities, err := s.customers.FindAll()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list customers")
		return []dto.Customer{}
	}

	customers := make([]dto.Customer, 0, len(entities))
	for _, entity := range entities {
		customers = append(customers, factories.CustomerModel(entity))
	}
	return customers
}

// GetByID retrieves a single customer by id
func (s *CustomerService) GetByID(id string) (dto.Customer, bool) {
	entity, found, err := s.customers.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", id).Msg("failed to fetch customer")
		return dto.Customer{}, false
	}
	if !found {
		return dto.Customer{}, false
	}
	return factories.CustomerModel(entity), true
}

// Update applies a partial update. Nil fields are left unchanged. A new
// email must not belong to another customer. When nothing actually
// changes, the update is reported as false.
func (s *CustomerService) Update(id string, req dto.UpdateCustomerRequest) bool {
	entity, found, err := s.customers.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", id).Msg("failed to fetch customer for update")
		return false
	}
	if !found {
		return false
	}

	changed := false

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			s.logger.Warn().Str("customerId", id).Msg("rejected update: customer name cannot be blank")
			return false
		}
		entity.Name = *req.Name
		changed = true
	}

	if req.Email != nil && *req.Email != entity.Email {
		// The new email must be unique across the other customers.
		_, taken, err := s.customers.FindOne("email = ? AND id <> ?", *req.Email, id)
		if err != nil {
			s.logger.Error().Err(err).Str("customerId", id).Msg("failed to check email uniqueness")
			return false
		}
		if taken {
			s.logger.Warn().Str("customerId", id).Str("email", *req.Email).
				Msg("rejected update: email already belongs to another customer")
			return false
		}
		entity.Email = *req.Email
		changed = true
	}

	if req.Phone != nil {
		entity.Phone = *req.Phone
		changed = true
	}

	if !changed {
		return false
	}

	if _, err := s.customers.Save(entity); err != nil {
		s.logger.Error().Err(err).Str("customerId", id).Msg("failed to update customer")
		return false
	}
	return true
}

// Delete removes a customer unconditionally. Whether the customer's
// projects are all completed is the calling dialog's responsibility, not
// enforced here.
func (s *CustomerService) Delete(id string) bool {
	entity, found, err := s.customers.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", id).Msg("failed to fetch customer for delete")
		return false
	}
	if !found {
		return false
	}

	deleted, err := s.customers.Delete(entity)
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", id).Msg("failed to delete customer")
		return false
	}
	return deleted
}
