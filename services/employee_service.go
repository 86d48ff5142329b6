package services

import (
	"strings"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/factories"
	"github.com/projectdesk/models"
	"github.com/projectdesk/repositories"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	employees *repositories.EmployeeRepository
	logger    zerolog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employees *repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		logger:    log.With().Str("service", "employee").Logger(),
	}
}

// Create validates the registration form and persists a new employee
func (s *EmployeeService) Create(form dto.EmployeeRegistrationForm) bool {
	entity, err := factories.NewEmployee(form)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected employee registration")
		return false
	}

	if _, err := s.employees.Create(entity); err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return false
	}
	return true
}

// GetAll retrieves every employee as a read model
func (s *EmployeeService) GetAll() []dto.Employee {
	entities, err := s.employees.FindAll()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list employees")
		return []dto.Employee{}
	}

	employees := make([]dto.Employee, 0, len(entities))
	for _, entity := range entities {
		employees = append(employees, factories.EmployeeModel(entity))
	}
	return employees
}

// GetByRole retrieves the employees filling a given role
func (s *EmployeeService) GetByRole(role models.EmployeeRole) []dto.Employee {
	entities, err := s.employees.FindWhere("role = ?", role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", string(role)).Msg("failed to list employees by role")
		return []dto.Employee{}
	}

	employees := make([]dto.Employee, 0, len(entities))
	for _, entity := range entities {
		employees = append(employees, factories.EmployeeModel(entity))
	}
	return employees
}

// GetByID retrieves a single employee by id
func (s *EmployeeService) GetByID(id string) (dto.Employee, bool) {
	entity, found, err := s.employees.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("employeeId", id).Msg("failed to fetch employee")
		return dto.Employee{}, false
	}
	if !found {
		return dto.Employee{}, false
	}
	return factories.EmployeeModel(entity), true
}

// Update applies a partial update. Nil text fields are left unchanged. The
// role is re-asserted on every call and must be a defined enum member or
// the whole update is rejected; it only counts as a change when it
// differs, so an all-nil, same-role update is a no-op and returns false.
func (s *EmployeeService) Update(id string, req dto.UpdateEmployeeRequest) bool {
	entity, found, err := s.employees.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("employeeId", id).Msg("failed to fetch employee for update")
		return false
	}
	if !found {
		return false
	}

	if !req.Role.IsValid() {
		s.logger.Warn().Str("employeeId", id).Str("role", string(req.Role)).
			Msg("rejected update: invalid employee role")
		return false
	}

	changed := false

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			s.logger.Warn().Str("employeeId", id).Msg("rejected update: first name cannot be blank")
			return false
		}
		entity.FirstName = *req.FirstName
		changed = true
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			s.logger.Warn().Str("employeeId", id).Msg("rejected update: last name cannot be blank")
			return false
		}
		entity.LastName = *req.LastName
		changed = true
	}
	if req.Email != nil {
		entity.Email = *req.Email
		changed = true
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
		changed = true
	}
	if req.Role != entity.Role {
		entity.Role = req.Role
		changed = true
	}

	if !changed {
		return false
	}

	if _, err := s.employees.Save(entity); err != nil {
		s.logger.Error().Err(err).Str("employeeId", id).Msg("failed to update employee")
		return false
	}
	return true
}

// Delete removes an employee unconditionally. It does not clean up
// association rows: the cascade-vs-unassign-only choice belongs to the
// calling dialog.
func (s *EmployeeService) Delete(id string) bool {
	entity, found, err := s.employees.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("employeeId", id).Msg("failed to fetch employee for delete")
		return false
	}
	if !found {
		return false
	}

	deleted, err := s.employees.Delete(entity)
	if err != nil {
		s.logger.Error().Err(err).Str("employeeId", id).Msg("failed to delete employee")
		return false
	}
	return deleted
}
