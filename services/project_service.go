package services

import (
	"strings"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/factories"
	"github.com/projectdesk/models"
	"github.com/projectdesk/repositories"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectService handles business logic for projects, including the
// assignment workflow between projects and employees
type ProjectService struct {
	projects  *repositories.ProjectRepository
	employees *repositories.EmployeeRepository
	customers *repositories.CustomerRepository
	links     *repositories.ProjectEmployeeRepository
	logger    zerolog.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(
	projects *repositories.ProjectRepository,
	employees *repositories.EmployeeRepository,
	customers *repositories.CustomerRepository,
	links *repositories.ProjectEmployeeRepository,
) *ProjectService {
	return &ProjectService{
		projects:  projects,
		employees: employees,
		customers: customers,
		links:     links,
		logger:    log.With().Str("service", "project").Logger(),
	}
}

// Create validates the form and persists a new project. The referenced
// customer must exist before the project is created.
func (s *ProjectService) Create(form dto.ProjectRegistrationForm) bool {
	customer, found, err := s.customers.FindOne("id = ?", form.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", form.CustomerID).Msg("failed to look up customer")
		return false
	}
	if !found {
		s.logger.Warn().Str("customerId", form.CustomerID).Msg("rejected project: selected customer does not exist")
		return false
	}

	entity, err := factories.NewProject(form, customer)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected project registration")
		return false
	}

	if _, err := s.projects.Create(entity); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return false
	}
	return true
}

// GetAll retrieves every project through the joined read so the customer
// name and assigned employee ids are populated on each read model
func (s *ProjectService) GetAll() []dto.Project {
	entities, err := s.projects.FindAllWithCustomer()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list projects")
		return []dto.Project{}
	}

	projects := make([]dto.Project, 0, len(entities))
	for _, entity := range entities {
		projects = append(projects, factories.ProjectModel(entity))
	}
	return s.attachEmployeeIDs(projects)
}

// GetByID retrieves a single project by id
func (s *ProjectService) GetByID(id string) (dto.Project, bool) {
	entity, found, err := s.projects.FindByIDWithCustomer(id)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", id).Msg("failed to fetch project")
		return dto.Project{}, false
	}
	if !found {
		return dto.Project{}, false
	}

	projects := s.attachEmployeeIDs([]dto.Project{factories.ProjectModel(entity)})
	return projects[0], true
}

// GetByCustomerID retrieves the projects owned by a customer, filtering
// the joined read in memory
func (s *ProjectService) GetByCustomerID(customerID string) []dto.Project {
	entities, err := s.projects.FindAllWithCustomer()
	if err != nil {
		s.logger.Error().Err(err).Str("customerId", customerID).Msg("failed to list projects by customer")
		return []dto.Project{}
	}

	projects := make([]dto.Project, 0)
	for _, entity := range entities {
		if entity.CustomerID == customerID {
			projects = append(projects, factories.ProjectModel(entity))
		}
	}
	return s.attachEmployeeIDs(projects)
}

// GetByCustomerNameOrEmail retrieves projects whose customer name or email
// contains the search term. The containment match is case-sensitive.
func (s *ProjectService) GetByCustomerNameOrEmail(searchTerm string) []dto.Project {
	entities, err := s.projects.FindAllWithCustomer()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to search projects")
		return []dto.Project{}
	}

	projects := make([]dto.Project, 0)
	for _, entity := range entities {
		if entity.Customer == nil {
			continue
		}
		if strings.Contains(entity.Customer.Name, searchTerm) ||
			strings.Contains(entity.Customer.Email, searchTerm) {
			projects = append(projects, factories.ProjectModel(entity))
		}
	}
	return s.attachEmployeeIDs(projects)
}

// GetByStatus retrieves the projects currently in a given lifecycle state,
// filtering the joined read in memory
func (s *ProjectService) GetByStatus(status models.ProjectStatus) []dto.Project {
	entities, err := s.projects.FindAllWithCustomer()
	if err != nil {
		s.logger.Error().Err(err).Str("status", string(status)).Msg("failed to list projects by status")
		return []dto.Project{}
	}

	projects := make([]dto.Project, 0)
	for _, entity := range entities {
		if entity.Status == status {
			projects = append(projects, factories.ProjectModel(entity))
		}
	}
	return s.attachEmployeeIDs(projects)
}

// GetAvailableCustomers retrieves the customers a project can be assigned
// to, used by the project dialogs
func (s *ProjectService) GetAvailableCustomers() []dto.Customer {
	entities, err := s.customers.FindAll()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list available customers")
		return []dto.Customer{}
	}

	customers := make([]dto.Customer, 0, len(entities))
	for _, entity := range entities {
		customers = append(customers, factories.CustomerModel(entity))
	}
	return customers
}

// Update applies a partial update. Nil scalar fields are left unchanged
// and the status is re-asserted on every call. A non-nil EmployeeIDs slice
// triggers a full replace of the assignment set: every existing link is
// deleted and one row per incoming id is inserted; an empty slice clears
// all assignments, nil leaves them untouched. The replace and the scalar
// save run in a single transaction so a failure partway through cannot
// leave the set partially replaced.
func (s *ProjectService) Update(id string, req dto.UpdateProjectRequest) bool {
	entity, found, err := s.projects.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", id).Msg("failed to fetch project for update")
		return false
	}
	if !found {
		return false
	}

	if !req.Status.IsValid() {
		s.logger.Warn().Str("projectId", id).Str("status", string(req.Status)).
			Msg("rejected update: invalid project status")
		return false
	}

	changed := false

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			s.logger.Warn().Str("projectId", id).Msg("rejected update: project title cannot be blank")
			return false
		}
		entity.Title = *req.Title
		changed = true
	}
	if req.Description != nil {
		entity.Description = *req.Description
		changed = true
	}
	if req.StartDate != nil {
		entity.StartDate = req.StartDate
		changed = true
	}
	if req.EndDate != nil {
		entity.EndDate = req.EndDate
		changed = true
	}
	if req.Status != entity.Status {
		entity.Status = req.Status
		changed = true
	}

	if !changed && req.EmployeeIDs == nil {
		return false
	}

	err = s.projects.Transaction(func(tx *gorm.DB) error {
		if req.EmployeeIDs != nil {
			if err := tx.Where("project_id = ?", entity.ID).
				Delete(&models.ProjectEmployee{}).Error; err != nil {
				return err
			}
			for _, employeeID := range req.EmployeeIDs {
				link := models.ProjectEmployee{ProjectID: entity.ID, EmployeeID: employeeID}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&link).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(&entity).Error
	})
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", id).Msg("failed to update project")
		return false
	}
	return true
}

// Delete removes a project and its association rows. The operation is
// idempotent: deleting a project that does not exist reports success.
func (s *ProjectService) Delete(id string) bool {
	entity, found, err := s.projects.FindOne("id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", id).Msg("failed to fetch project for delete")
		return false
	}
	if !found {
		return true
	}

	err = s.projects.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", entity.ID).
			Delete(&models.ProjectEmployee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", entity.ID).Error
	})
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", id).Msg("failed to delete project")
		return false
	}
	return true
}

// AssignEmployees links the resolved employees to a project. Ids that do
// not resolve to real employees are skipped; if none resolve the call
// fails. Re-assigning an already-linked employee is a no-op.
func (s *ProjectService) AssignEmployees(projectID string, employeeIDs []string) bool {
	_, found, err := s.projects.FindOne("id = ?", projectID)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", projectID).Msg("failed to fetch project for assignment")
		return false
	}
	if !found {
		s.logger.Warn().Str("projectId", projectID).Msg("rejected assignment: project does not exist")
		return false
	}

	employees, err := s.employees.FindWhere("id IN ?", employeeIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", projectID).Msg("failed to resolve employees")
		return false
	}
	if len(employees) == 0 {
		s.logger.Warn().Str("projectId", projectID).Msg("rejected assignment: no employee id resolved")
		return false
	}

	for _, employee := range employees {
		link := models.ProjectEmployee{ProjectID: projectID, EmployeeID: employee.ID}
		if err := s.links.Assign(link); err != nil {
			s.logger.Error().Err(err).Str("projectId", projectID).Str("employeeId", employee.ID).
				Msg("failed to assign employee")
			return false
		}
	}
	return true
}

// RemoveEmployeeFromProject deletes a single association row. Removing an
// employee that is not assigned reports false and changes nothing.
func (s *ProjectService) RemoveEmployeeFromProject(projectID, employeeID string) bool {
	removed, err := s.links.RemoveEmployeeFromProject(projectID, employeeID)
	if err != nil {
		s.logger.Error().Err(err).Str("projectId", projectID).Str("employeeId", employeeID).
			Msg("failed to unassign employee")
		return false
	}
	return removed
}

// attachEmployeeIDs resolves the assignment sets for a batch of read
// models with one query instead of one per project
func (s *ProjectService) attachEmployeeIDs(projects []dto.Project) []dto.Project {
	if len(projects) == 0 {
		return projects
	}

	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}

	links, err := s.links.FindWhere("project_id IN ?", ids)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load project assignments")
		return projects
	}

	byProject := make(map[string][]string)
	for _, link := range links {
		byProject[link.ProjectID] = append(byProject[link.ProjectID], link.EmployeeID)
	}

	for i := range projects {
		if employeeIDs, ok := byProject[projects[i].ID]; ok {
			projects[i].EmployeeIDs = employeeIDs
		}
	}
	return projects
}
