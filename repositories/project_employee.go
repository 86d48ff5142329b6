package repositories

import (
	"github.com/projectdesk/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectEmployeeRepository handles database operations for the
// project-to-employee association rows
type ProjectEmployeeRepository struct {
	*Repository[models.ProjectEmployee]
}

// NewProjectEmployeeRepository creates a new link repository instance
func NewProjectEmployeeRepository(db *gorm.DB) *ProjectEmployeeRepository {
	return &ProjectEmployeeRepository{Repository: NewRepository[models.ProjectEmployee](db)}
}

// Assign inserts an association row, ignoring the insert when the pair
// already exists, so re-assigning an employee is a no-op instead of a
// composite-key violation.
func (r *ProjectEmployeeRepository) Assign(link models.ProjectEmployee) error {
	result := r.DB().Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	return result.Error
}

// RemoveEmployeeFromProject deletes a single association row. It returns
// false, not an error, when no such row exists.
func (r *ProjectEmployeeRepository) RemoveEmployeeFromProject(projectID, employeeID string) (bool, error) {
	result := r.DB().
		Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		Delete(&models.ProjectEmployee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveAllEmployeesFromProject deletes every association row for the
// given project. It returns false when there was nothing to delete.
func (r *ProjectEmployeeRepository) RemoveAllEmployeesFromProject(projectID string) (bool, error) {
	result := r.DB().
		Where("project_id = ?", projectID).
		Delete(&models.ProjectEmployee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindEmployeesByProjectID retrieves the association rows for a project
// with the employee side eager-loaded for display
func (r *ProjectEmployeeRepository) FindEmployeesByProjectID(projectID string) ([]models.ProjectEmployee, error) {
	links := make([]models.ProjectEmployee, 0)
	result := r.DB().
		Where("project_id = ?", projectID).
		Preload("Employee").
		Find(&links)
	return links, result.Error
}

// FindProjectsByEmployeeID retrieves the projects an employee is assigned
// to, used when deciding how to handle an employee deletion
func (r *ProjectEmployeeRepository) FindProjectsByEmployeeID(employeeID string) ([]models.Project, error) {
	links := make([]models.ProjectEmployee, 0)
	result := r.DB().
		Where("employee_id = ?", employeeID).
		Preload("Project").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]models.Project, 0, len(links))
	for _, link := range links {
		if link.Project != nil {
			projects = append(projects, *link.Project)
		}
	}
	return projects, nil
}
