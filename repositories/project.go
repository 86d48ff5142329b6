package repositories

import (
	"errors"

	"github.com/projectdesk/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	*Repository[models.Project]
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{Repository: NewRepository[models.Project](db)}
}

// FindAllWithCustomer retrieves all projects with their owning customer
// eager-loaded, so listings resolve the customer name without a round trip
// per project.
func (r *ProjectRepository) FindAllWithCustomer() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	result := r.DB().Preload("Customer").Find(&projects)
	return projects, result.Error
}

// FindByIDWithCustomer retrieves a single project with its customer eager-loaded
func (r *ProjectRepository) FindByIDWithCustomer(id string) (models.Project, bool, error) {
	var project models.Project
	result := r.DB().Preload("Customer").First(&project, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, false, nil
	}
	if result.Error != nil {
		return project, false, result.Error
	}
	return project, true, nil
}
