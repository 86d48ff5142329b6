package repositories

import (
	"github.com/projectdesk/models"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	*Repository[models.Employee]
}

// NewEmployeeRepository creates a new employee repository instance
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{Repository: NewRepository[models.Employee](db)}
}
