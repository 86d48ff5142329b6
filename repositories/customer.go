package repositories

import (
	"github.com/projectdesk/models"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	*Repository[models.Customer]
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Repository: NewRepository[models.Customer](db)}
}
