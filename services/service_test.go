package services

import (
	"testing"

	"github.com/projectdesk/database"
	"github.com/projectdesk/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// newServices wires the full service stack against one test database
func newServices(t *testing.T) (*CustomerService, *EmployeeService, *ProjectService) {
	t.Helper()

	db := newTestDB(t)
	customerRepo := repositories.NewCustomerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	linkRepo := repositories.NewProjectEmployeeRepository(db)

	return NewCustomerService(customerRepo),
		NewEmployeeService(employeeRepo),
		NewProjectService(projectRepo, employeeRepo, customerRepo, linkRepo)
}

func strPtr(s string) *string {
	return &s
}
