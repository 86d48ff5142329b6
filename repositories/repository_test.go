package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/projectdesk/database"
	"github.com/projectdesk/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return db
}

func mustCreateCustomer(t *testing.T, repo *CustomerRepository, name string) models.Customer {
	t.Helper()
	entity, err := repo.Create(models.Customer{ID: uuid.NewString(), Name: name})
	if err != nil {
		t.Fatalf("creating customer %q: %v", name, err)
	}
	return entity
}

func mustCreateEmployee(t *testing.T, repo *EmployeeRepository, firstName string) models.Employee {
	t.Helper()
	entity, err := repo.Create(models.Employee{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  "Doe",
		Role:      models.RoleDeveloper,
	})
	if err != nil {
		t.Fatalf("creating employee %q: %v", firstName, err)
	}
	return entity
}

func mustCreateProject(t *testing.T, repo *ProjectRepository, title, customerID string) models.Project {
	t.Helper()
	entity, err := repo.Create(models.Project{
		ID:         uuid.NewString(),
		Title:      title,
		Status:     models.StatusNotStarted,
		CustomerID: customerID,
	})
	if err != nil {
		t.Fatalf("creating project %q: %v", title, err)
	}
	return entity
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	created := mustCreateCustomer(t, repo, "Acme")

	fetched, found, err := repo.FindOne("id = ?", created.ID)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if !found || fetched.Name != "Acme" {
		t.Fatalf("expected to fetch the created customer, got found=%v entity=%+v", found, fetched)
	}

	fetched.Name = "Acme Industries"
	if _, err := repo.Save(fetched); err != nil {
		t.Fatalf("Save: %v", err)
	}
	updated, _, _ := repo.FindOne("id = ?", created.ID)
	if updated.Name != "Acme Industries" {
		t.Errorf("expected the saved mutation to persist, got %q", updated.Name)
	}
}

func TestRepositoryFindAllEmptyIsNotNil(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if all == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(all) != 0 {
		t.Fatalf("expected no rows, got %d", len(all))
	}
}

func TestRepositoryFindOneMissing(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	_, found, err := repo.FindOne("id = ?", "no-such-id")
	if err != nil {
		t.Fatalf("a missing row must not surface as an error, got %v", err)
	}
	if found {
		t.Error("expected found=false for a missing row")
	}
}

func TestRepositoryFindWhere(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))

	mustCreateEmployee(t, repo, "Ada")
	carol := mustCreateEmployee(t, repo, "Carol")

	matches, err := repo.FindWhere("first_name = ?", "Carol")
	if err != nil {
		t.Fatalf("FindWhere: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != carol.ID {
		t.Errorf("expected exactly the Carol row, got %+v", matches)
	}
}

func TestRepositoryDeleteReportsRowRemoval(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	created := mustCreateCustomer(t, repo, "Acme")

	removed, err := repo.Delete(created)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected true when a row was removed")
	}

	removed, err = repo.Delete(created)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if removed {
		t.Error("expected false when no row was left to remove")
	}
}

func TestProjectRepositoryPreloadsCustomer(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	projects := NewProjectRepository(db)

	customer := mustCreateCustomer(t, customers, "Acme")
	created := mustCreateProject(t, projects, "Launch", customer.ID)

	all, err := projects.FindAllWithCustomer()
	if err != nil {
		t.Fatalf("FindAllWithCustomer: %v", err)
	}
	if len(all) != 1 || all[0].Customer == nil || all[0].Customer.Name != "Acme" {
		t.Fatalf("expected the customer to be eager-loaded, got %+v", all)
	}

	single, found, err := projects.FindByIDWithCustomer(created.ID)
	if err != nil {
		t.Fatalf("FindByIDWithCustomer: %v", err)
	}
	if !found || single.Customer == nil || single.Customer.Name != "Acme" {
		t.Fatalf("expected the single fetch to eager-load the customer, got found=%v entity=%+v", found, single)
	}
}

func TestProjectEmployeeAssignIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)
	projects := NewProjectRepository(db)
	links := NewProjectEmployeeRepository(db)

	customer := mustCreateCustomer(t, customers, "Acme")
	project := mustCreateProject(t, projects, "Launch", customer.ID)
	employee := mustCreateEmployee(t, employees, "Ada")

	link := models.ProjectEmployee{ProjectID: project.ID, EmployeeID: employee.ID}
	if err := links.Assign(link); err != nil {
		t.Fatalf("first Assign: %v", err)
	}
	if err := links.Assign(link); err != nil {
		t.Fatalf("repeated Assign must not fail: %v", err)
	}

	rows, err := links.FindEmployeesByProjectID(project.ID)
	if err != nil {
		t.Fatalf("FindEmployeesByProjectID: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single association row, got %d", len(rows))
	}
	if rows[0].Employee == nil || rows[0].Employee.FirstName != "Ada" {
		t.Errorf("expected the employee side to be eager-loaded, got %+v", rows[0])
	}
}

func TestProjectEmployeeRemoveSingle(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)
	projects := NewProjectRepository(db)
	links := NewProjectEmployeeRepository(db)

	customer := mustCreateCustomer(t, customers, "Acme")
	project := mustCreateProject(t, projects, "Launch", customer.ID)
	employee := mustCreateEmployee(t, employees, "Ada")
	if err := links.Assign(models.ProjectEmployee{ProjectID: project.ID, EmployeeID: employee.ID}); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	removed, err := links.RemoveEmployeeFromProject(project.ID, "no-such-employee")
	if err != nil {
		t.Fatalf("RemoveEmployeeFromProject: %v", err)
	}
	if removed {
		t.Error("expected false when the pair does not exist")
	}

	removed, err = links.RemoveEmployeeFromProject(project.ID, employee.ID)
	if err != nil {
		t.Fatalf("RemoveEmployeeFromProject: %v", err)
	}
	if !removed {
		t.Error("expected true when the pair was deleted")
	}
}

func TestProjectEmployeeRemoveAll(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)
	projects := NewProjectRepository(db)
	links := NewProjectEmployeeRepository(db)

	customer := mustCreateCustomer(t, customers, "Acme")
	project := mustCreateProject(t, projects, "Launch", customer.ID)
	for _, name := range []string{"Ada", "Brian"} {
		employee := mustCreateEmployee(t, employees, name)
		if err := links.Assign(models.ProjectEmployee{ProjectID: project.ID, EmployeeID: employee.ID}); err != nil {
			t.Fatalf("Assign: %v", err)
		}
	}

	removed, err := links.RemoveAllEmployeesFromProject(project.ID)
	if err != nil {
		t.Fatalf("RemoveAllEmployeesFromProject: %v", err)
	}
	if !removed {
		t.Error("expected true after deleting the association rows")
	}

	removed, err = links.RemoveAllEmployeesFromProject(project.ID)
	if err != nil {
		t.Fatalf("second RemoveAllEmployeesFromProject: %v", err)
	}
	if removed {
		t.Error("expected false when there was nothing left to delete")
	}
}

func TestFindProjectsByEmployeeID(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)
	projects := NewProjectRepository(db)
	links := NewProjectEmployeeRepository(db)

	customer := mustCreateCustomer(t, customers, "Acme")
	launch := mustCreateProject(t, projects, "Launch", customer.ID)
	mustCreateProject(t, projects, "Maintenance", customer.ID)
	employee := mustCreateEmployee(t, employees, "Ada")
	if err := links.Assign(models.ProjectEmployee{ProjectID: launch.ID, EmployeeID: employee.ID}); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	assigned, err := links.FindProjectsByEmployeeID(employee.ID)
	if err != nil {
		t.Fatalf("FindProjectsByEmployeeID: %v", err)
	}
	if len(assigned) != 1 || assigned[0].Title != "Launch" {
		t.Errorf("expected only the Launch project, got %+v", assigned)
	}

	none, err := links.FindProjectsByEmployeeID("no-such-employee")
	if err != nil {
		t.Fatalf("FindProjectsByEmployeeID: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no projects for an unknown employee, got %+v", none)
	}
}
