package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
	"github.com/projectdesk/services"
)

// EmployeeController exposes employee operations over HTTP
type EmployeeController struct {
	employees *services.EmployeeService
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employees: employees}
}

// RegisterRoutes registers employee API routes
func (ec *EmployeeController) RegisterRoutes(router *gin.RouterGroup) {
	employeeGroup := router.Group("/employees")
	{
		employeeGroup.GET("", ec.ListEmployees)
		employeeGroup.POST("", ec.CreateEmployee)
		employeeGroup.GET("/:id", ec.GetEmployee)
		employeeGroup.PUT("/:id", ec.UpdateEmployee)
		employeeGroup.DELETE("/:id", ec.DeleteEmployee)
	}
}

// ListEmployees returns every employee, or only those filling the role
// given as a query parameter
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	if raw := c.Query("role"); raw != "" {
		role, err := models.ParseEmployeeRole(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": ec.employees.GetByRole(role)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   ec.employees.GetAll(),
	})
}

// CreateEmployee registers a new employee
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var form dto.EmployeeRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !ec.employees.Create(form) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// GetEmployee returns a single employee by id
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employee, found := ec.employees.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": employee})
}

// UpdateEmployee applies a partial update to an employee
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !ec.employees.Update(c.Param("id"), req) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Employee update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteEmployee removes an employee
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	if !ec.employees.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
