package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/services"
)

// CustomerController exposes customer operations over HTTP
type CustomerController struct {
	customers *services.CustomerService
	projects  *services.ProjectService
}

// NewCustomerController creates a new customer controller
func NewCustomerController(customers *services.CustomerService, projects *services.ProjectService) *CustomerController {
	return &CustomerController{customers: customers, projects: projects}
}

// RegisterRoutes registers customer API routes
func (cc *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customerGroup := router.Group("/customers")
	{
		customerGroup.GET("", cc.ListCustomers)
		customerGroup.POST("", cc.CreateCustomer)
		customerGroup.GET("/:id", cc.GetCustomer)
		customerGroup.PUT("/:id", cc.UpdateCustomer)
		customerGroup.DELETE("/:id", cc.DeleteCustomer)

		// Projects owned by a customer
		customerGroup.GET("/:id/projects", cc.GetCustomerProjects)
	}
}

// ListCustomers returns every customer
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   cc.customers.GetAll(),
	})
}

// CreateCustomer registers a new customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var form dto.CustomerRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !cc.customers.Create(form) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// GetCustomer returns a single customer by id
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, found := cc.customers.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": customer})
}

// UpdateCustomer applies a partial update to a customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !cc.customers.Update(c.Param("id"), req) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Customer update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteCustomer removes a customer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	if !cc.customers.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetCustomerProjects returns the projects owned by a customer
func (cc *CustomerController) GetCustomerProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   cc.projects.GetByCustomerID(c.Param("id")),
	})
}
