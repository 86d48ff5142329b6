package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(
	router *gin.RouterGroup,
	customers *services.CustomerService,
	employees *services.EmployeeService,
	projects *services.ProjectService,
) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	NewCustomerController(customers, projects).RegisterRoutes(router)
	NewEmployeeController(employees).RegisterRoutes(router)
	NewProjectController(projects).RegisterRoutes(router)
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "projectdesk",
	})
}
