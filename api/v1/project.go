package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
	"github.com/projectdesk/services"
)

// ProjectController exposes project operations over HTTP, including the
// employee assignment endpoints
type ProjectController struct {
	projects *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// RegisterRoutes registers project API routes
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", pc.ListProjects)
		projectGroup.POST("", pc.CreateProject)
		projectGroup.GET("/search", pc.SearchProjects)
		projectGroup.GET("/:id", pc.GetProject)
		projectGroup.PUT("/:id", pc.UpdateProject)
		projectGroup.DELETE("/:id", pc.DeleteProject)

		// Assignment operations
		projectGroup.POST("/:id/employees", pc.AssignEmployees)
		projectGroup.DELETE("/:id/employees/:employeeId", pc.RemoveEmployee)
	}
}

// ListProjects returns every project with customer data inlined. An
// optional status query parameter narrows the list to one lifecycle state.
func (pc *ProjectController) ListProjects(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseProjectStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": pc.projects.GetByStatus(status)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   pc.projects.GetAll(),
	})
}

// SearchProjects returns projects whose customer name or email contains
// the search term
func (pc *ProjectController) SearchProjects(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Query parameter q is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   pc.projects.GetByCustomerNameOrEmail(term),
	})
}

// CreateProject registers a new project for an existing customer
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var form dto.ProjectRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !pc.projects.Create(form) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// GetProject returns a single project by id
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, found := pc.projects.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": project})
}

// UpdateProject applies a partial update; a non-nil employeeIds list
// replaces the whole assignment set
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !pc.projects.Update(c.Param("id"), req) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteProject removes a project. The delete is idempotent, so a missing
// project still reports success.
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	if !pc.projects.Delete(c.Param("id")) {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// AssignEmployees links the given employees to a project
func (pc *ProjectController) AssignEmployees(c *gin.Context) {
	var req dto.AssignEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body: " + err.Error()})
		return
	}

	if !pc.projects.AssignEmployees(c.Param("id"), req.EmployeeIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Failed to assign employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// RemoveEmployee unlinks a single employee from a project
func (pc *ProjectController) RemoveEmployee(c *gin.Context) {
	if !pc.projects.RemoveEmployeeFromProject(c.Param("id"), c.Param("employeeId")) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Assignment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
