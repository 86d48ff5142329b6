package console

import (
	"time"

	"github.com/projectdesk/models"
)

// formatStatus converts a project status to a user-friendly string
func formatStatus(status models.ProjectStatus) string {
	switch status {
	case models.StatusNotStarted:
		return "Not Started"
	case models.StatusInProgress:
		return "In Progress"
	case models.StatusPaused:
		return "Paused"
	case models.StatusCompleted:
		return "Completed"
	}
	return string(status)
}

// formatRole converts an employee role to a user-friendly string
func formatRole(role models.EmployeeRole) string {
	switch role {
	case models.RoleDeveloper:
		return "Developer"
	case models.RoleManager:
		return "Manager"
	case models.RoleDesigner:
		return "Designer"
	}
	return string(role)
}

// formatDate renders an optional date, or a dash when unset
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// statusChoices is the numbered order statuses are offered in dialogs
var statusChoices = []models.ProjectStatus{
	models.StatusNotStarted,
	models.StatusInProgress,
	models.StatusPaused,
	models.StatusCompleted,
}

// roleChoices is the numbered order roles are offered in dialogs
var roleChoices = []models.EmployeeRole{
	models.RoleDeveloper,
	models.RoleManager,
	models.RoleDesigner,
}
