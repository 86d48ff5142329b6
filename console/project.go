package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

func (a *App) projectMenu() {
	for {
		fmt.Println("\n---------------- PROJECTS -----------------")
		fmt.Println("1. Create project")
		fmt.Println("2. View projects")
		fmt.Println("3. Search projects by customer")
		fmt.Println("4. Update project")
		fmt.Println("5. Assign employees")
		fmt.Println("6. Delete project")
		fmt.Println("0. Back")

		switch a.readLine("\nSelect an option: ") {
		case "1":
			a.createProjectDialog()
		case "2":
			a.viewProjectsDialog(a.projects.GetAll())
		case "3":
			a.searchProjectsDialog()
		case "4":
			a.updateProjectDialog()
		case "5":
			a.assignEmployeesDialog()
		case "6":
			a.deleteProjectDialog()
		case "0":
			return
		default:
			fmt.Println("Invalid option, please try again.")
		}
	}
}

// readDate parses an optional YYYY-MM-DD input; blank means unset
func (a *App) readDate(prompt string) *time.Time {
	for {
		value := a.readLine(prompt)
		if value == "" {
			return nil
		}
		parsed, err := time.Parse("2006-01-02", value)
		if err == nil {
			return &parsed
		}
		fmt.Println("Invalid date, use the format YYYY-MM-DD.")
	}
}

// pickStatus offers the numbered status list; fallback is returned on
// invalid input
func (a *App) pickStatus(fallback models.ProjectStatus) models.ProjectStatus {
	for i, status := range statusChoices {
		fmt.Printf("%d. %s\n", i+1, formatStatus(status))
	}

	idx := a.selectIndex("Select status: ", len(statusChoices))
	if idx < 0 {
		return fallback
	}
	return statusChoices[idx]
}

func (a *App) createProjectDialog() {
	fmt.Println("\n-------------- CREATE PROJECT -------------")

	customers := a.projects.GetAvailableCustomers()
	if len(customers) == 0 {
		fmt.Println("No customers found. Create a customer first.")
		return
	}

	for i, customer := range customers {
		fmt.Printf("%d. %s\n", i+1, customer.Name)
	}
	idx := a.selectIndex("\nSelect the owning customer: ", len(customers))
	if idx < 0 {
		fmt.Println("Invalid selection.")
		return
	}

	form := dto.ProjectRegistrationForm{
		Title:       a.readRequired("Title: "),
		Description: a.readLine("Description (optional): "),
		StartDate:   a.readDate("Start date (YYYY-MM-DD, optional): "),
		EndDate:     a.readDate("End date (YYYY-MM-DD, optional): "),
		Status:      a.pickStatus(models.StatusNotStarted),
		CustomerID:  customers[idx].ID,
	}

	if a.projects.Create(form) {
		fmt.Println("Project created successfully!")
	} else {
		fmt.Println("Failed to create project.")
	}
}

func (a *App) viewProjectsDialog(projects []dto.Project) {
	fmt.Println("\n--------------- PROJECTS ------------------")

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	for i, project := range projects {
		fmt.Printf("%d. %s  [%s]\n", i+1, project.Title, formatStatus(project.Status))
		fmt.Printf("   Customer: %s | Start: %s | End: %s\n",
			project.CustomerName, formatDate(project.StartDate), formatDate(project.EndDate))
		fmt.Printf("   Assigned: %s\n", a.assignedEmployeeNames(project.ID))
	}
}

// assignedEmployeeNames renders the assigned employees of a project as a
// comma-separated list for display
func (a *App) assignedEmployeeNames(projectID string) string {
	links, err := a.links.FindEmployeesByProjectID(projectID)
	if err != nil || len(links) == 0 {
		return "-"
	}

	names := make([]string, 0, len(links))
	for _, link := range links {
		if link.Employee != nil {
			names = append(names, link.Employee.FirstName+" "+link.Employee.LastName)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func (a *App) searchProjectsDialog() {
	term := a.readRequired("\nSearch by customer name or email: ")
	a.viewProjectsDialog(a.projects.GetByCustomerNameOrEmail(term))
}

// pickProject lists all projects and returns the selected one
func (a *App) pickProject() (dto.Project, bool) {
	projects := a.projects.GetAll()
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return dto.Project{}, false
	}

	for i, project := range projects {
		fmt.Printf("%d. %s (%s)\n", i+1, project.Title, project.CustomerName)
	}

	idx := a.selectIndex("\nEnter project number: ", len(projects))
	if idx < 0 {
		fmt.Println("Invalid selection.")
		return dto.Project{}, false
	}
	return projects[idx], true
}

func (a *App) updateProjectDialog() {
	fmt.Println("\n-------------- UPDATE PROJECT -------------")

	project, ok := a.pickProject()
	if !ok {
		return
	}

	fmt.Println("\nLeave a field blank to keep the current value.")
	req := dto.UpdateProjectRequest{
		Title:       a.readOptional(fmt.Sprintf("Title [%s]: ", project.Title)),
		Description: a.readOptional(fmt.Sprintf("Description [%s]: ", project.Description)),
		StartDate:   a.readDate(fmt.Sprintf("Start date [%s]: ", formatDate(project.StartDate))),
		EndDate:     a.readDate(fmt.Sprintf("End date [%s]: ", formatDate(project.EndDate))),
	}

	fmt.Printf("Current status: %s\n", formatStatus(project.Status))
	req.Status = a.pickStatus(project.Status)

	if a.confirm("Replace the assigned employee set?") {
		req.EmployeeIDs = a.pickEmployeeSet()
	}

	if a.projects.Update(project.ID, req) {
		fmt.Println("Project updated successfully!")
	} else {
		fmt.Println("Nothing was updated.")
	}
}

// pickEmployeeSet asks for a comma-separated selection of employees and
// returns their ids. An empty selection returns an empty, non-nil slice,
// which clears all assignments.
func (a *App) pickEmployeeSet() []string {
	employees := a.employees.GetAll()
	if len(employees) == 0 {
		fmt.Println("No employees found, the assignment set will be cleared.")
		return []string{}
	}

	for i, employee := range employees {
		fmt.Printf("%d. %s %s (%s)\n", i+1, employee.FirstName, employee.LastName, formatRole(employee.Role))
	}

	selection := a.readLine("Employee numbers, comma separated (blank clears all): ")
	ids := make([]string, 0)
	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var idx int
		if _, err := fmt.Sscanf(part, "%d", &idx); err != nil || idx < 1 || idx > len(employees) {
			fmt.Printf("Skipping invalid selection %q.\n", part)
			continue
		}
		ids = append(ids, employees[idx-1].ID)
	}
	return ids
}

func (a *App) assignEmployeesDialog() {
	fmt.Println("\n------------- ASSIGN EMPLOYEES ------------")

	project, ok := a.pickProject()
	if !ok {
		return
	}

	ids := a.pickEmployeeSet()
	if len(ids) == 0 {
		fmt.Println("No employees selected.")
		return
	}

	if a.projects.AssignEmployees(project.ID, ids) {
		fmt.Println("Employees assigned successfully!")
	} else {
		fmt.Println("Failed to assign employees.")
	}
}

func (a *App) deleteProjectDialog() {
	fmt.Println("\n-------------- DELETE PROJECT -------------")

	project, ok := a.pickProject()
	if !ok {
		return
	}

	if !a.confirm(fmt.Sprintf("Delete project %q?", project.Title)) {
		return
	}

	if a.projects.Delete(project.ID) {
		fmt.Println("Project deleted successfully!")
	} else {
		fmt.Println("Failed to delete project.")
	}
}
