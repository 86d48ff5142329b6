package console

import (
	"fmt"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

func (a *App) employeeMenu() {
	for {
		fmt.Println("\n--------------- EMPLOYEES -----------------")
		fmt.Println("1. Create employee")
		fmt.Println("2. View employees")
		fmt.Println("3. Update employee")
		fmt.Println("4. Delete employee")
		fmt.Println("0. Back")

		switch a.readLine("\nSelect an option: ") {
		case "1":
			a.createEmployeeDialog()
		case "2":
			a.viewEmployeesDialog()
		case "3":
			a.updateEmployeeDialog()
		case "4":
			a.deleteEmployeeDialog()
		case "0":
			return
		default:
			fmt.Println("Invalid option, please try again.")
		}
	}
}

// pickRole offers the numbered role list; fallback is returned on invalid
// input so update dialogs can keep the current role
func (a *App) pickRole(fallback models.EmployeeRole) models.EmployeeRole {
	for i, role := range roleChoices {
		fmt.Printf("%d. %s\n", i+1, formatRole(role))
	}

	idx := a.selectIndex("Select role: ", len(roleChoices))
	if idx < 0 {
		return fallback
	}
	return roleChoices[idx]
}

func (a *App) createEmployeeDialog() {
	fmt.Println("\n------------- CREATE EMPLOYEE -------------")

	form := dto.EmployeeRegistrationForm{
		FirstName: a.readRequired("First name: "),
		LastName:  a.readRequired("Last name: "),
		Email:     a.readLine("Email (optional): "),
		Phone:     a.readLine("Phone (optional): "),
		Role:      a.pickRole(models.RoleDeveloper),
	}

	if a.employees.Create(form) {
		fmt.Println("Employee created successfully!")
	} else {
		fmt.Println("Failed to create employee.")
	}
}

func (a *App) viewEmployeesDialog() {
	fmt.Println("\n-------------- VIEW EMPLOYEES -------------")

	employees := a.employees.GetAll()
	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return
	}

	for i, employee := range employees {
		fmt.Printf("%d. %s %s  (%s)\n", i+1, employee.FirstName, employee.LastName, formatRole(employee.Role))
	}
}

// pickEmployee lists all employees and returns the selected one
func (a *App) pickEmployee() (dto.Employee, bool) {
	employees := a.employees.GetAll()
	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return dto.Employee{}, false
	}

	for i, employee := range employees {
		fmt.Printf("%d. %s %s\n", i+1, employee.FirstName, employee.LastName)
	}

	idx := a.selectIndex("\nEnter employee number: ", len(employees))
	if idx < 0 {
		fmt.Println("Invalid selection.")
		return dto.Employee{}, false
	}
	return employees[idx], true
}

func (a *App) updateEmployeeDialog() {
	fmt.Println("\n------------- UPDATE EMPLOYEE -------------")

	employee, ok := a.pickEmployee()
	if !ok {
		return
	}

	fmt.Println("\nLeave a field blank to keep the current value.")
	req := dto.UpdateEmployeeRequest{
		FirstName: a.readOptional(fmt.Sprintf("First name [%s]: ", employee.FirstName)),
		LastName:  a.readOptional(fmt.Sprintf("Last name [%s]: ", employee.LastName)),
		Email:     a.readOptional(fmt.Sprintf("Email [%s]: ", employee.Email)),
		Phone:     a.readOptional(fmt.Sprintf("Phone [%s]: ", employee.Phone)),
	}

	fmt.Printf("Current role: %s\n", formatRole(employee.Role))
	req.Role = a.pickRole(employee.Role)

	if a.employees.Update(employee.ID, req) {
		fmt.Println("Employee updated successfully!")
	} else {
		fmt.Println("Nothing was updated.")
	}
}

// deleteEmployeeDialog handles the two deletion flows: a full delete that
// removes the assignment rows first, or unassigning from every project
// while the employee record survives. The caller chooses which.
func (a *App) deleteEmployeeDialog() {
	fmt.Println("\n------------- DELETE EMPLOYEE -------------")

	employee, ok := a.pickEmployee()
	if !ok {
		return
	}

	assigned, err := a.links.FindProjectsByEmployeeID(employee.ID)
	if err != nil {
		fmt.Println("Failed to look up the employee's projects.")
		return
	}

	fullDelete := true
	if len(assigned) > 0 {
		fmt.Printf("\n%s %s is assigned to %d project(s):\n", employee.FirstName, employee.LastName, len(assigned))
		for _, project := range assigned {
			fmt.Printf("  - %s\n", project.Title)
		}
		fullDelete = a.confirm("Delete the employee completely? (choosing no only removes the project assignments)")
	} else if !a.confirm(fmt.Sprintf("Delete employee %s %s?", employee.FirstName, employee.LastName)) {
		return
	}

	// Association rows go first either way, an employee row never leaves
	// orphaned links behind.
	for _, project := range assigned {
		if !a.projects.RemoveEmployeeFromProject(project.ID, employee.ID) {
			fmt.Println("Failed to remove the employee from a project.")
			return
		}
	}

	if !fullDelete {
		fmt.Println("Employee successfully removed from all projects!")
		return
	}

	if a.employees.Delete(employee.ID) {
		fmt.Println("Employee deleted successfully!")
	} else {
		fmt.Println("Failed to delete employee.")
	}
}
