package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/projectdesk/repositories"
	"github.com/projectdesk/services"
)

// App is the interactive console application. It drives the services
// through menus and dialogs; every business rule that belongs to the
// presentation layer (completed-projects-before-customer-delete, the
// cascade-vs-unassign choice on employee delete) lives here, not in the
// services.
type App struct {
	customers *services.CustomerService
	employees *services.EmployeeService
	projects  *services.ProjectService
	links     *repositories.ProjectEmployeeRepository
	in        *bufio.Reader
}

// NewApp creates the console application
func NewApp(
	customers *services.CustomerService,
	employees *services.EmployeeService,
	projects *services.ProjectService,
	links *repositories.ProjectEmployeeRepository,
) *App {
	return &App{
		customers: customers,
		employees: employees,
		projects:  projects,
		links:     links,
		in:        bufio.NewReader(os.Stdin),
	}
}

// Run shows the main menu until the user exits
func (a *App) Run() {
	for {
		fmt.Println("\n-------------------------------------------")
		fmt.Println("               PROJECT DESK                ")
		fmt.Println("-------------------------------------------")
		fmt.Println("1. Customers")
		fmt.Println("2. Projects")
		fmt.Println("3. Employees")
		fmt.Println("0. Exit")

		switch a.readLine("\nSelect an option: ") {
		case "1":
			a.customerMenu()
		case "2":
			a.projectMenu()
		case "3":
			a.employeeMenu()
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option, please try again.")
		}
	}
}

// readLine prints a prompt and returns the trimmed input line
func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readRequired keeps prompting until the user enters a non-empty value
func (a *App) readRequired(prompt string) string {
	for {
		value := a.readLine(prompt)
		if value != "" {
			return value
		}
		fmt.Println("This field cannot be empty. Please enter a value.")
	}
}

// readOptional returns nil when the user leaves the field blank, which
// update dialogs interpret as "keep the current value"
func (a *App) readOptional(prompt string) *string {
	value := a.readLine(prompt)
	if value == "" {
		return nil
	}
	return &value
}

// confirm asks a yes/no question
func (a *App) confirm(prompt string) bool {
	answer := strings.ToLower(a.readLine(prompt + " (y/n): "))
	return answer == "y" || answer == "yes"
}

// selectIndex lets the user pick a 1-based entry out of n items. It
// returns -1 on invalid input.
func (a *App) selectIndex(prompt string, n int) int {
	var idx int
	if _, err := fmt.Sscanf(a.readLine(prompt), "%d", &idx); err != nil {
		return -1
	}
	if idx < 1 || idx > n {
		return -1
	}
	return idx - 1
}
