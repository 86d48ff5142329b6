package console

import (
	"fmt"

	"github.com/projectdesk/dto"
	"github.com/projectdesk/models"
)

func (a *App) customerMenu() {
	for {
		fmt.Println("\n--------------- CUSTOMERS -----------------")
		fmt.Println("1. Create customer")
		fmt.Println("2. View customers")
		fmt.Println("3. Update customer")
		fmt.Println("4. Delete customer")
		fmt.Println("0. Back")

		switch a.readLine("\nSelect an option: ") {
		case "1":
			a.createCustomerDialog()
		case "2":
			a.viewCustomersDialog()
		case "3":
			a.updateCustomerDialog()
		case "4":
			a.deleteCustomerDialog()
		case "0":
			return
		default:
			fmt.Println("Invalid option, please try again.")
		}
	}
}

func (a *App) createCustomerDialog() {
	fmt.Println("\n------------- CREATE CUSTOMER -------------")

	form := dto.CustomerRegistrationForm{
		Name:  a.readRequired("Name: "),
		Email: a.readLine("Email (optional): "),
		Phone: a.readLine("Phone (optional): "),
	}

	if a.customers.Create(form) {
		fmt.Println("Customer created successfully!")
	} else {
		fmt.Println("Failed to create customer.")
	}
}

func (a *App) viewCustomersDialog() {
	fmt.Println("\n-------------- VIEW CUSTOMERS -------------")

	customers := a.customers.GetAll()
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return
	}

	for i, customer := range customers {
		email := customer.Email
		if email == "" {
			email = "-"
		}
		fmt.Printf("%d. %s  (email: %s, phone: %s)\n", i+1, customer.Name, email, customer.Phone)
	}
}

// pickCustomer lists all customers and returns the selected one
func (a *App) pickCustomer() (dto.Customer, bool) {
	customers := a.customers.GetAll()
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return dto.Customer{}, false
	}

	for i, customer := range customers {
		fmt.Printf("%d. %s\n", i+1, customer.Name)
	}

	idx := a.selectIndex("\nEnter customer number: ", len(customers))
	if idx < 0 {
		fmt.Println("Invalid selection.")
		return dto.Customer{}, false
	}
	return customers[idx], true
}

func (a *App) updateCustomerDialog() {
	fmt.Println("\n------------- UPDATE CUSTOMER -------------")

	customer, ok := a.pickCustomer()
	if !ok {
		return
	}

	fmt.Println("\nLeave a field blank to keep the current value.")
	req := dto.UpdateCustomerRequest{
		Name:  a.readOptional(fmt.Sprintf("Name [%s]: ", customer.Name)),
		Email: a.readOptional(fmt.Sprintf("Email [%s]: ", customer.Email)),
		Phone: a.readOptional(fmt.Sprintf("Phone [%s]: ", customer.Phone)),
	}

	if a.customers.Update(customer.ID, req) {
		fmt.Println("Customer updated successfully!")
	} else {
		fmt.Println("Nothing was updated.")
	}
}

// deleteCustomerDialog enforces the rule that a customer may only be
// deleted once every owned project has been completed
func (a *App) deleteCustomerDialog() {
	fmt.Println("\n------------- DELETE CUSTOMER -------------")

	customer, ok := a.pickCustomer()
	if !ok {
		return
	}

	projects := a.projects.GetByCustomerID(customer.ID)
	for _, project := range projects {
		if project.Status == models.StatusCompleted {
			continue
		}

		fmt.Printf("Project %q is %s and must be completed before the customer can be deleted.\n",
			project.Title, formatStatus(project.Status))
		if !a.confirm("Mark it as completed?") {
			fmt.Println("Customer deletion cancelled.")
			return
		}

		if !a.projects.Update(project.ID, dto.UpdateProjectRequest{Status: models.StatusCompleted}) {
			fmt.Println("Failed to complete the project. Customer deletion cancelled.")
			return
		}
	}

	if !a.confirm(fmt.Sprintf("Delete customer %q?", customer.Name)) {
		return
	}

	if a.customers.Delete(customer.ID) {
		fmt.Println("Customer deleted successfully!")
	} else {
		fmt.Println("Failed to delete customer.")
	}
}
