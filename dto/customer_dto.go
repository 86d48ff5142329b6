package dto

import "time"

// CustomerRegistrationForm represents the payload for creating a new customer
type CustomerRegistrationForm struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest represents a partial customer update.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Customer is the read model returned to callers
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
