package models

const (
	RoleAdmin = "admin"

	UserEmailField = "email"
	UserRoleField  = "role"

	// Carts and favourites reference their owner by this field.
	OwnerEmailField = "UserEmail"

	DuplicateUserMessage = "User already exist"
)

// AdminStatus is the body of GET /users/admin/:email.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// DuplicateUser is returned instead of inserting an already registered email.
type DuplicateUser struct {
	Message string `json:"message"`
}
