package models

// Roles carried in the access token
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

// Address represents a delivery address
type Address struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	ZipCode   string `json:"zipCode"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
}

// User represents the signed-in account
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// LoginResult is returned by the backend auth endpoint
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
