package users

import "pet-shelter-hub/internal/ports/auth"

type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	Role  auth.Role
}
