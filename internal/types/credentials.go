package types

// Role selects which table a login is checked against.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleFaculty Role = "Faculty"
	RoleStudent Role = "Student"
)

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role"     validate:"required,oneof=Admin Faculty Student"`
}
