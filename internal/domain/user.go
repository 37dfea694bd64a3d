package domain

// Role enumerates platform account roles.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleStaff       Role = "staff"
	RoleCoordinator Role = "coordinator"
)

// Identity is the read-only projection of the current session.
type Identity struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
