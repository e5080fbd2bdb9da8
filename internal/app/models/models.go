package models

// Role defines the user role type
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request. The zero value is an anonymous viewer.
type Principal struct {
	UserID int64
	Role   Role
}

// Anonymous reports whether no user is attached
func (p Principal) Anonymous() bool {
	return p.UserID <= 0
}

// IsAdmin reports whether the caller has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
