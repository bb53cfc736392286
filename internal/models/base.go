// internal/models/base.go
package models

// Role is the closed set of account roles. It is stored as text but every
// permission check compares typed values, never raw strings.
type Role string

const (
	RoleUnprivileged Role = "unprivileged"
	RolePlayer       Role = "player"
	RoleManager      Role = "manager"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUnprivileged, RolePlayer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
