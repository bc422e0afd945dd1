// Package authorization defines user roles and role-based checks shared
// between the domain and the HTTP layer.
package authorization

type UserRole string

const (
	RoleEndUser      UserRole = "end_user"
	RoleSupportAgent UserRole = "support_agent"
	RoleAdmin        UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsSupportAgent() bool {
	return r == RoleSupportAgent
}

// IsStaff reports whether the role may act on tickets it does not own.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleSupportAgent
}

func (r UserRole) IsValid() bool {
	return r == RoleEndUser || r == RoleSupportAgent || r == RoleAdmin
}

// ParseUserRole maps a raw string to a UserRole, defaulting to end_user
// for anything unrecognized.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEndUser
}
