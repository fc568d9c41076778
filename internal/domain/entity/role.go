package entity

import "slices"

// Role is carried in the access token issued by the identity service.
type Role string

const (
	// RoleUser may manage and trigger only their own alerts.
	RoleUser Role = "user"
	// RoleOperator may run passes over every due alert and read global statistics.
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOperator:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts token claims to Roles, dropping unknown names.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
