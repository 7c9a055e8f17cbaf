package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	CLIENT
	LAWYER
	JUDGE
	ADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case CLIENT:
		return "CLIENT"
	case LAWYER:
		return "LAWYER"
	case JUDGE:
		return "JUDGE"
	case ADMIN:
		return "ADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "CLIENT":
		return CLIENT
	case "LAWYER":
		return LAWYER
	case "JUDGE":
		return JUDGE
	case "ADMIN":
		return ADMIN
	}
	return NO_ROLE
}
