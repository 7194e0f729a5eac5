package user

import "strings"

type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleNone    Role = ""
)

// ParseRole normalizes a role string from the remote API or a stored
// session. Anything outside the two known roles maps to RoleNone so
// role checks fail closed.
func ParseRole(value string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleStudent:
		return RoleStudent
	case RoleCompany:
		return RoleCompany
	default:
		return RoleNone
	}
}

func (r Role) Known() bool {
	return r == RoleStudent || r == RoleCompany
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
