// Package authgate decides whether the current session may see a
// view. Decide is a pure function of the view's requirement and a
// session snapshot; acting on the decision (redirecting) is the HTTP
// layer's job.
package authgate

import (
	"jobbox/internal/domain/user"
	"jobbox/internal/session"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDefault:
		return "redirect_default"
	default:
		return "unknown"
	}
}

type requirementKind int

const (
	kindPublicOnly requirementKind = iota
	kindAnyAuthenticated
	kindRoles
)

// Requirement is a view's declared access rule.
type Requirement struct {
	kind  requirementKind
	roles []user.Role
}

// PublicOnly admits only unauthenticated sessions (login and signup
// pages send logged-in users away).
func PublicOnly() Requirement {
	return Requirement{kind: kindPublicOnly}
}

// AnyAuthenticated admits every logged-in session regardless of role.
func AnyAuthenticated() Requirement {
	return Requirement{kind: kindAnyAuthenticated}
}

// Roles admits logged-in sessions whose role is in the set. Unknown
// roles in the set match nobody.
func Roles(roles ...user.Role) Requirement {
	return Requirement{kind: kindRoles, roles: roles}
}

// Decide maps a requirement and a session snapshot to an outcome.
func Decide(req Requirement, s session.Session) Decision {
	switch req.kind {
	case kindPublicOnly:
		if s.Authenticated() {
			return RedirectDefault
		}
		return Allow
	case kindAnyAuthenticated:
		if s.Authenticated() {
			return Allow
		}
		return RedirectLogin
	default:
		if !s.Authenticated() {
			return RedirectLogin
		}
		for _, role := range req.roles {
			if role.Known() && s.Role == role {
				return Allow
			}
		}
		return RedirectDefault
	}
}
