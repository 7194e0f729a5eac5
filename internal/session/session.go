// Package session owns the only durable client-side state of the
// front-end: the {token, role, userId} triple for the current login.
// The record is written as a single unit so the triple is either fully
// present or fully absent, never partially populated.
package session

import (
	"errors"
	"net/http"

	"jobbox/internal/domain/user"
)

// Session is the composite record a store persists.
type Session struct {
	Token  string    `json:"token"`
	Role   user.Role `json:"role"`
	UserID string    `json:"user_id"`
}

// Authenticated reports whether a login token is held.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Complete reports whether all three fields are populated. A stored
// record is complete or empty; anything else is a corrupt session and
// treated as logged out.
func (s Session) Complete() bool {
	return s.Token != "" && s.Role.Known() && s.UserID != ""
}

var ErrStorageUnavailable = errors.New("session storage unavailable")

// Store persists the session record for a browser. Save replaces the
// whole record in one write; a failed Save must leave the previous
// record intact.
type Store interface {
	Load(r *http.Request) (Session, error)
	Save(w http.ResponseWriter, r *http.Request, s Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}
