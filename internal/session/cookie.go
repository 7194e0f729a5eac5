package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"jobbox/internal/domain/user"
)

const (
	cookieName = "jobbox-session"

	keyToken  = "token"
	keyRole   = "role"
	keyUserID = "user_id"
)

// CookieStore keeps the whole record inside one signed cookie, so a
// write either produces the new cookie or leaves the old one with the
// browser.
type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(secret []byte, ttl int) *CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   ttl,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

func (c *CookieStore) Load(r *http.Request) (Session, error) {
	// Get only errors on a tampered cookie; treat that as logged out.
	stored, err := c.store.Get(r, cookieName)
	if err != nil || stored.IsNew {
		return Session{}, nil
	}
	token, _ := stored.Values[keyToken].(string)
	role, _ := stored.Values[keyRole].(string)
	userID, _ := stored.Values[keyUserID].(string)
	loaded := Session{Token: token, Role: user.ParseRole(role), UserID: userID}
	if !loaded.Complete() {
		return Session{}, nil
	}
	return loaded, nil
}

func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s Session) error {
	stored, _ := c.store.Get(r, cookieName)
	stored.Values[keyToken] = s.Token
	stored.Values[keyRole] = string(s.Role)
	stored.Values[keyUserID] = s.UserID
	if err := stored.Save(r, w); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	stored, _ := c.store.Get(r, cookieName)
	stored.Values = map[any]any{}
	stored.Options.MaxAge = -1
	if err := stored.Save(r, w); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
