package session

import (
	"net/http"
	"strings"

	"jobbox/internal/common"
	"jobbox/internal/domain/user"
)

// Manager is the only writer of the session record. Reads are open to
// everyone; Login and Logout are the two mutation sites.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Login stores the {token, role, userId} triple. All three fields must
// be present; a store failure surfaces as storage_unavailable and the
// previous session stays in place.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, token string, role user.Role, userID string) error {
	token = strings.TrimSpace(token)
	userID = strings.TrimSpace(userID)
	if token == "" || userID == "" || !role.Known() {
		return common.NewError(common.CodeValidation, "incomplete login result", nil)
	}
	record := Session{Token: token, Role: role, UserID: userID}
	if err := m.store.Save(w, r, record); err != nil {
		return common.NewError(common.CodeStorageUnavailable, "could not persist session", err)
	}
	return nil
}

// Logout clears the record. A cleared session is fully absent:
// IsAuthenticated reports false afterwards.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	if err := m.store.Clear(w, r); err != nil {
		return common.NewError(common.CodeStorageUnavailable, "could not clear session", err)
	}
	return nil
}

// Current returns the stored session, or the zero session when none is
// stored or the store cannot be read.
func (m *Manager) Current(r *http.Request) Session {
	loaded, err := m.store.Load(r)
	if err != nil {
		return Session{}
	}
	return loaded
}

func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Current(r).Authenticated()
}

func (m *Manager) CurrentRole(r *http.Request) user.Role {
	return m.Current(r).Role
}
