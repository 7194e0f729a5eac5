package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-process store used by tests and local runs without
// redis. Records are keyed by an unsigned sid cookie.
type MemStore struct {
	mu      sync.Mutex
	records map[string]Session

	// FailWrites makes Save and Clear report ErrStorageUnavailable
	// without touching the stored record.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]Session)}
}

func (m *MemStore) Load(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(sidCookieName)
	if err != nil {
		return Session{}, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	loaded, ok := m.records[cookie.Value]
	if !ok || !loaded.Complete() {
		return Session{}, nil
	}
	return loaded, nil
}

func (m *MemStore) Save(w http.ResponseWriter, r *http.Request, record Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrStorageUnavailable
	}
	sid := ""
	if cookie, err := r.Cookie(sidCookieName); err == nil {
		sid = cookie.Value
	}
	if sid == "" {
		sid = uuid.NewString()
	}
	m.records[sid] = record
	http.SetCookie(w, &http.Cookie{Name: sidCookieName, Value: sid, Path: "/"})
	return nil
}

func (m *MemStore) Clear(w http.ResponseWriter, r *http.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrStorageUnavailable
	}
	if cookie, err := r.Cookie(sidCookieName); err == nil {
		delete(m.records, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: sidCookieName, Value: "", Path: "/", MaxAge: -1})
	return nil
}
