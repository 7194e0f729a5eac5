package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
)

const sidCookieName = "jobbox-sid"

// RedisStore keeps the record server-side: the browser holds only a
// signed session id cookie and the record lives in redis under one key
// with a TTL, so the triple is replaced in a single SET.
type RedisStore struct {
	client *redis.Client
	codec  *securecookie.SecureCookie
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, secret []byte, ttl time.Duration) *RedisStore {
	codec := securecookie.New(secret, nil)
	codec.MaxAge(int(ttl.Seconds()))
	return &RedisStore{client: client, codec: codec, ttl: ttl}
}

func (s *RedisStore) Load(r *http.Request) (Session, error) {
	sid, ok := s.sidFromRequest(r)
	if !ok {
		return Session{}, nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), 250*time.Millisecond)
	defer cancel()
	raw, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if err == redis.Nil {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var loaded Session
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return Session{}, nil
	}
	if !loaded.Complete() {
		return Session{}, nil
	}
	return loaded, nil
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, record Session) error {
	sid, ok := s.sidFromRequest(r)
	if !ok {
		sid = uuid.NewString()
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	// Encode before touching redis: a codec failure after SET would
	// leave the new record reachable through the caller's prior cookie.
	encoded, err := s.codec.Encode(sidCookieName, sid)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	ctx, cancel := context.WithTimeout(r.Context(), 250*time.Millisecond)
	defer cancel()
	if err := s.client.Set(ctx, sessionKey(sid), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sidCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	if sid, ok := s.sidFromRequest(r); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 250*time.Millisecond)
		defer cancel()
		if err := s.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sidCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *RedisStore) sidFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sidCookieName)
	if err != nil {
		return "", false
	}
	var sid string
	if err := s.codec.Decode(sidCookieName, cookie.Value, &sid); err != nil {
		return "", false
	}
	return sid, sid != ""
}

func sessionKey(sid string) string {
	return "session:" + sid
}
