package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

const (
	headerAPIKey = "X-Api-Key"
	bearerPrefix = "Bearer "
)

var (
	// ErrNoServerKey means the service was deployed without an API key and
	// cannot authenticate anyone.
	ErrNoServerKey = errors.New("proxy api key not configured")
	// ErrBadAPIKey means the caller presented no key or the wrong one.
	ErrBadAPIKey = errors.New("missing or invalid api key")
)

// Auth admits requests carrying the shared proxy API key, either in the
// X-Api-Key header or as an Authorization bearer token.
type Auth struct {
	key string
}

// NewAuth creates an Auth checking against the given key. An empty key is
// allowed at construction time; every Verify then fails with ErrNoServerKey
// so the misconfiguration is visible per request instead of crashing boot.
func NewAuth(key string) *Auth {
	return &Auth{key: key}
}

// Verify checks the request headers for the shared API key.
func (a *Auth) Verify(h http.Header) error {
	if a.key == "" {
		return ErrNoServerKey
	}

	got := strings.TrimSpace(h.Get(headerAPIKey))
	if got == "" {
		auth := strings.TrimSpace(h.Get("Authorization"))
		if len(auth) > len(bearerPrefix) && strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
			got = strings.TrimSpace(auth[len(bearerPrefix):])
		}
	}
	if got == "" {
		return ErrBadAPIKey
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(a.key)) != 1 {
		return ErrBadAPIKey
	}
	return nil
}
