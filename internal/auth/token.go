package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrTokenExpired             = errors.New("access token expired")
	ErrNoToken                  = errors.New("no access token configured")
)

// expiryBuffer treats tokens that are about to expire as already expired.
const expiryBuffer = 30 * time.Second

// TokenManager supplies the bearer token for each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// Token is a bearer credential with an optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token can be used. A zero ExpiresAt never expires.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds a token behind a lock.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}

// StaticTokenManager serves a fixed API key or OAuth access token.
type StaticTokenManager struct {
	store TokenStore
}

// NewStaticTokenManager creates a manager for a token that never expires.
func NewStaticTokenManager(token string) *StaticTokenManager {
	manager := &StaticTokenManager{}
	manager.store.Set(&Token{AccessToken: token})

	return manager
}

// GetToken returns the token, failing once it has expired.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.AccessToken == "" {
		return "", ErrNoToken
	}

	if !token.Valid() {
		return "", ErrTokenExpired
	}

	return token.AccessToken, nil
}

// RefreshToken always fails: a static credential cannot be renewed.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the token, e.g. with a freshly issued OAuth access token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}
