// Package session holds the portal's only piece of cross-page state: the
// persisted bearer credential and the identity derived from it.
//
// The manager is a two-state machine, unauthenticated or authenticated.
// The identity is always derived from the stored token, never held
// independently, so "has a token" and "has an identity" cannot diverge.
package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/metrics"
)

// Storage keys for the credential and its expiry marker. Both are always
// cleared together.
const (
	TokenKey  = "token"
	ExpiryKey = "expires"
)

// Store abstracts where the credential survives between requests. The
// production implementation is cookie-backed; tests use an in-memory map.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Delete(name string)
}

// Manager exposes the narrow mutation API over the persisted credential:
// Login, Logout, and Current. It is constructed per request around that
// request's Store.
type Manager struct {
	store Store
	log   zerolog.Logger
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Current derives the identity from the persisted credential. A stored
// token that no longer decodes is removed on the spot, so corrupt state
// self-heals to unauthenticated instead of lingering.
func (m *Manager) Current() (domain.Identity, bool) {
	raw, ok := m.store.Get(TokenKey)
	if !ok || raw == "" {
		return domain.Identity{}, false
	}

	identity, err := DecodeIdentity(raw)
	if err != nil {
		m.log.Warn().Err(err).Msg("stored credential is undecodable, clearing session")
		metrics.SessionDecodeFailuresTotal.WithLabelValues("restore").Inc()
		m.clear()
		return domain.Identity{}, false
	}
	return identity, true
}

// IsAuthenticated reports whether an identity is currently derivable.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// Token returns the persisted credential, if any.
func (m *Manager) Token() (string, bool) {
	raw, ok := m.store.Get(TokenKey)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// Login persists the freshly issued credential and derives the identity
// from it. An undecodable credential is purged immediately rather than left
// in storage with no identity attached: that half-state would stay invisible
// until a later request failed, and nothing can ever use such a token.
func (m *Manager) Login(token, expires string) (domain.Identity, error) {
	m.store.Set(TokenKey, token)
	if expires != "" {
		m.store.Set(ExpiryKey, expires)
	}

	identity, err := DecodeIdentity(token)
	if err != nil {
		m.log.Warn().Err(err).Msg("freshly issued credential is undecodable, purging")
		metrics.SessionDecodeFailuresTotal.WithLabelValues("login").Inc()
		m.clear()
		return domain.Identity{}, err
	}
	return identity, nil
}

// Logout removes the credential and its expiry marker together.
func (m *Manager) Logout() {
	m.clear()
}

func (m *Manager) clear() {
	m.store.Delete(TokenKey)
	m.store.Delete(ExpiryKey)
}

type tokenCtxKey struct{}

// ContextWithToken stashes the bearer credential for outbound backend
// requests. The backend client reads it back with TokenFromContext.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext returns the credential previously attached to ctx.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
