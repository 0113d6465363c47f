package session

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
)

type mapStore map[string]string

func (m mapStore) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapStore) Set(name, value string) { m[name] = value }
func (m mapStore) Delete(name string)     { delete(m, name) }

func newTestManager(store Store) *Manager {
	return NewManager(store, zerolog.Nop())
}

func TestManager_LoginPersistsAndDecodes(t *testing.T) {
	store := mapStore{}
	mgr := newTestManager(store)
	token := signedToken(t, jwt.MapClaims{"username": "operator", "role": "user"})

	identity, err := mgr.Login(token, "2026-09-01T00:00:00Z")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Username != "operator" || identity.Role != "user" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if store[TokenKey] != token {
		t.Fatalf("token not persisted")
	}
	if store[ExpiryKey] != "2026-09-01T00:00:00Z" {
		t.Fatalf("expiry not persisted")
	}
	if !mgr.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
}

// An undecodable freshly issued credential is purged immediately. Leaving
// it persisted with no identity attached would strand the session in a
// half-state nothing can recover except a later failed request.
func TestManager_LoginPurgesUndecodableCredential(t *testing.T) {
	store := mapStore{}
	mgr := newTestManager(store)

	_, err := mgr.Login("garbage-token", "2026-09-01T00:00:00Z")
	if err == nil {
		t.Fatalf("expected login error")
	}
	if !errors.Is(err, domain.ErrMalformedCredential) {
		t.Fatalf("expected ErrMalformedCredential, got %v", err)
	}
	if _, ok := store[TokenKey]; ok {
		t.Fatalf("token should have been purged")
	}
	if _, ok := store[ExpiryKey]; ok {
		t.Fatalf("expiry should have been purged")
	}
	if mgr.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after failed login")
	}
}

func TestManager_CurrentDerivesFromStoredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"username": "aigerim", "role": "admin"})
	mgr := newTestManager(mapStore{TokenKey: token})

	identity, ok := mgr.Current()
	if !ok {
		t.Fatalf("expected identity")
	}
	if identity.Username != "aigerim" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

// Corrupt persisted state self-heals: the credential is removed the moment
// it fails to decode, and the session resolves to unauthenticated.
func TestManager_CurrentSelfHealsCorruptState(t *testing.T) {
	store := mapStore{TokenKey: "corrupted", ExpiryKey: "whenever"}
	mgr := newTestManager(store)

	if _, ok := mgr.Current(); ok {
		t.Fatalf("expected no identity from corrupt token")
	}
	if _, ok := store[TokenKey]; ok {
		t.Fatalf("corrupt token should have been removed")
	}
	if _, ok := store[ExpiryKey]; ok {
		t.Fatalf("expiry marker should have been removed")
	}
}

func TestManager_EmptyStoreIsUnauthenticated(t *testing.T) {
	mgr := newTestManager(mapStore{})

	if _, ok := mgr.Current(); ok {
		t.Fatalf("expected no identity")
	}
	if mgr.IsAuthenticated() {
		t.Fatalf("expected unauthenticated")
	}
	if _, ok := mgr.Token(); ok {
		t.Fatalf("expected no token")
	}
}

func TestManager_LogoutClearsBothKeys(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"username": "operator", "role": "user"})
	store := mapStore{TokenKey: token, ExpiryKey: "2026-09-01T00:00:00Z"}
	mgr := newTestManager(store)

	mgr.Logout()

	if len(store) != 0 {
		t.Fatalf("expected empty store after logout, got %v", store)
	}
	if mgr.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout")
	}
}

func TestTokenContextRoundTrip(t *testing.T) {
	ctx := ContextWithToken(context.Background(), "bearer-value")

	token, ok := TokenFromContext(ctx)
	if !ok || token != "bearer-value" {
		t.Fatalf("unexpected token: %q %v", token, ok)
	}

	if _, ok := TokenFromContext(context.Background()); ok {
		t.Fatalf("expected no token in fresh context")
	}
}
