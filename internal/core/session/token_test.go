package session

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autohub/dealer-portal/internal/core/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// segment builds one base64url token segment from raw bytes.
func segment(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func TestDecodeIdentity_WellFormed(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"username": "aigerim", "role": "admin"})

	identity, err := DecodeIdentity(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if identity.Username != "aigerim" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

// The signature is never verified: a token signed with an unknown key still
// decodes. The decoded identity drives display only; the backend is the
// enforcement point for authorization.
func TestDecodeIdentity_IgnoresSignature(t *testing.T) {
	header := segment(`{"alg":"HS256","typ":"JWT"}`)
	payload := segment(`{"username":"intruder","role":"admin"}`)
	token := header + "." + payload + ".bogus-signature"

	identity, err := DecodeIdentity(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if identity.Username != "intruder" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestDecodeIdentity_Malformed(t *testing.T) {
	header := segment(`{"alg":"HS256","typ":"JWT"}`)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "justonestring"},
		{"two segments", header + "." + segment(`{"username":"u","role":"r"}`)},
		{"four segments", header + ".a.b.c"},
		{"payload not base64", header + ".%%not-base64%%.sig"},
		{"payload not json", header + "." + segment("not json at all") + ".sig"},
		{"missing role", signedToken(t, jwt.MapClaims{"username": "u"})},
		{"missing username", signedToken(t, jwt.MapClaims{"role": "r"})},
		{"non-string claims", signedToken(t, jwt.MapClaims{"username": 42, "role": true})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeIdentity(tc.token)
			if err == nil {
				t.Fatalf("expected error for %q", tc.token)
			}
			if !errors.Is(err, domain.ErrMalformedCredential) {
				t.Fatalf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}
