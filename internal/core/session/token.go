package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autohub/dealer-portal/internal/core/domain"
)

// DecodeIdentity extracts the display identity from a bearer token without
// verifying its signature. The token is treated as untrusted input: the
// decoded identity drives navigation and route gating only, and the backend
// re-validates the token on every request it receives.
//
// Any structural defect (wrong segment count, invalid base64, invalid
// JSON, missing username/role claims) yields domain.ErrMalformedCredential.
func DecodeIdentity(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrMalformedCredential, err)
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing identity claims", domain.ErrMalformedCredential)
	}

	return domain.Identity{Username: username, Role: role}, nil
}
