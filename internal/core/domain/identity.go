package domain

// Identity is the display projection decoded from a bearer credential.
// It exists only while a decodable credential is persisted and is used for
// navigation and route gating only, never for authorization decisions,
// which remain the backend's alone.
type Identity struct {
	Username string
	Role     string
}

// AuthGrant is what the backend returns on a successful login.
type AuthGrant struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}
