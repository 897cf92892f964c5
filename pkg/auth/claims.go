package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenPayload captures the data available when minting a session token.
type SessionTokenPayload struct {
	UserID uuid.UUID
	// JTI keys the server-side session record; generated when empty.
	JTI string
}

// SessionTokenClaims represents the typed JWT carried in the session cookie.
type SessionTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
