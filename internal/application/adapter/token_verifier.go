package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims carries the identity claims extracted from an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// TokenVerifier validates access tokens issued by the external identity
// provider. Only verification lives in this service; issuing does not.
type TokenVerifier interface {
	// VerifyAccessToken checks the token signature and expiry and returns
	// its claims.
	VerifyAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
