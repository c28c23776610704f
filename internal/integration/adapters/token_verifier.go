package adapters

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

type jwtTokenVerifier struct {
	secret []byte
	issuer string
}

// NewJWTTokenVerifier creates a verifier for tokens signed by the external
// identity provider with a shared HMAC secret. When issuer is non-empty the
// iss claim must match it.
func NewJWTTokenVerifier(secret string, issuer string) adapter.TokenVerifier {
	return &jwtTokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type accessTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (v *jwtTokenVerifier) VerifyAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims := &accessTokenClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token subject: %w", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
