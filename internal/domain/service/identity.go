package service

import (
	"context"
	"time"
)

// Identity is the authenticated principal behind a request.
type Identity struct {
	UserID   string
	Email    string
	Provider string
}

// IdentityProvider exposes the signed-in user for the current context.
type IdentityProvider interface {
	// CurrentUserID returns the signed-in user id or domain errors.ErrSignInRequired.
	CurrentUserID(ctx context.Context) (string, error)
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	// VerifyToken returns the identity behind a token or domain errors.ErrInvalidToken.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// TokenIssuer mints tokens for development and test sign-in.
type TokenIssuer interface {
	IssueToken(userID, email string) (token string, expiresAt time.Time, err error)
}
