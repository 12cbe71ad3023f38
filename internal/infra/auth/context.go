// Package auth provides concrete implementations for identity-related domain services.
package auth

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type identityKey struct{}

type cachedUserKey struct{}

// WithIdentity attaches a verified identity to the context.
func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the verified identity carried by the context, if any.
func IdentityFrom(ctx context.Context) (*service.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*service.Identity)

	return identity, ok && identity != nil && identity.UserID != ""
}

// WithCachedUserID attaches the user id remembered from an earlier sign-in.
// It is consulted only when no verified identity is present.
//
// Only trusted in-process callers set it: tests and local tooling that act as
// a known user. The HTTP and websocket paths never do, since any id a client
// sends about itself is unverified; there the verified token is the only source.
func WithCachedUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, cachedUserKey{}, userID)
}

func cachedUserID(ctx context.Context) string {
	userID, _ := ctx.Value(cachedUserKey{}).(string)

	return userID
}

type contextIdentity struct{}

// NewIdentityProvider resolves the current user from the context: the verified
// identity first, then the cached user id.
func NewIdentityProvider() service.IdentityProvider {
	return contextIdentity{}
}

func (contextIdentity) CurrentUserID(ctx context.Context) (string, error) {
	if identity, ok := IdentityFrom(ctx); ok {
		return identity.UserID, nil
	}
	if userID := cachedUserID(ctx); userID != "" {
		return userID, nil
	}

	return "", domainerrors.ErrSignInRequired
}
