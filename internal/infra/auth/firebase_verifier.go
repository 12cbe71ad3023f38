package auth

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
)

const firebaseProvider = "firebase"

// idTokenVerifier is the subset of *auth.Client used to verify ID tokens
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier verifies Firebase Auth ID tokens.
func NewFirebaseVerifier(client idTokenVerifier) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	email, _ := token.Claims["email"].(string)

	return &service.Identity{UserID: token.UID, Email: email, Provider: firebaseProvider}, nil
}
