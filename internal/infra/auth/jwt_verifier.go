package auth

import (
	"context"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	localProvider = "local"
	tokenType     = "access"
)

// LocalTokens issues and verifies HS256 tokens for development sign-in.
type LocalTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewLocalTokens is the constructor for LocalTokens.
func NewLocalTokens(cfg *config.Config) (*LocalTokens, error) {
	if cfg.Identity == nil || cfg.Identity.LocalSecret == "" {
		return nil, errors.New("identity.localSecret must be provided for the local identity provider")
	}

	return &LocalTokens{
		secret: []byte(cfg.Identity.LocalSecret),
		ttl:    cfg.Identity.LocalTokenTTL,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for userID.
func (s *LocalTokens) IssueToken(userID, email string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user id is required")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":   userID,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
		"type":  tokenType,
		"email": email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.WithStack(err)
	}

	return signed, expiresAt, nil
}

// VerifyToken checks signature, expiry and token type.
func (s *LocalTokens) VerifyToken(_ context.Context, tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != tokenType {
		return nil, domainerrors.ErrInvalidToken.WithDetails("unexpected token type")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("subject missing from token")
	}
	email, _ := claims["email"].(string)

	return &service.Identity{UserID: subject, Email: email, Provider: localProvider}, nil
}
