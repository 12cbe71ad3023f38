package auth

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	fbinfra "storefront/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the token verifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Apps   *fbinfra.Apps
	Logger *slog.Logger
}

// NewTokenVerifier selects the verifier configured in identity.provider.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	switch params.Config.Identity.Provider {
	case constants.IdentityProviderFirebase:
		client, err := params.Apps.Auth(params.Ctx)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase Auth token verifier")

		return NewFirebaseVerifier(client), nil

	case constants.IdentityProviderLocal:
		tokens, err := NewLocalTokens(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Warn("Using local token verifier, do not use in production")

		return tokens, nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", params.Config.Identity.Provider)
	}
}

// NewTokenIssuer provides an issuer only for the local provider.
func NewTokenIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.Identity.Provider != constants.IdentityProviderLocal {
		return nil, nil
	}

	return NewLocalTokens(cfg)
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTokenVerifier,
		NewTokenIssuer,
		NewIdentityProvider,
	),
)
