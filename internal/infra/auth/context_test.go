package auth

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityProvider_Resolution(t *testing.T) {
	provider := NewIdentityProvider()

	t.Run("verified identity wins", func(t *testing.T) {
		ctx := WithCachedUserID(context.Background(), "cached")
		ctx = WithIdentity(ctx, &service.Identity{UserID: "verified"})

		userID, err := provider.CurrentUserID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "verified", userID)
	})

	t.Run("falls back to cached id", func(t *testing.T) {
		ctx := WithCachedUserID(context.Background(), "cached")

		userID, err := provider.CurrentUserID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cached", userID)
	})

	t.Run("no user", func(t *testing.T) {
		_, err := provider.CurrentUserID(context.Background())
		assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
	})

	t.Run("empty identity is no user", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), &service.Identity{})

		_, err := provider.CurrentUserID(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
	})
}
