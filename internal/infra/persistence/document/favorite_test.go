package document

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteFields_ParseFavorite(t *testing.T) {
	store := &entity.Store{
		ID:         "s1",
		ShopName:   "Apple Vandi",
		OwnerPhone: "+91000",
		Position:   &entity.Coordinate{Latitude: 10.8, Longitude: 78.6},
	}
	fav := entity.NewFavorite("u1", store)

	fields := FavoriteFields(fav)
	assert.NotContains(t, fields, FieldCreatedAt)

	created := time.Now().UTC()
	fields[FieldCreatedAt] = created

	parsed, err := ParseFavorite("fav", fav.ID, fields)
	require.NoError(t, err)

	assert.Equal(t, "u1_s1", parsed.ID)
	assert.Equal(t, "u1", parsed.UserID)
	assert.Equal(t, "s1", parsed.StoreID)
	assert.Equal(t, "Apple Vandi", parsed.StoreName)
	assert.Equal(t, "+91000", parsed.OwnerNumber)
	require.NotNil(t, parsed.Latitude)
	assert.Equal(t, 10.8, *parsed.Latitude)
	require.NotNil(t, parsed.CreatedAt)
	assert.True(t, created.Equal(*parsed.CreatedAt))
}

func TestParseFavorite_Malformed(t *testing.T) {
	_, err := ParseFavorite("fav", "u1_s1", map[string]any{"storeName": 3})
	assert.Error(t, err)
}
