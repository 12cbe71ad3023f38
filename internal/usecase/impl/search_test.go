package impl

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPin(id, shopName, ownerName string, lat, lon float64) entity.Pin {
	pin, _ := entity.NewPin(&entity.Store{
		ID:        id,
		ShopName:  shopName,
		OwnerName: ownerName,
		ShopOpen:  true,
		Position:  &entity.Coordinate{Latitude: lat, Longitude: lon},
	})

	return pin
}

func searchFixture() []entity.Pin {
	return []entity.Pin{
		testPin("s1", "Mart Express", "Ravi", 10.80, 78.60),
		testPin("s2", "Apple Vandi", "Meena", 10.81, 78.61),
		testPin("s3", "Tea Stall", "Martin", 10.82, 78.62),
		testPin("s4", "", "Kumar", 10.83, 78.63),
	}
}

func TestSearchPins_EmptyQuery(t *testing.T) {
	pins := searchFixture()

	for _, query := range []string{"", "   ", "\t"} {
		result := SearchPins(query, pins)
		require.NotNil(t, result)
		assert.Empty(t, result)
	}
}

func TestSearchPins_CaseInsensitive(t *testing.T) {
	result := SearchPins("mArT", searchFixture())

	require.Len(t, result, 2)
	assert.Equal(t, "s1", result[0].ID)
	assert.Equal(t, "s3", result[1].ID, "owner name Martin matches too")
}

func TestSearchPins_OwnerName(t *testing.T) {
	result := SearchPins("kumar", searchFixture())

	require.Len(t, result, 1)
	assert.Equal(t, entity.DefaultPinTitle, result[0].Title)
}

func TestSearchPins_NoMatch(t *testing.T) {
	assert.Empty(t, SearchPins("bakery", searchFixture()))
}

func TestSearchPins_UnicodeLowering(t *testing.T) {
	pins := []entity.Pin{testPin("s1", "ÇAY Evi", "", 1, 1)}

	assert.Len(t, SearchPins("çay", pins), 1)
}

func TestSearchBox_SelectAndClear(t *testing.T) {
	var box SearchBox
	pins := searchFixture()

	box.Type("apple", pins)
	state := box.State()
	require.Len(t, state.Suggestions, 1)
	assert.Nil(t, state.Focus)

	pin, ok := box.Suggestion("s2")
	require.True(t, ok)
	box.Select(pin)

	state = box.State()
	assert.Equal(t, "Apple Vandi", state.Query)
	assert.Empty(t, state.Suggestions)
	require.NotNil(t, state.Focus)
	assert.Equal(t, entity.Coordinate{Latitude: 10.81, Longitude: 78.61}, *state.Focus)

	box.Clear()
	state = box.State()
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Suggestions)
	assert.Nil(t, state.Focus)
}

func TestSearchBox_Refresh(t *testing.T) {
	var box SearchBox
	box.Type("tea", searchFixture())
	require.Len(t, box.State().Suggestions, 1)

	box.Refresh(searchFixture()[:2])
	assert.Empty(t, box.State().Suggestions)
}
