package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func putStore(db *memory.DB, id string, fields map[string]any) {
	doc := map[string]any{"UID": "owner-" + id}
	for k, v := range fields {
		doc[k] = v
	}
	db.Put("store", id, doc)
}

func startMemoryFeed(t *testing.T, db *memory.DB) usecase.StoreFeed {
	t.Helper()
	feed := NewStoreFeed(memory.NewStoreRepository(db, "store"), newDiscardLogger())
	require.NoError(t, feed.Start(context.Background()))
	t.Cleanup(feed.Close)

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)

	return feed
}

func pinIDs(pins []entity.Pin) []string {
	ids := make([]string, 0, len(pins))
	for _, pin := range pins {
		ids = append(ids, pin.ID)
	}

	return ids
}

func TestStoreFeed_ExcludesStoresWithoutCoordinates(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "ok", map[string]any{"shopName": "Mart Express", "shopstatus": true, "latitude": 10.8, "longitude": 78.6})
	putStore(db, "missing", map[string]any{"shopName": "No Position", "shopstatus": true})
	putStore(db, "text", map[string]any{"shopName": "Text Position", "shopstatus": true, "latitude": "10.8", "longitude": "78.6"})

	feed := startMemoryFeed(t, db)

	assert.Equal(t, []string{"ok"}, pinIDs(feed.State().Pins))
}

func TestStoreFeed_ExcludesClosedStores(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "open", map[string]any{"shopName": "Open", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	putStore(db, "closed", map[string]any{"shopName": "Closed", "shopstatus": false, "latitude": 1.0, "longitude": 2.0})

	feed := startMemoryFeed(t, db)

	assert.Equal(t, []string{"open"}, pinIDs(feed.State().Pins))
	_, ok := feed.Store("closed")
	assert.False(t, ok)
}

func TestStoreFeed_SearchCurrentPins(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "mart", map[string]any{"shopName": "Mart Express", "ownerName": "Ravi", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	putStore(db, "tea", map[string]any{"shopName": "Tea Stall", "ownerName": "Mala", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	putStore(db, "shut", map[string]any{"shopName": "Mart Closed", "shopstatus": false, "latitude": 1.0, "longitude": 2.0})

	feed := startMemoryFeed(t, db)

	assert.Equal(t, []string{"mart"}, pinIDs(feed.Search("mart")))
	assert.Equal(t, []string{"tea"}, pinIDs(feed.Search("MALA")))
	assert.Empty(t, feed.Search(""))
}

func TestStoreFeed_LiveUpdatesRebuildPins(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "a", map[string]any{"shopName": "A", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	feed := startMemoryFeed(t, db)

	var notified atomic.Int32
	cancel := feed.Subscribe(func(usecase.FeedState) { notified.Add(1) })
	defer cancel()

	putStore(db, "b", map[string]any{"shopName": "B", "shopstatus": true, "latitude": 3.0, "longitude": 4.0})
	require.Eventually(t, func() bool { return len(feed.State().Pins) == 2 }, waitFor, tick)

	db.Put("store", "a", map[string]any{"shopName": "A", "shopstatus": false, "latitude": 1.0, "longitude": 2.0})
	require.Eventually(t, func() bool {
		ids := pinIDs(feed.State().Pins)
		return len(ids) == 1 && ids[0] == "b"
	}, waitFor, tick)

	assert.GreaterOrEqual(t, notified.Load(), int32(2))
	store, ok := feed.Store("b")
	require.True(t, ok)
	assert.Equal(t, "B", store.ShopName)
}

func TestStoreFeed_NoUpdatesAfterClose(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "a", map[string]any{"shopName": "A", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	feed := startMemoryFeed(t, db)

	var notified atomic.Int32
	feed.Subscribe(func(usecase.FeedState) { notified.Add(1) })

	feed.Close()
	version := feed.State().Version

	putStore(db, "b", map[string]any{"shopName": "B", "shopstatus": true, "latitude": 3.0, "longitude": 4.0})
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"a"}, pinIDs(feed.State().Pins))
	assert.Equal(t, version, feed.State().Version)
	assert.Zero(t, notified.Load())
}

func TestStoreFeed_CloseIsIdempotent(t *testing.T) {
	feed := NewStoreFeed(memory.NewStoreRepository(memory.NewDB(), "store"), newDiscardLogger())

	feed.Close()
	feed.Close()
	require.NoError(t, feed.Start(context.Background()))

	assert.True(t, feed.State().Loading, "a closed feed never starts")
}

func TestStoreFeed_SubscriptionErrorFallsBackOnce(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	stream := mockRepo.NewMockStoreStream(t)

	storeRepo.EXPECT().WatchOpenStores(mock.Anything).Return(stream, nil).Once()
	stream.EXPECT().Next(mock.Anything).Return(nil, errors.New("permission denied")).Once()
	stream.EXPECT().Stop().Return().Once()
	storeRepo.EXPECT().FindOpenStores(mock.Anything).Return(&repository.StoreSnapshot{
		Stores: []*entity.Store{
			{ID: "s1", ShopName: "Fallback", ShopOpen: true, Position: &entity.Coordinate{Latitude: 1, Longitude: 2}},
		},
	}, nil).Once()

	feed := NewStoreFeed(storeRepo, newDiscardLogger())
	require.NoError(t, feed.Start(context.Background()))
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)
	state := feed.State()
	assert.Equal(t, []string{"s1"}, pinIDs(state.Pins))
	assert.Contains(t, state.Err, "permission denied")
}

func TestStoreFeed_FallbackFailureKeepsLastPins(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	stream := mockRepo.NewMockStoreStream(t)

	storeRepo.EXPECT().WatchOpenStores(mock.Anything).Return(stream, nil).Once()
	stream.EXPECT().Next(mock.Anything).Return(&repository.StoreSnapshot{
		Stores: []*entity.Store{
			{ID: "s1", ShopName: "Live", ShopOpen: true, Position: &entity.Coordinate{Latitude: 1, Longitude: 2}},
		},
	}, nil).Once()
	stream.EXPECT().Next(mock.Anything).Return(nil, errors.New("unavailable")).Once()
	stream.EXPECT().Stop().Return().Once()
	storeRepo.EXPECT().FindOpenStores(mock.Anything).Return(nil, errors.New("still unavailable")).Once()

	feed := NewStoreFeed(storeRepo, newDiscardLogger())
	require.NoError(t, feed.Start(context.Background()))
	defer feed.Close()

	require.Eventually(t, func() bool { return feed.State().Err != "" }, waitFor, tick)
	state := feed.State()
	assert.False(t, state.Loading)
	assert.Equal(t, []string{"s1"}, pinIDs(state.Pins))
}

func TestStoreFeed_WatchFailureFallsBack(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)

	storeRepo.EXPECT().WatchOpenStores(mock.Anything).Return(nil, errors.New("no listener")).Once()
	storeRepo.EXPECT().FindOpenStores(mock.Anything).Return(&repository.StoreSnapshot{}, nil).Once()

	feed := NewStoreFeed(storeRepo, newDiscardLogger())
	require.NoError(t, feed.Start(context.Background()))
	defer feed.Close()

	require.Eventually(t, func() bool { return !feed.State().Loading }, waitFor, tick)
	assert.Empty(t, feed.State().Pins)
	assert.NotEmpty(t, feed.State().Err)
}

func TestStoreFeed_MalformedDocumentsAreSkipped(t *testing.T) {
	db := memory.NewDB()
	putStore(db, "good", map[string]any{"shopName": "Good", "shopstatus": true, "latitude": 1.0, "longitude": 2.0})
	putStore(db, "bad", map[string]any{"shopName": 12, "shopstatus": true, "latitude": 1.0, "longitude": 2.0})

	feed := startMemoryFeed(t, db)

	assert.Equal(t, []string{"good"}, pinIDs(feed.State().Pins))
	assert.Empty(t, feed.State().Err)
}
