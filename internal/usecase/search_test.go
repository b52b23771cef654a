//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/usecase"
	usecasemock "curtaincall/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryCache is a ResultCache backed by a map, round-tripping values through
// JSON the same way the redis-backed implementation does.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, out any) bool {
	raw, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = raw
}

func TestSearchPerformances(t *testing.T) {
	ctx := context.Background()

	t.Run("second identical search is served from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		performances := usecasemock.NewMockPerformanceSearchGateway(ctrl)
		accommodations := usecasemock.NewMockAccommodationSearchGateway(ctrl)
		uc := usecase.NewSearchUseCase(performances, accommodations, newMemoryCache())

		rows := []gateway.Performance{{ID: "PF001234", Title: "헤드윅", Genre: "뮤지컬"}}
		performances.EXPECT().Search(ctx, "서울", "뮤지컬", "").Return(rows, nil).Times(1)

		first, err := uc.SearchPerformances(ctx, "서울", "뮤지컬", "")
		require.NoError(t, err)
		assert.Equal(t, rows, first)

		second, err := uc.SearchPerformances(ctx, "서울", "뮤지컬", "")
		require.NoError(t, err)
		assert.Equal(t, rows, second)
	})

	t.Run("different parameters miss the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		performances := usecasemock.NewMockPerformanceSearchGateway(ctrl)
		accommodations := usecasemock.NewMockAccommodationSearchGateway(ctrl)
		uc := usecase.NewSearchUseCase(performances, accommodations, newMemoryCache())

		performances.EXPECT().Search(ctx, "서울", "뮤지컬", "").Return(nil, nil)
		performances.EXPECT().Search(ctx, "부산", "뮤지컬", "").Return(nil, nil)

		_, err := uc.SearchPerformances(ctx, "서울", "뮤지컬", "")
		require.NoError(t, err)
		_, err = uc.SearchPerformances(ctx, "부산", "뮤지컬", "")
		require.NoError(t, err)
	})
}

func TestSearchAccommodations(t *testing.T) {
	ctx := context.Background()

	t.Run("area search results are cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		performances := usecasemock.NewMockPerformanceSearchGateway(ctrl)
		accommodations := usecasemock.NewMockAccommodationSearchGateway(ctrl)
		uc := usecase.NewSearchUseCase(performances, accommodations, newMemoryCache())

		rows := []gateway.Accommodation{{ContentID: "126508", Title: "한옥스테이"}}
		accommodations.EXPECT().AreaSearch(ctx, "37", "", "").Return(rows, nil).Times(1)

		first, err := uc.SearchAccommodations(ctx, "37", "", "")
		require.NoError(t, err)
		assert.Equal(t, rows, first)

		second, err := uc.SearchAccommodations(ctx, "37", "", "")
		require.NoError(t, err)
		assert.Equal(t, rows, second)
	})

	t.Run("keyword search keeps its own keyspace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		performances := usecasemock.NewMockPerformanceSearchGateway(ctrl)
		accommodations := usecasemock.NewMockAccommodationSearchGateway(ctrl)
		uc := usecase.NewSearchUseCase(performances, accommodations, newMemoryCache())

		accommodations.EXPECT().KeywordSearch(ctx, "한옥").Return(nil, nil)

		_, err := uc.SearchAccommodationsByKeyword(ctx, "한옥")
		assert.NoError(t, err)
	})
}
