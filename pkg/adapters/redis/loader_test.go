package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ic1618/chat-bot/pkg/adapters/redis"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []map[string]any{
	{
		"stockExchange": "NYSE",
		"topStocks": []any{
			map[string]any{"stockName": "AAPL", "price": 150.0},
		},
	},
}

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Loader) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, redis.NewFromClient(client, opts...)
}

func TestRedisLoader_Contract(t *testing.T) {
	_, loader := setup(t)
	require.NoError(t, loader.Publish(context.Background(), catalog))

	ports.RunCatalogLoaderContract(t, loader, catalog)
}

func TestRedisLoader_MissingKey(t *testing.T) {
	_, loader := setup(t)

	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestRedisLoader_CustomKey(t *testing.T) {
	mr, loader := setup(t, redis.WithKey("custom:stocks"))
	require.NoError(t, mr.Set("custom:stocks", `[{"stockExchange":"LSE","topStocks":[]}]`))

	records, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LSE", records[0]["stockExchange"])
	assert.Equal(t, "custom:stocks", loader.Key())
}

func TestRedisLoader_MalformedDocument(t *testing.T) {
	mr, loader := setup(t)
	require.NoError(t, mr.Set(redis.DefaultKey, "not json"))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestRedisLoader_PublishTTL(t *testing.T) {
	mr, loader := setup(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, loader.Publish(ctx, catalog))
	assert.True(t, mr.Exists(redis.DefaultKey))

	mr.FastForward(2 * time.Second)

	_, err := loader.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}
