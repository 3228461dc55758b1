package cache

import (
	"context"
	"testing"
	"time"

	"billing-service/internal/config"
	"billing-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInMemoryCache_SetGetExpire(t *testing.T) {
	c := NewInMemoryCache(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Set(ctx, "gone", []byte("v"), -time.Second))
	_, err = c.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrCacheMiss)

	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryCache_DeleteByPattern(t *testing.T) {
	c := NewInMemoryCache(zap.NewNop())
	ctx := context.Background()
	for _, key := range []string{"statements:a::", "statements:b:2024-01-01:", "invoices:list"} {
		require.NoError(t, c.Set(ctx, key, []byte("x"), time.Minute))
	}

	require.NoError(t, c.DeleteByPattern(ctx, StatementsPattern))

	ok, _ := c.Exists(ctx, "statements:a::")
	assert.False(t, ok)
	ok, _ = c.Exists(ctx, "statements:b:2024-01-01:")
	assert.False(t, ok)
	ok, _ = c.Exists(ctx, "invoices:list")
	assert.True(t, ok)
}

func TestJSONHelpers(t *testing.T) {
	c := NewInMemoryCache(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, c, "buyers:list", []domain.Buyer{{ID: "b-1", Name: "Acme"}}, TTL(60)))

	var buyers []domain.Buyer
	require.NoError(t, GetJSON(ctx, c, "buyers:list", &buyers))
	require.Len(t, buyers, 1)
	assert.Equal(t, "Acme", buyers[0].Name)
}

func TestStatementKey(t *testing.T) {
	start := "2024-04-01"

	assert.Equal(t, "statements:b-1::", StatementKey("b-1", domain.StatementFilter{}))
	assert.Equal(t, "statements:b-1:2024-04-01:", StatementKey("b-1", domain.StatementFilter{StartDate: &start}))
}

func TestInvalidateCollection(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		collection string
		dropped    []string
		kept       []string
	}{
		{"invoices", []string{InvoiceListKey, "statements:b-1::"}, []string{BuyerListKey, ProductListKey}},
		{"buyers", []string{BuyerListKey, "statements:b-1::"}, []string{InvoiceListKey, ProductListKey}},
		{"products", []string{ProductListKey}, []string{InvoiceListKey, BuyerListKey, "statements:b-1::"}},
	}

	for _, tc := range testCases {
		t.Run(tc.collection, func(t *testing.T) {
			c := NewInMemoryCache(zap.NewNop())
			for _, key := range []string{InvoiceListKey, BuyerListKey, ProductListKey, "statements:b-1::"} {
				require.NoError(t, c.Set(ctx, key, []byte("x"), time.Minute))
			}

			InvalidateCollection(ctx, c, tc.collection, zap.NewNop())

			for _, key := range tc.dropped {
				ok, _ := c.Exists(ctx, key)
				assert.False(t, ok, key)
			}
			for _, key := range tc.kept {
				ok, _ := c.Exists(ctx, key)
				assert.True(t, ok, key)
			}
		})
	}
}

func TestNewCache_FallsBackWithoutRedis(t *testing.T) {
	cfg := &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}

	c := NewCache(cfg, zap.NewNop())

	_, ok := c.(*InMemoryCache)
	assert.True(t, ok)
}
