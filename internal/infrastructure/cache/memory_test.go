package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value interface{}
		want  interface{}
	}{
		{
			name:  "string",
			key:   "k1",
			value: "value",
			want:  "value",
		},
		{
			name:  "raw records come back as generic JSON",
			key:   "catalog:feed:brazilian",
			value: []domain.RawRecord{{"id": "1", "nome": "Sabonete"}},
			want:  []interface{}{map[string]interface{}{"id": "1", "nome": "Sabonete"}},
		},
		{
			name:  "numbers keep their JSON text",
			key:   "k3",
			value: domain.RawRecord{"id": json.Number("12345678901234567891"), "preco": 10},
			want:  map[string]interface{}{"id": json.Number("12345678901234567891"), "preco": json.Number("10")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, tt.key, tt.value, time.Minute))

			got, err := cache.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", "v", time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	exists, err := cache.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_DeleteAndExists(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	exists, _ := cache.Exists(ctx, "k")
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "k"))
	exists, _ = cache.Exists(ctx, "k")
	assert.False(t, exists)
}

func TestMemoryCache_RemoveExpired(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "old", "v", time.Millisecond))
	require.NoError(t, cache.Set(ctx, "fresh", "v", time.Hour))

	cache.removeExpired(time.Now().Add(time.Second))

	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_SetUnencodable(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close()

	err := cache.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.Error(t, err)
}

func TestMemoryCache_CloseTwice(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}
