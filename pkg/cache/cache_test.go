package cache_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/pkg/cache"
)

func setupCache(t *testing.T, ttl time.Duration) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewClient(cache.Config{URL: "redis://" + mr.Addr(), TTL: ttl})
	if err != nil {
		t.Fatalf("failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Headphone",
			Description: "over-ear",
			CategoryID:  1,
			Sizes: []models.ProductSize{
				{SizeID: 2, SizeName: "Black", Price: 59.99, Stock: 10},
			},
		},
	}
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	client, _ := setupCache(t, 0)

	products := sampleProducts()
	assert.NoError(t, client.PutSearch("headphone", products))

	got, found, err := client.GetSearch("headphone")
	assert.NoError(t, err)
	assert.True(t, found)
	// The cached copy must round-trip exactly, resolved size names included.
	assert.Equal(t, products, got)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	client, _ := setupCache(t, 0)

	got, found, err := client.GetSearch("nothing-cached")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCache_EmptyResultIsCacheable(t *testing.T) {
	client, _ := setupCache(t, 0)

	assert.NoError(t, client.PutSearch("no-matches", []models.Product{}))

	got, found, err := client.GetSearch("no-matches")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCache_EntriesExpire(t *testing.T) {
	client, mr := setupCache(t, cache.DefaultTTL)

	assert.NoError(t, client.PutSearch("headphone", sampleProducts()))

	mr.FastForward(cache.DefaultTTL - time.Second)
	_, found, err := client.GetSearch("headphone")
	assert.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Second)
	_, found, err = client.GetSearch("headphone")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCache_InvalidateClearsWholeNamespace(t *testing.T) {
	client, mr := setupCache(t, 0)

	assert.NoError(t, client.PutSearch("headphone", sampleProducts()))
	assert.NoError(t, client.PutSearch("monitor", []models.Product{}))
	// A key outside the search namespace must survive invalidation.
	mr.Set("session:abc", "keep-me")

	assert.NoError(t, client.InvalidateSearch())

	_, found, err := client.GetSearch("headphone")
	assert.NoError(t, err)
	assert.False(t, found)
	_, found, err = client.GetSearch("monitor")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.True(t, mr.Exists("session:abc"))
}

func TestCache_InvalidateEmptyNamespace(t *testing.T) {
	client, _ := setupCache(t, 0)
	assert.NoError(t, client.InvalidateSearch())
}

func TestCache_RejectsBadURL(t *testing.T) {
	_, err := cache.NewClient(cache.Config{URL: "not-a-url"})
	assert.Error(t, err)
}
