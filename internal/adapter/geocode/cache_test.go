package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	result domain.GeocodingResult
	err    error
	calls  int
}

func (c *countingGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (domain.GeocodingResult, error) {
	c.calls++
	return c.result, c.err
}

func TestCachedGeocoder_CachesResults(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{
		FormattedAddress: "Busan, South Korea",
		PlaceName:        "Busan",
	}}
	cached := NewCachedGeocoder(inner, 10, testMetrics())

	ctx := context.Background()
	first, err := cached.ReverseGeocode(ctx, 35.1796, 129.0756)
	require.NoError(t, err)
	second, err := cached.ReverseGeocode(ctx, 35.1796, 129.0756)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second lookup must come from cache")
}

func TestCachedGeocoder_DistinctCoordinatesMiss(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{FormattedAddress: "x"}}
	cached := NewCachedGeocoder(inner, 10, testMetrics())

	ctx := context.Background()
	_, err := cached.ReverseGeocode(ctx, 35.0, 129.0)
	require.NoError(t, err)
	_, err = cached.ReverseGeocode(ctx, 36.0, 129.0)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedGeocoder_DoesNotCacheEmptyResults(t *testing.T) {
	inner := &countingGeocoder{}
	cached := NewCachedGeocoder(inner, 10, testMetrics())

	ctx := context.Background()
	for range 3 {
		_, err := cached.ReverseGeocode(ctx, 35.0, 129.0)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, inner.calls, "empty results must be retried")
}

func TestCachedGeocoder_DoesNotCacheErrors(t *testing.T) {
	inner := &countingGeocoder{err: errors.New("boom")}
	cached := NewCachedGeocoder(inner, 10, testMetrics())

	ctx := context.Background()
	for range 2 {
		_, err := cached.ReverseGeocode(ctx, 35.0, 129.0)
		require.Error(t, err)
	}

	assert.Equal(t, 2, inner.calls)
}

func TestCachedGeocoder_EvictsLeastRecentlyUsed(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{FormattedAddress: "x"}}
	cached := NewCachedGeocoder(inner, 2, testMetrics())

	ctx := context.Background()
	_, _ = cached.ReverseGeocode(ctx, 1, 1) // a
	_, _ = cached.ReverseGeocode(ctx, 2, 2) // b
	_, _ = cached.ReverseGeocode(ctx, 1, 1) // a hit, b now LRU
	_, _ = cached.ReverseGeocode(ctx, 3, 3) // c, evicts b
	require.Equal(t, 3, inner.calls)

	_, _ = cached.ReverseGeocode(ctx, 1, 1) // still cached
	assert.Equal(t, 3, inner.calls)

	_, _ = cached.ReverseGeocode(ctx, 2, 2) // evicted, refetches
	assert.Equal(t, 4, inner.calls)
}
