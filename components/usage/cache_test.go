package usage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartCacheMemoizes(t *testing.T) {
	cache := NewChartCache(time.Minute)

	calls := 0
	render := func() (string, error) {
		calls++
		return "<div>chart</div>", nil
	}

	html, err := cache.GetOrRender("org:bot:daily", render)
	require.NoError(t, err)
	assert.Equal(t, "<div>chart</div>", html)

	_, err = cache.GetOrRender("org:bot:daily", render)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(10 * time.Millisecond)

	calls := 0
	render := func() (string, error) {
		calls++
		return "x", nil
	}

	_, err := cache.GetOrRender("k", render)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = cache.GetOrRender("k", render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestChartCachePropagatesRenderError(t *testing.T) {
	cache := NewChartCache(time.Minute)

	_, err := cache.GetOrRender("k", func() (string, error) {
		return "", errors.New("render failed")
	})
	assert.Error(t, err)

	// Errors are not cached.
	html, err := cache.GetOrRender("k", func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", html)
}

func TestChartCachePrune(t *testing.T) {
	cache := NewChartCache(10 * time.Millisecond)

	_, _ = cache.GetOrRender("a", func() (string, error) { return "1", nil })
	_, _ = cache.GetOrRender("b", func() (string, error) { return "2", nil })
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 2, cache.Prune())
	assert.Equal(t, 0, cache.Prune())
}

func TestChartCacheDisabledWithZeroTTL(t *testing.T) {
	cache := NewChartCache(0)

	calls := 0
	render := func() (string, error) {
		calls++
		return "x", nil
	}
	_, _ = cache.GetOrRender("k", render)
	_, _ = cache.GetOrRender("k", render)
	assert.Equal(t, 2, calls)
}
