package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	defer c.Close()

	etag := c.Set("ceremony:96", []byte(`{"a":1}`), time.Minute)
	data, got, ok := c.Get("ceremony:96")
	assert.True(t, ok)
	assert.Equal(t, etag, got)
	assert.JSONEq(t, `{"a":1}`, string(data))

	_, _, ok = c.Get("ceremony:95")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New(true)
	defer c.Close()

	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)

	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestDisabled(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.Equal(t, ComputeETag([]byte("v")), etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(`W/"0000", `+etag, etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"0000"`, etag))
}
