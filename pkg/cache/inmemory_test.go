package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFromCache(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("answer", 42, time.Minute)

	v, ok := GetFromCache[int](c, "answer")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = GetFromCache[string](c, "answer")
	assert.False(t, ok, "wrong type must miss")

	_, ok = GetFromCache[int](c, "missing")
	assert.False(t, ok)
}

func TestNewCache_Independent(t *testing.T) {
	a := NewCache(time.Minute, time.Minute)
	b := NewCache(time.Minute, time.Minute)

	a.Set("k", "v", time.Minute)
	_, ok := b.Get("k")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("k", "v", 20*time.Millisecond)

	time.Sleep(40 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
