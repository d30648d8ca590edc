package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	from := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	to := time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC)

	w, err := NewWindow(from, to)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2024, 1, 12, 23, 59, 59, 999999000, time.UTC), w.To)
	assert.Equal(t, "2024-01-10..2024-01-12", w.String())
}

func TestNewWindow_SingleDay(t *testing.T) {
	d := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	w, err := NewWindow(d, d)
	require.NoError(t, err)

	assert.True(t, w.Contains(d))
	assert.True(t, w.Contains(d.Add(23*time.Hour+59*time.Minute+59*time.Second)))
	assert.False(t, w.Contains(d.AddDate(0, 0, 1)))
	assert.False(t, w.Contains(d.Add(-time.Nanosecond)))
}

func TestNewWindow_Reversed(t *testing.T) {
	_, err := NewWindow(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, ErrInvalidWindow))
}

func TestLookbackWindow(t *testing.T) {
	today := time.Date(2024, 6, 30, 17, 0, 0, 0, time.UTC)
	w := LookbackWindow(today, 730)

	assert.Equal(t, time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, 30, w.To.Day())
	assert.Equal(t, 23, w.To.Hour())
}
