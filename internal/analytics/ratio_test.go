package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		want     Ratio
	}{
		{"regular", 300, 150, FiniteRatio(2)},
		{"negative numerator", -50, 300, FiniteRatio(-50.0 / 300.0)},
		{"zero denominator positive numerator", 10, 0, InfiniteRatio()},
		{"zero denominator zero numerator", 0, 0, FiniteRatio(0)},
		{"zero denominator negative numerator", -10, 0, FiniteRatio(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentinelRatio(tt.num, tt.den))
		})
	}
}

func TestRatio(t *testing.T) {
	inf := InfiniteRatio()
	assert.True(t, inf.AtLeast(1e9))
	assert.True(t, math.IsInf(inf.Float64(), 1))
	assert.Equal(t, "∞", inf.String())

	r := FiniteRatio(1.256)
	assert.True(t, r.AtLeast(1.25))
	assert.False(t, r.AtLeast(1.5))
	assert.Equal(t, "1.26", r.String())
}
