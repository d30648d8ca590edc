package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawdown(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []float64
		want       []float64
		max        float64
	}{
		{"empty", []float64{}, []float64{}, 0},
		{"rising", []float64{1, 2, 3}, []float64{0, 0, 0}, 0},
		{"starts negative", []float64{-10, -20, -5}, []float64{0, -10, 0}, 10},
		{"recovers and falls again", []float64{100, 50, 250, -50}, []float64{0, -50, 0, -300}, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Drawdown(tt.cumulative)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.max, MaxDrawdown(got))
		})
	}
}

func TestSummarizeDrawdown(t *testing.T) {
	m := CalculateMetrics(sequential(100, -50, 200, -300))

	tests := []struct {
		name    string
		balance float64
		percent float64
		risk    string
	}{
		{"high", 950, 30, RiskHigh},
		{"moderate", 2950, 10, RiskModerate},
		{"low", 9950, 3, RiskLow},
		{"no initial balance", -50, 0, RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeDrawdown(m, tt.balance)
			assert.Equal(t, tt.balance+50, s.InitialBalance)
			assert.Equal(t, 300.0, s.MaxDrawdown)
			assert.InDelta(t, tt.percent, s.MaxDrawdownPercent, 1e-9)
			assert.Equal(t, tt.risk, s.RiskLevel)
			assert.Equal(t, m.RecoveryFactor, s.RecoveryFactor)
		})
	}
}
