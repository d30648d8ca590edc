package analytics

import "math"

// cumulativeSum returns the running total of profits.
func cumulativeSum(profits []float64) []float64 {
	out := make([]float64, len(profits))
	var total float64
	for i, p := range profits {
		total += p
		out[i] = total
	}
	return out
}

// Drawdown returns, for each point of a cumulative profit curve, the distance
// below the highest value seen so far. Every value is <= 0.
func Drawdown(cumulative []float64) []float64 {
	out := make([]float64, len(cumulative))
	var runningMax float64
	for i, c := range cumulative {
		if i == 0 || c > runningMax {
			runningMax = c
		}
		out[i] = c - runningMax
	}
	return out
}

// MaxDrawdown is the magnitude of the deepest drawdown, 0 for an empty or
// never-declining curve.
func MaxDrawdown(drawdown []float64) float64 {
	var deepest float64
	for _, d := range drawdown {
		if d < deepest {
			deepest = d
		}
	}
	return math.Abs(deepest)
}

// Drawdown risk bands, by max drawdown as a percentage of initial balance.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// DrawdownSummary relates the window's max drawdown to the account balance.
//
// InitialBalance is approximated as current balance minus the window's net
// profit, which is exact only when no deposits or withdrawals happened inside
// the window.
type DrawdownSummary struct {
	InitialBalance     float64   `json:"initial_balance"`
	AbsoluteDrawdown   float64   `json:"absolute_drawdown"`
	MaxDrawdown        float64   `json:"max_drawdown"`
	MaxDrawdownPercent float64   `json:"max_drawdown_percent"`
	RiskLevel          string    `json:"risk_level"`
	RecoveryFactor     Ratio     `json:"recovery_factor"`
	Series             []float64 `json:"series"`
}

func SummarizeDrawdown(m *Metrics, balance float64) DrawdownSummary {
	initial := balance - m.NetProfit
	summary := DrawdownSummary{
		InitialBalance:   initial,
		AbsoluteDrawdown: m.MaxDrawdown,
		MaxDrawdown:      m.MaxDrawdown,
		RecoveryFactor:   m.RecoveryFactor,
		Series:           m.Drawdown,
	}
	if initial > 0 {
		summary.MaxDrawdownPercent = m.MaxDrawdown / initial * 100
	}

	switch {
	case summary.MaxDrawdownPercent < 5:
		summary.RiskLevel = RiskLow
	case summary.MaxDrawdownPercent < 15:
		summary.RiskLevel = RiskModerate
	default:
		summary.RiskLevel = RiskHigh
	}
	return summary
}
