package analytics

// Rating grades a metrics bundle on a 100 point scale, 25 points each for
// profit factor, win rate, Sharpe ratio and recovery factor.
type Rating struct {
	Score           int              `json:"score"`
	MaxScore        int              `json:"max_score"`
	Label           string           `json:"label"`
	ProfitFactor    int              `json:"profit_factor_score"`
	WinRate         int              `json:"win_rate_score"`
	SharpeRatio     int              `json:"sharpe_ratio_score"`
	RecoveryFactor  int              `json:"recovery_factor_score"`
	Recommendations []Recommendation `json:"recommendations"`
}

type Recommendation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	RatingExcellent        = "excellent"
	RatingGood             = "good"
	RatingAverage          = "average"
	RatingNeedsImprovement = "needs_improvement"
)

type band struct {
	min   float64
	score int
}

var (
	profitFactorBands   = []band{{2, 25}, {1.5, 20}, {1.25, 15}, {1, 10}}
	winRateBands        = []band{{60, 25}, {50, 20}, {40, 15}, {30, 10}}
	sharpeBands         = []band{{2, 25}, {1, 20}, {0.5, 15}, {0, 10}}
	recoveryFactorBands = []band{{5, 25}, {3, 20}, {2, 15}, {1, 10}}
)

func scoreRatio(r Ratio, bands []band, floor int) int {
	for _, b := range bands {
		if r.AtLeast(b.min) {
			return b.score
		}
	}
	return floor
}

// Rate scores m and lists what to work on.
func Rate(m *Metrics) Rating {
	r := Rating{
		MaxScore:       100,
		ProfitFactor:   scoreRatio(m.ProfitFactor, profitFactorBands, 0),
		WinRate:        scoreRatio(FiniteRatio(m.WinRate), winRateBands, 5),
		SharpeRatio:    scoreRatio(FiniteRatio(m.SharpeRatio), sharpeBands, 0),
		RecoveryFactor: scoreRatio(m.RecoveryFactor, recoveryFactorBands, 0),
	}
	r.Score = r.ProfitFactor + r.WinRate + r.SharpeRatio + r.RecoveryFactor

	switch {
	case r.Score >= 80:
		r.Label = RatingExcellent
	case r.Score >= 60:
		r.Label = RatingGood
	case r.Score >= 40:
		r.Label = RatingAverage
	default:
		r.Label = RatingNeedsImprovement
	}

	r.Recommendations = recommend(m)
	return r
}

func recommend(m *Metrics) []Recommendation {
	var out []Recommendation
	if !m.ProfitFactor.AtLeast(1.25) {
		out = append(out, Recommendation{"improve_profit_factor", "Cut losses early and let winners run longer."})
	}
	if m.WinRate < 50 {
		out = append(out, Recommendation{"increase_win_rate", "Review entry criteria and market analysis to improve trade selection."})
	}
	if m.SharpeRatio < 1 {
		out = append(out, Recommendation{"enhance_risk_adjusted_returns", "Consider reducing position sizes during volatile periods."})
	}
	if !m.RecoveryFactor.AtLeast(2) {
		out = append(out, Recommendation{"improve_recovery_factor", "Reduce maximum drawdown through tighter risk management."})
	}
	if m.MaxConsecutiveLosses > 5 {
		out = append(out, Recommendation{"manage_losing_streaks", "Reduce position size after consecutive losses."})
	}
	if len(out) == 0 {
		out = append(out, Recommendation{"excellent_performance", "The system shows strong metrics across all categories."})
	}
	return out
}
