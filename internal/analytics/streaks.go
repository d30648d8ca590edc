package analytics

// Streaks holds the lengths of every completed run of winning and losing
// trades, in order.
type Streaks struct {
	Wins   []int `json:"wins"`
	Losses []int `json:"losses"`
}

// ConsecutiveStreaks scans profits in order. A zero profit neither extends
// nor breaks a run; it is skipped.
func ConsecutiveStreaks(profits []float64) Streaks {
	var s Streaks
	var wins, losses int

	for _, p := range profits {
		switch {
		case p > 0:
			wins++
			if losses > 0 {
				s.Losses = append(s.Losses, losses)
				losses = 0
			}
		case p < 0:
			losses++
			if wins > 0 {
				s.Wins = append(s.Wins, wins)
				wins = 0
			}
		}
	}

	if wins > 0 {
		s.Wins = append(s.Wins, wins)
	}
	if losses > 0 {
		s.Losses = append(s.Losses, losses)
	}
	return s
}

func (s Streaks) MaxWins() int {
	return maxInt(s.Wins)
}

func (s Streaks) MaxLosses() int {
	return maxInt(s.Losses)
}

func (s Streaks) AvgWins() float64 {
	if len(s.Wins) == 0 {
		return 0
	}
	var total int
	for _, w := range s.Wins {
		total += w
	}
	return float64(total) / float64(len(s.Wins))
}

func maxInt(values []int) int {
	var out int
	for _, v := range values {
		if v > out {
			out = v
		}
	}
	return out
}

// Losing-streak risk bands.
const (
	StreakRiskControlled = "controlled"
	StreakRiskModerate   = "moderate"
	StreakRiskHigh       = "high"
)

// LossStreakRisk classifies the longest losing run.
func LossStreakRisk(maxLosses int) string {
	switch {
	case maxLosses <= 3:
		return StreakRiskControlled
	case maxLosses <= 6:
		return StreakRiskModerate
	default:
		return StreakRiskHigh
	}
}
