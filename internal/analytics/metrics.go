package analytics

import (
	"math"

	"trading-dashboard/internal/model"
)

// Metrics is the performance bundle of a deal table. Losses are reported
// with their sign: AvgLoss and LargestLoss are <= 0.
type Metrics struct {
	TotalTrades          int       `json:"total_trades"`
	WinningTradesCount   int       `json:"winning_trades_count"`
	LosingTradesCount    int       `json:"losing_trades_count"`
	GrossProfit          float64   `json:"gross_profit"`
	GrossLoss            float64   `json:"gross_loss"`
	NetProfit            float64   `json:"net_profit"`
	ProfitFactor         Ratio     `json:"profit_factor"`
	ExpectedPayoff       float64   `json:"expected_payoff"`
	WinRate              float64   `json:"win_rate"`
	AvgWin               float64   `json:"avg_win"`
	AvgLoss              float64   `json:"avg_loss"`
	LargestWin           float64   `json:"largest_win"`
	LargestLoss          float64   `json:"largest_loss"`
	MaxDrawdown          float64   `json:"max_drawdown"`
	RecoveryFactor       Ratio     `json:"recovery_factor"`
	SharpeRatio          float64   `json:"sharpe_ratio"`
	MaxConsecutiveWins   int       `json:"max_consecutive_wins"`
	MaxConsecutiveLosses int       `json:"max_consecutive_losses"`
	AvgConsecutiveWins   float64   `json:"avg_consecutive_wins"`
	ShortTradesTotal     int       `json:"short_trades_total"`
	ShortWinRate         float64   `json:"short_win_rate"`
	CumulativeProfit     []float64 `json:"cumulative_profit"`
	Drawdown             []float64 `json:"drawdown"`
}

// CalculateMetrics derives the metrics bundle from the exit deals of table.
// It returns nil when the table holds no exit deals.
func CalculateMetrics(table DealTable) *Metrics {
	exits := table.Exits()
	if len(exits) == 0 {
		return nil
	}
	sortByTime(exits)

	m := &Metrics{TotalTrades: len(exits)}

	profits := make([]float64, len(exits))
	var winSum, lossSum float64
	var shortTotal, shortWins int

	for i, d := range exits {
		profits[i] = d.Profit

		switch {
		case d.Profit > 0:
			m.WinningTradesCount++
			winSum += d.Profit
			if d.Profit > m.LargestWin {
				m.LargestWin = d.Profit
			}
		case d.Profit < 0:
			m.LosingTradesCount++
			lossSum += d.Profit
			if d.Profit < m.LargestLoss {
				m.LargestLoss = d.Profit
			}
		}

		if d.Side == model.DealSideSell {
			shortTotal++
			if d.Profit > 0 {
				shortWins++
			}
		}
	}

	m.GrossProfit = winSum
	m.GrossLoss = math.Abs(lossSum)
	m.NetProfit = m.GrossProfit - m.GrossLoss
	m.ProfitFactor = sentinelRatio(m.GrossProfit, m.GrossLoss)
	m.ExpectedPayoff = m.NetProfit / float64(m.TotalTrades)
	m.WinRate = percentOf(m.WinningTradesCount, m.TotalTrades)

	if m.WinningTradesCount > 0 {
		m.AvgWin = winSum / float64(m.WinningTradesCount)
	}
	if m.LosingTradesCount > 0 {
		m.AvgLoss = lossSum / float64(m.LosingTradesCount)
	}

	m.CumulativeProfit = cumulativeSum(profits)
	m.Drawdown = Drawdown(m.CumulativeProfit)
	m.MaxDrawdown = MaxDrawdown(m.Drawdown)
	m.RecoveryFactor = sentinelRatio(m.NetProfit, m.MaxDrawdown)

	m.SharpeRatio = DailySharpe(aggregateByDay(exits))

	streaks := ConsecutiveStreaks(profits)
	m.MaxConsecutiveWins = streaks.MaxWins()
	m.MaxConsecutiveLosses = streaks.MaxLosses()
	m.AvgConsecutiveWins = streaks.AvgWins()

	m.ShortTradesTotal = shortTotal
	m.ShortWinRate = percentOf(shortWins, shortTotal)

	return m
}

// WinLossRatio is |AvgWin / AvgLoss|, infinite when there is no average loss.
func (m *Metrics) WinLossRatio() Ratio {
	if m.AvgLoss == 0 {
		return InfiniteRatio()
	}
	return FiniteRatio(math.Abs(m.AvgWin / m.AvgLoss))
}

// LossRate is the share of trades that were not winners, in percent.
func (m *Metrics) LossRate() float64 {
	return 100 - m.WinRate
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
