package analytics

import (
	"math"
	"time"
)

// MonthlyStats is one month's realized result compared with the month before.
type MonthlyStats struct {
	Year             int        `json:"year"`
	Month            time.Month `json:"month"`
	CurrentProfit    float64    `json:"current_profit"`
	PreviousProfit   float64    `json:"previous_profit"`
	PercentageChange float64    `json:"percentage_change"`
	TotalTrades      int        `json:"total_trades"`
}

// CompareMonth totals the daily rows of (year, month) and compares the profit
// with the immediately preceding calendar month.
//
// The change is relative to |previous|. When the previous month is flat the
// change is +100% for any non-zero current month and 0% otherwise.
func CompareMonth(daily []DailyAggregate, year int, month time.Month) MonthlyStats {
	stats := MonthlyStats{Year: year, Month: month}
	if len(daily) == 0 {
		return stats
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	prevYear, prevMonth := prev.Year(), prev.Month()

	for _, row := range daily {
		switch {
		case row.Date.Year() == year && row.Date.Month() == month:
			stats.CurrentProfit += row.Profit
			stats.TotalTrades += row.Trades
		case row.Date.Year() == prevYear && row.Date.Month() == prevMonth:
			stats.PreviousProfit += row.Profit
		}
	}

	stats.PercentageChange = percentageChange(stats.CurrentProfit, stats.PreviousProfit)
	return stats
}

func percentageChange(current, previous float64) float64 {
	switch {
	case previous != 0:
		return (current - previous) / math.Abs(previous) * 100
	case current != 0:
		return 100
	default:
		return 0
	}
}

// MonthProfit is the realized profit of one calendar month.
type MonthProfit struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Profit float64    `json:"profit"`
	Trades int        `json:"trades"`
}

// MonthlySeries groups exit-deal profit by calendar month, oldest first.
// Months without exit deals are absent.
func MonthlySeries(table DealTable) []MonthProfit {
	type key struct {
		year  int
		month time.Month
	}
	byMonth := make(map[key]*MonthProfit)
	keys := make([]key, 0)

	for _, row := range DailyStats(table) {
		k := key{row.Date.Year(), row.Date.Month()}
		mp, ok := byMonth[k]
		if !ok {
			mp = &MonthProfit{Year: k.year, Month: k.month}
			byMonth[k] = mp
			keys = append(keys, k)
		}
		mp.Profit += row.Profit
		mp.Trades += row.Trades
	}

	// daily rows are date ordered, so keys already are too
	out := make([]MonthProfit, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}
