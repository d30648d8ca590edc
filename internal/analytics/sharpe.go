package analytics

import "math"

// TradingDaysPerYear annualizes the daily Sharpe ratio.
const TradingDaysPerYear = 252

// DailySharpe is the annualized ratio of mean daily profit to its sample
// standard deviation. Fewer than two trading days, or no variation, gives 0.
func DailySharpe(daily []DailyAggregate) float64 {
	n := len(daily)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, d := range daily {
		sum += d.Profit
	}
	mean := sum / float64(n)

	var sq float64
	for _, d := range daily {
		diff := d.Profit - mean
		sq += diff * diff
	}
	std := math.Sqrt(sq / float64(n-1))
	if std == 0 {
		return 0
	}

	return mean / std * math.Sqrt(TradingDaysPerYear)
}
