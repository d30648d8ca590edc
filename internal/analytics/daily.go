package analytics

import (
	"sort"
	"time"

	"trading-dashboard/internal/model"
)

// DailyAggregate is the realized result of one calendar day.
type DailyAggregate struct {
	Date   time.Time `json:"date"`
	Profit float64   `json:"profit"`
	Trades int       `json:"trades"`
}

// DailyStats sums exit-deal profit per calendar day. Days without exit deals
// are absent; the result is ordered by date.
func DailyStats(table DealTable) []DailyAggregate {
	return aggregateByDay(table.Exits())
}

func aggregateByDay(exits []model.Deal) []DailyAggregate {
	byDay := make(map[time.Time]*DailyAggregate)
	days := make([]time.Time, 0)

	for _, d := range exits {
		day := startOfDay(d.Time)
		agg, ok := byDay[day]
		if !ok {
			agg = &DailyAggregate{Date: day}
			byDay[day] = agg
			days = append(days, day)
		}
		agg.Profit += d.Profit
		agg.Trades++
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	out := make([]DailyAggregate, 0, len(days))
	for _, day := range days {
		out = append(out, *byDay[day])
	}
	return out
}
