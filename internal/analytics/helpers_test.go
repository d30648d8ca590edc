package analytics

import (
	"time"

	"trading-dashboard/internal/model"
)

var day0 = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

// exitOn builds an exit buy deal on day0+day at 10:00 plus i minutes.
func exitOn(day, i int, profit float64) model.Deal {
	return model.Deal{
		Ticket: uint64(day*1000 + i),
		Symbol: "EURUSD",
		Time:   day0.AddDate(0, 0, day).Add(10*time.Hour + time.Duration(i)*time.Minute),
		Entry:  model.DealEntryOut,
		Side:   model.DealSideBuy,
		Volume: 0.1,
		Profit: profit,
	}
}

func entryOn(day, i int) model.Deal {
	d := exitOn(day, i, 0)
	d.Entry = model.DealEntryIn
	return d
}

func sell(d model.Deal) model.Deal {
	d.Side = model.DealSideSell
	return d
}

// sequential puts one exit deal per day in the given order.
func sequential(profits ...float64) DealTable {
	deals := make([]model.Deal, len(profits))
	for i, p := range profits {
		deals[i] = exitOn(i, 0, p)
	}
	return DealTable{Deals: deals}
}

// sameDay puts all exit deals on one day, a minute apart.
func sameDay(profits ...float64) DealTable {
	deals := make([]model.Deal, len(profits))
	for i, p := range profits {
		deals[i] = exitOn(0, i, p)
	}
	return DealTable{Deals: deals}
}
