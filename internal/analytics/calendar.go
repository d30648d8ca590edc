package analytics

import "time"

// Calendar lays a month out in Monday-first weeks with per-week totals.
type Calendar struct {
	Year  int            `json:"year"`
	Month time.Month     `json:"month"`
	Weeks []CalendarWeek `json:"weeks"`
}

type CalendarWeek struct {
	Days   [7]CalendarDay `json:"days"`
	Profit float64        `json:"profit"`
	Trades int            `json:"trades"`
}

// CalendarDay is zero-filled for days inside the month without trades.
// Padding days from adjacent months have InMonth false and no totals.
type CalendarDay struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Profit  float64   `json:"profit"`
	Trades  int       `json:"trades"`
}

func MonthCalendar(daily []DailyAggregate, year int, month time.Month) Calendar {
	byDay := make(map[time.Time]DailyAggregate, len(daily))
	for _, row := range daily {
		byDay[startOfDay(row.Date)] = row
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday starts at Sunday
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	cal := Calendar{Year: year, Month: month}
	for cursor.Before(first.AddDate(0, 1, 0)) {
		var week CalendarWeek
		for i := range week.Days {
			day := CalendarDay{Date: cursor, InMonth: cursor.Month() == month}
			if day.InMonth {
				if row, ok := byDay[cursor]; ok {
					day.Profit = row.Profit
					day.Trades = row.Trades
					week.Profit += row.Profit
					week.Trades += row.Trades
				}
			}
			week.Days[i] = day
			cursor = cursor.AddDate(0, 0, 1)
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}
