package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthCalendar(t *testing.T) {
	daily := []DailyAggregate{
		dailyRow(2024, time.February, 29, 500, 5),
		dailyRow(2024, time.March, 1, 10, 1),
		dailyRow(2024, time.March, 4, -20, 2),
		dailyRow(2024, time.March, 6, 30, 1),
		dailyRow(2024, time.March, 31, 7, 1),
	}

	cal := MonthCalendar(daily, 2024, time.March)
	require.Len(t, cal.Weeks, 5)

	first := cal.Weeks[0]
	assert.Equal(t, time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), first.Days[0].Date)
	assert.False(t, first.Days[3].InMonth)
	assert.Equal(t, 0.0, first.Days[3].Profit, "padding days carry no totals")
	assert.True(t, first.Days[4].InMonth)
	assert.Equal(t, 10.0, first.Profit)
	assert.Equal(t, 1, first.Trades)

	second := cal.Weeks[1]
	assert.Equal(t, time.Monday, second.Days[0].Date.Weekday())
	assert.Equal(t, 10.0, second.Profit)
	assert.Equal(t, 3, second.Trades)
	assert.Equal(t, 0, second.Days[1].Trades)
	assert.True(t, second.Days[1].InMonth)

	last := cal.Weeks[4]
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), last.Days[6].Date)
	assert.Equal(t, 7.0, last.Profit)
}

func TestMonthCalendar_MonthStartingOnMonday(t *testing.T) {
	// April 2024 starts on a Monday
	cal := MonthCalendar(nil, 2024, time.April)
	require.Len(t, cal.Weeks, 5)
	assert.True(t, cal.Weeks[0].Days[0].InMonth)
	assert.Equal(t, 1, cal.Weeks[0].Days[0].Date.Day())
}
