package analytics

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("invalid window")

// Window is an inclusive history range: From at 00:00:00 of its day and To at
// 23:59:59.999999 of its day.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewWindow expands two calendar dates into a full-day window. Only the date
// part of the arguments is used.
func NewWindow(fromDate, toDate time.Time) (Window, error) {
	from := startOfDay(fromDate)
	to := startOfDay(toDate)
	if to.Before(from) {
		return Window{}, fmt.Errorf("%w: %s is before %s", ErrInvalidWindow, to.Format(dateLayout), from.Format(dateLayout))
	}
	return Window{
		From: from,
		To:   to.Add(24*time.Hour - time.Microsecond),
	}, nil
}

// LookbackWindow returns the window covering the last days calendar days
// ending on today's date.
func LookbackWindow(today time.Time, days int) Window {
	w, _ := NewWindow(today.AddDate(0, 0, -days), today)
	return w
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From.Format(dateLayout), w.To.Format(dateLayout))
}

const dateLayout = "2006-01-02"

// startOfDay drops the clock part, keeping the wall-clock date.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
