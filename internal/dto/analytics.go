package dto

// WindowRequest selects the history window. Dates are YYYY-MM-DD; both are
// optional and default to the configured lookback ending today.
type WindowRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MonthRequest selects a calendar month inside a history window. Zero year or
// month means the one the window ends in.
type MonthRequest struct {
	WindowRequest
	Year  int `query:"year" validate:"omitempty,min=1970,max=9999"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

// SnapshotListRequest lists the newest snapshots, optionally only those whose
// window starts on or after From.
type SnapshotListRequest struct {
	Limit int    `query:"limit" validate:"omitempty,min=1,max=500"`
	From  string `query:"from" validate:"omitempty,datetime=2006-01-02"`
}
