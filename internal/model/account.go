package model

import "time"

// AccountInfo is the terminal's view of the trading account.
type AccountInfo struct {
	Login      int64   `json:"login"`
	Server     string  `json:"server"`
	Currency   string  `json:"currency"`
	Balance    float64 `json:"balance"`
	Credit     float64 `json:"credit"`
	MarginFree float64 `json:"margin_free"`
	Leverage   int     `json:"leverage"`
}

// Position is an open position as reported by the terminal.
type Position struct {
	Ticket    uint64    `json:"ticket"`
	Symbol    string    `json:"symbol"`
	Time      time.Time `json:"time"`
	Side      DealSide  `json:"side"`
	Volume    float64   `json:"volume"`
	PriceOpen float64   `json:"price_open"`
	Profit    float64   `json:"profit"`
	// Margin is nil when the terminal does not report per-position margin.
	Margin *float64 `json:"margin,omitempty"`
}
