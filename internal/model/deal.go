package model

import "time"

// DealEntry is the direction of a deal: opening leg or closing leg.
type DealEntry string

const (
	DealEntryIn  DealEntry = "Entry"
	DealEntryOut DealEntry = "Exit"
)

// DealSide is the instrument side of a deal.
type DealSide string

const (
	DealSideBuy  DealSide = "Buy"
	DealSideSell DealSide = "Sell"
	// DealSideOther covers balance, credit and commission records.
	DealSideOther DealSide = "Other"
)

// Deal is one normalized trade-history record.
type Deal struct {
	Ticket uint64    `json:"ticket"`
	Order  uint64    `json:"order"`
	Symbol string    `json:"symbol"`
	Time   time.Time `json:"time"`
	Entry  DealEntry `json:"entry"`
	Side   DealSide  `json:"side"`
	Volume float64   `json:"volume"`
	Profit float64   `json:"profit"`
}

// IsExit reports whether the deal realized profit or loss.
func (d Deal) IsExit() bool {
	return d.Entry == DealEntryOut
}

// SideFromCode maps a raw terminal deal/position type code to a side.
func SideFromCode(code int) DealSide {
	switch code {
	case 0:
		return DealSideBuy
	case 1:
		return DealSideSell
	default:
		return DealSideOther
	}
}
