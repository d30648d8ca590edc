package dto

// Raw MT5 deal entry codes.
const (
	TerminalEntryIn  = 0
	TerminalEntryOut = 1
)

// Raw MT5 deal/position type codes.
const (
	TerminalTypeBuy  = 0
	TerminalTypeSell = 1
)

// TerminalDeal is a deal as returned by the terminal bridge, field for field.
type TerminalDeal struct {
	Ticket     uint64  `json:"ticket"`
	Order      uint64  `json:"order"`
	Time       int64   `json:"time"`
	TimeMsc    int64   `json:"time_msc"`
	Type       int     `json:"type"`
	Entry      int     `json:"entry"`
	Magic      int64   `json:"magic"`
	PositionID uint64  `json:"position_id"`
	Volume     float64 `json:"volume"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
	Swap       float64 `json:"swap"`
	Profit     float64 `json:"profit"`
	Symbol     string  `json:"symbol"`
	Comment    string  `json:"comment"`
}

type TerminalDealsResponse struct {
	Deals []TerminalDeal `json:"deals"`
}

type TerminalPosition struct {
	Ticket       uint64   `json:"ticket"`
	Time         int64    `json:"time"`
	Type         int      `json:"type"`
	Volume       float64  `json:"volume"`
	PriceOpen    float64  `json:"price_open"`
	PriceCurrent float64  `json:"price_current"`
	Swap         float64  `json:"swap"`
	Profit       float64  `json:"profit"`
	Symbol       string   `json:"symbol"`
	Margin       *float64 `json:"margin,omitempty"`
}

type TerminalPositionsResponse struct {
	Positions []TerminalPosition `json:"positions"`
}

type TerminalAccount struct {
	Login      int64   `json:"login"`
	Server     string  `json:"server"`
	Currency   string  `json:"currency"`
	Balance    float64 `json:"balance"`
	Credit     float64 `json:"credit"`
	MarginFree float64 `json:"margin_free"`
	Leverage   int     `json:"leverage"`
}

type TerminalErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
