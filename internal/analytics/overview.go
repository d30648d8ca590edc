package analytics

import "trading-dashboard/internal/model"

const (
	MarginUnused   = "unused"
	MarginHealthy  = "healthy"
	MarginWarning  = "warning"
	MarginCritical = "critical"
)

// AccountOverview combines the account with its open positions.
type AccountOverview struct {
	Currency      string  `json:"currency"`
	Balance       float64 `json:"balance"`
	Equity        float64 `json:"equity"`
	FloatingPL    float64 `json:"floating_pl"`
	FreeMargin    float64 `json:"free_margin"`
	Credit        float64 `json:"credit"`
	MarginUsed    float64 `json:"margin_used"`
	MarginLevel   float64 `json:"margin_level"`
	MarginStatus  string  `json:"margin_status"`
	OpenPositions int     `json:"open_positions"`
	OpenVolume    float64 `json:"open_volume"`
}

// Overview computes equity as balance plus floating P/L and the margin level
// as equity over used margin. Positions without a reported margin count as
// zero margin.
func Overview(account model.AccountInfo, positions []model.Position) AccountOverview {
	o := AccountOverview{
		Currency:      account.Currency,
		Balance:       account.Balance,
		FreeMargin:    account.MarginFree,
		Credit:        account.Credit,
		OpenPositions: len(positions),
	}

	for _, p := range positions {
		o.FloatingPL += p.Profit
		o.OpenVolume += p.Volume
		if p.Margin != nil {
			o.MarginUsed += *p.Margin
		}
	}

	o.Equity = o.Balance + o.FloatingPL
	if o.MarginUsed > 0 {
		o.MarginLevel = o.Equity / o.MarginUsed * 100
	}

	switch {
	case o.MarginUsed == 0:
		o.MarginStatus = MarginUnused
	case o.MarginLevel > 100:
		o.MarginStatus = MarginHealthy
	case o.MarginLevel > 50:
		o.MarginStatus = MarginWarning
	default:
		o.MarginStatus = MarginCritical
	}
	return o
}
