package analytics

import (
	"sort"
	"time"

	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
)

// DealTable is the normalized, time-ordered deal history for a window. An
// empty table is how "no data" is represented.
type DealTable struct {
	Window Window       `json:"window"`
	Deals  []model.Deal `json:"deals"`
}

func (t DealTable) Empty() bool {
	return len(t.Deals) == 0
}

// Exits returns the exit deals in table order.
func (t DealTable) Exits() []model.Deal {
	exits := make([]model.Deal, 0, len(t.Deals))
	for _, d := range t.Deals {
		if d.IsExit() {
			exits = append(exits, d)
		}
	}
	return exits
}

// NormalizeDeals converts raw terminal deals into a DealTable sorted by time.
// raw is never modified. A nil or empty raw slice yields an empty table.
func NormalizeDeals(raw []dto.TerminalDeal, window Window) (DealTable, error) {
	table := DealTable{Window: window}
	if len(raw) == 0 {
		return table, nil
	}

	deals := make([]model.Deal, 0, len(raw))
	for _, r := range raw {
		entry, err := entryFromCode(r)
		if err != nil {
			return DealTable{Window: window}, err
		}
		deals = append(deals, model.Deal{
			Ticket: r.Ticket,
			Order:  r.Order,
			Symbol: r.Symbol,
			Time:   time.Unix(r.Time, 0).UTC(),
			Entry:  entry,
			Side:   model.SideFromCode(r.Type),
			Volume: r.Volume,
			Profit: r.Profit,
		})
	}

	sortByTime(deals)
	table.Deals = deals
	return table, nil
}

func entryFromCode(r dto.TerminalDeal) (model.DealEntry, error) {
	switch r.Entry {
	case dto.TerminalEntryIn:
		return model.DealEntryIn, nil
	case dto.TerminalEntryOut:
		return model.DealEntryOut, nil
	default:
		return "", &DataIntegrityError{Ticket: r.Ticket, Code: r.Entry}
	}
}

// sortByTime orders deals ascending by time, keeping feed order for ties.
func sortByTime(deals []model.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Time.Before(deals[j].Time)
	})
}

// Within returns the part of t that falls inside w, keeping order.
func (t DealTable) Within(w Window) DealTable {
	out := DealTable{Window: w, Deals: make([]model.Deal, 0, len(t.Deals))}
	for _, d := range t.Deals {
		if w.Contains(d.Time) {
			out.Deals = append(out.Deals, d)
		}
	}
	return out
}
