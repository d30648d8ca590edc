package analytics

import (
	"errors"
	"testing"
	"time"

	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) Window {
	t.Helper()
	w, err := NewWindow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return w
}

func TestNormalizeDeals(t *testing.T) {
	raw := []dto.TerminalDeal{
		{Ticket: 3, Time: 1704200000, Entry: dto.TerminalEntryOut, Type: dto.TerminalTypeSell, Profit: -12.5, Volume: 0.2, Symbol: "XAUUSD"},
		{Ticket: 1, Time: 1704100000, Entry: dto.TerminalEntryIn, Type: dto.TerminalTypeBuy, Volume: 0.1, Symbol: "EURUSD"},
		{Ticket: 2, Time: 1704150000, Entry: dto.TerminalEntryOut, Type: 2, Profit: 30, Symbol: ""},
	}
	original := append([]dto.TerminalDeal(nil), raw...)

	table, err := NormalizeDeals(raw, testWindow(t))
	require.NoError(t, err)
	require.Len(t, table.Deals, 3)

	assert.Equal(t, []uint64{1, 2, 3}, []uint64{table.Deals[0].Ticket, table.Deals[1].Ticket, table.Deals[2].Ticket})
	assert.Equal(t, model.DealEntryIn, table.Deals[0].Entry)
	assert.Equal(t, model.DealEntryOut, table.Deals[1].Entry)
	assert.Equal(t, model.DealSideOther, table.Deals[1].Side)
	assert.Equal(t, model.DealSideSell, table.Deals[2].Side)
	assert.Equal(t, time.Unix(1704200000, 0).UTC(), table.Deals[2].Time)
	assert.Equal(t, time.UTC, table.Deals[2].Time.Location())
	assert.Equal(t, -12.5, table.Deals[2].Profit)
	assert.Equal(t, original, raw, "raw feed data must not be reordered")
}

func TestNormalizeDeals_StableForEqualTimes(t *testing.T) {
	raw := []dto.TerminalDeal{
		{Ticket: 10, Time: 1704100000, Entry: dto.TerminalEntryOut},
		{Ticket: 11, Time: 1704100000, Entry: dto.TerminalEntryOut},
		{Ticket: 12, Time: 1704000000, Entry: dto.TerminalEntryOut},
	}
	table, err := NormalizeDeals(raw, testWindow(t))
	require.NoError(t, err)

	assert.Equal(t, uint64(12), table.Deals[0].Ticket)
	assert.Equal(t, uint64(10), table.Deals[1].Ticket)
	assert.Equal(t, uint64(11), table.Deals[2].Ticket)
}

func TestNormalizeDeals_Empty(t *testing.T) {
	for name, raw := range map[string][]dto.TerminalDeal{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			table, err := NormalizeDeals(raw, testWindow(t))
			require.NoError(t, err)
			assert.True(t, table.Empty())
			assert.Empty(t, table.Exits())
		})
	}
}

func TestNormalizeDeals_RejectsUnknownEntry(t *testing.T) {
	raw := []dto.TerminalDeal{
		{Ticket: 1, Time: 1704100000, Entry: dto.TerminalEntryOut, Profit: 5},
		{Ticket: 77, Time: 1704100100, Entry: 2, Profit: 5},
	}

	table, err := NormalizeDeals(raw, testWindow(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataIntegrity))
	assert.True(t, table.Empty(), "no partial batch on integrity errors")

	var integrityErr *DataIntegrityError
	require.True(t, errors.As(err, &integrityErr))
	assert.Equal(t, uint64(77), integrityErr.Ticket)
	assert.Equal(t, 2, integrityErr.Code)
}

func TestDealTable_Within(t *testing.T) {
	table := sequential(1, 2, 3, 4)
	w, err := NewWindow(day0.AddDate(0, 0, 1), day0.AddDate(0, 0, 2))
	require.NoError(t, err)

	got := table.Within(w)
	assert.Equal(t, w, got.Window)
	require.Len(t, got.Deals, 2)
	assert.Equal(t, 2.0, got.Deals[0].Profit)
	assert.Equal(t, 3.0, got.Deals[1].Profit)
	assert.Len(t, table.Deals, 4)
}
