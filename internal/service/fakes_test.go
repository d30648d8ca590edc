package service

import (
	"context"
	"sync"
	"time"

	"trading-dashboard/config"
	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/utils"
)

type fakeFeed struct {
	deals     []dto.TerminalDeal
	positions []model.Position
	account   *model.AccountInfo
	err       error
	// filter returns only deals inside the requested window, like the terminal
	filter bool

	mu      sync.Mutex
	windows [][2]time.Time
}

func (f *fakeFeed) GetDeals(ctx context.Context, from, to time.Time) ([]dto.TerminalDeal, error) {
	f.mu.Lock()
	f.windows = append(f.windows, [2]time.Time{from, to})
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if !f.filter {
		return f.deals, nil
	}
	var out []dto.TerminalDeal
	for _, d := range f.deals {
		if d.Time >= from.Unix() && d.Time <= to.Unix() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeFeed) GetPositions(ctx context.Context) ([]model.Position, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.positions, nil
}

func (f *fakeFeed) GetAccount(ctx context.Context) (*model.AccountInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.account, nil
}

type fakeSnapshotRepo struct {
	created []*model.MetricsSnapshot
	listed  []model.MetricsSnapshot
	param   model.GetMetricsSnapshotParam
	err     error
}

func (r *fakeSnapshotRepo) Create(ctx context.Context, snapshot *model.MetricsSnapshot, opts ...utils.DBOption) error {
	if r.err != nil {
		return r.err
	}
	snapshot.ID = uint(len(r.created) + 1)
	r.created = append(r.created, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) List(ctx context.Context, param model.GetMetricsSnapshotParam, opts ...utils.DBOption) ([]model.MetricsSnapshot, error) {
	r.param = param
	return r.listed, r.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) Notify(ctx context.Context, message string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, message)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{DefaultLookbackDays: 730},
		Scheduler: config.Scheduler{ReportCron: "0 8 1 * *", Timeout: time.Minute},
	}
}

// exitDeal is an exit deal at the given UTC time.
func exitDeal(ticket uint64, at time.Time, side int, profit float64) dto.TerminalDeal {
	return dto.TerminalDeal{
		Ticket: ticket,
		Time:   at.Unix(),
		Entry:  dto.TerminalEntryOut,
		Type:   side,
		Volume: 0.1,
		Profit: profit,
		Symbol: "EURUSD",
	}
}

func entryDeal(ticket uint64, at time.Time) dto.TerminalDeal {
	return dto.TerminalDeal{Ticket: ticket, Time: at.Unix(), Entry: dto.TerminalEntryIn, Symbol: "EURUSD"}
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}
