package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeed struct {
	dealCalls     atomic.Int32
	positionCalls atomic.Int32
	delay         time.Duration
	deals         []dto.TerminalDeal
	positions     []model.Position
	err           error
}

func (f *fakeFeed) GetDeals(ctx context.Context, from, to time.Time) ([]dto.TerminalDeal, error) {
	f.dealCalls.Add(1)
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.deals, nil
}

func (f *fakeFeed) GetPositions(ctx context.Context) ([]model.Position, error) {
	f.positionCalls.Add(1)
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.positions, nil
}

func (f *fakeFeed) GetAccount(ctx context.Context) (*model.AccountInfo, error) {
	return &model.AccountInfo{Balance: 1}, f.err
}

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
)

func TestCachedDealFeed_ReusesWindow(t *testing.T) {
	src := &fakeFeed{deals: []dto.TerminalDeal{{Ticket: 1}, {Ticket: 2}}}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	first, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)
	second, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.dealCalls.Load())

	// a different window is a different entry
	_, err = feed.GetDeals(context.Background(), jan1, jan2.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.dealCalls.Load())
}

func TestCachedDealFeed_ReturnsCopies(t *testing.T) {
	src := &fakeFeed{deals: []dto.TerminalDeal{{Ticket: 1}}}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	deals, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)
	deals[0].Ticket = 99

	again, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), again[0].Ticket)
}

func TestCachedDealFeed_ConcurrentMissesShareOneFetch(t *testing.T) {
	src := &fakeFeed{deals: []dto.TerminalDeal{{Ticket: 1}}, delay: 50 * time.Millisecond}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deals, err := feed.GetDeals(context.Background(), jan1, jan2)
			assert.NoError(t, err)
			assert.Len(t, deals, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.dealCalls.Load())
}

func TestCachedDealFeed_Expiry(t *testing.T) {
	src := &fakeFeed{deals: []dto.TerminalDeal{{Ticket: 1}}}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), 20*time.Millisecond)

	_, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	_, err = feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)

	assert.Equal(t, int32(2), src.dealCalls.Load())
}

func TestCachedDealFeed_EmptyIsCachedErrorIsNot(t *testing.T) {
	src := &fakeFeed{}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		deals, err := feed.GetDeals(context.Background(), jan1, jan2)
		require.NoError(t, err)
		assert.NotNil(t, deals)
		assert.Empty(t, deals)
	}
	assert.Equal(t, int32(1), src.dealCalls.Load())

	failing := &fakeFeed{err: ErrTerminalUnavailable}
	feed = NewCachedDealFeed(failing, cache.NewCache(time.Minute, time.Minute), time.Minute)
	for i := 0; i < 2; i++ {
		_, err := feed.GetDeals(context.Background(), jan1, jan2)
		assert.True(t, errors.Is(err, ErrTerminalUnavailable))
	}
	assert.Equal(t, int32(2), failing.dealCalls.Load())
}

func TestCachedDealFeed_Positions(t *testing.T) {
	src := &fakeFeed{positions: []model.Position{{Ticket: 7}}}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 3; i++ {
		positions, err := feed.GetPositions(context.Background())
		require.NoError(t, err)
		assert.Len(t, positions, 1)
	}
	assert.Equal(t, int32(1), src.positionCalls.Load())

	account, err := feed.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, account.Balance)
}

func TestCachedDealFeed_SharedFetchSurvivesCancelledCaller(t *testing.T) {
	src := &fakeFeed{
		delay:     100 * time.Millisecond,
		deals:     []dto.TerminalDeal{{Ticket: 1}},
		positions: []model.Position{{Ticket: 2}},
	}
	feed := NewCachedDealFeed(src, cache.NewCache(time.Minute, time.Minute), time.Minute)

	leaderCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = feed.GetDeals(leaderCtx, jan1, jan2)
	}()
	go func() {
		defer wg.Done()
		_, _ = feed.GetPositions(leaderCtx)
	}()

	// let the first callers start the upstream calls, then drop them
	time.Sleep(20 * time.Millisecond)
	cancel()

	deals, err := feed.GetDeals(context.Background(), jan1, jan2)
	require.NoError(t, err)
	assert.Equal(t, []dto.TerminalDeal{{Ticket: 1}}, deals)

	positions, err := feed.GetPositions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Position{{Ticket: 2}}, positions)

	wg.Wait()
	assert.Equal(t, int32(1), src.dealCalls.Load())
	assert.Equal(t, int32(1), src.positionCalls.Load())
}
