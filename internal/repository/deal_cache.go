package repository

import (
	"context"
	"fmt"
	"time"

	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/cache"
	"trading-dashboard/pkg/common"
	"trading-dashboard/pkg/monitoring"

	"golang.org/x/sync/singleflight"
)

// CachedDealFeed keeps deal history per exact window and the open positions
// for ttl. Concurrent misses on one key share a single upstream call, which
// does not inherit the cancellation of whichever caller started it. Errors are
// not cached; empty results are.
type CachedDealFeed struct {
	source DealFeed
	cache  cache.Cache
	ttl    time.Duration
	group  singleflight.Group
}

func NewCachedDealFeed(source DealFeed, c cache.Cache, ttl time.Duration) *CachedDealFeed {
	return &CachedDealFeed{
		source: source,
		cache:  c,
		ttl:    ttl,
	}
}

func (f *CachedDealFeed) GetDeals(ctx context.Context, from, to time.Time) ([]dto.TerminalDeal, error) {
	key := fmt.Sprintf(common.KEY_DEALS, from.Unix(), to.Unix())

	if deals, ok := cache.GetFromCache[[]dto.TerminalDeal](f.cache, key); ok {
		monitoring.CacheLookups.WithLabelValues("deals", monitoring.CacheHit).Inc()
		return append([]dto.TerminalDeal{}, deals...), nil
	}
	monitoring.CacheLookups.WithLabelValues("deals", monitoring.CacheMiss).Inc()

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		if deals, ok := cache.GetFromCache[[]dto.TerminalDeal](f.cache, key); ok {
			return deals, nil
		}
		deals, err := f.source.GetDeals(context.WithoutCancel(ctx), from, to)
		if err != nil {
			return nil, err
		}
		if deals == nil {
			deals = []dto.TerminalDeal{}
		}
		f.cache.Set(key, deals, f.ttl)
		return deals, nil
	})
	if err != nil {
		return nil, err
	}

	return append([]dto.TerminalDeal{}, v.([]dto.TerminalDeal)...), nil
}

func (f *CachedDealFeed) GetPositions(ctx context.Context) ([]model.Position, error) {
	key := common.KEY_POSITIONS

	if positions, ok := cache.GetFromCache[[]model.Position](f.cache, key); ok {
		monitoring.CacheLookups.WithLabelValues("positions", monitoring.CacheHit).Inc()
		return append([]model.Position{}, positions...), nil
	}
	monitoring.CacheLookups.WithLabelValues("positions", monitoring.CacheMiss).Inc()

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		positions, err := f.source.GetPositions(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if positions == nil {
			positions = []model.Position{}
		}
		f.cache.Set(key, positions, f.ttl)
		return positions, nil
	})
	if err != nil {
		return nil, err
	}

	return append([]model.Position{}, v.([]model.Position)...), nil
}

// GetAccount is not cached; balance must be current for drawdown and margin
// figures.
func (f *CachedDealFeed) GetAccount(ctx context.Context) (*model.AccountInfo, error) {
	return f.source.GetAccount(ctx)
}
