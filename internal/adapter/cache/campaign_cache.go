// Package cache decorates a campaign repository with an in-process read
// cache. Only ended campaigns are cached: their configuration, ledger totals
// and milestone state are frozen.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository serves GetCampaign for ended campaigns from freecache
// and delegates everything else. The journal sequence of a cached campaign
// may lag by up to the TTL when claims are booked concurrently with reads.
type CampaignRepository struct {
	port.CampaignRepository
	cache *freecache.Cache
	ttl   int
	log   *zap.Logger
}

// New wraps next with a cache of size bytes.
func New(next port.CampaignRepository, size int, ttl time.Duration, log *zap.Logger) *CampaignRepository {
	return &CampaignRepository{
		CampaignRepository: next,
		cache:              freecache.NewCache(size),
		ttl:                int(ttl.Seconds()),
		log:                log,
	}
}

// GetCampaign returns a cached copy when one exists.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	key := cacheKey(id)
	if data, err := r.cache.Get(key); err == nil {
		var c domain.Campaign
		if err = json.Unmarshal(data, &c); err == nil {
			return &c, nil
		}
		r.cache.Del(key)
	}

	c, err := r.CampaignRepository.GetCampaign(ctx, id)
	if err != nil || c == nil || c.State.Phase != domain.PhaseEnded {
		return c, err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return c, nil
	}
	if err = r.cache.Set(key, data, r.ttl); err != nil {
		r.log.Debug("campaign not cached", zap.String("campaign_id", id.String()), zap.Error(err))
	}
	return c, nil
}

// UpdateCampaign drops the cached copy after delegating.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.CampaignRepository.UpdateCampaign(ctx, c)
	r.cache.Del(cacheKey(c.ID))
	return err
}

// HitRate reports the cache hit ratio.
func (r *CampaignRepository) HitRate() float64 {
	return r.cache.HitRate()
}

func cacheKey(id uuid.UUID) []byte {
	return id[:]
}
