// Package memory keeps campaigns in process memory. It backs tests and the
// "memory" storage driver; units of work are serialized by a single mutex
// and rolled back by restoring a snapshot.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

var (
	_ port.CampaignRepository = (*Store)(nil)
	_ port.Transactor         = (*Store)(nil)
)

type txKey struct{}

type accountKey struct {
	campaign uuid.UUID
	account  domain.Account
}

type dataset struct {
	campaigns map[uuid.UUID]domain.Campaign
	backers   map[uuid.UUID][]domain.BackerRecord
	releases  map[uuid.UUID][]domain.Release
	refunds   map[accountKey]domain.Refund
	claims    map[accountKey]domain.RewardClaim
	events    map[uuid.UUID][]domain.Event
}

func newDataset() dataset {
	return dataset{
		campaigns: map[uuid.UUID]domain.Campaign{},
		backers:   map[uuid.UUID][]domain.BackerRecord{},
		releases:  map[uuid.UUID][]domain.Release{},
		refunds:   map[accountKey]domain.Refund{},
		claims:    map[accountKey]domain.RewardClaim{},
		events:    map[uuid.UUID][]domain.Event{},
	}
}

// snapshot copies every container that a unit of work may modify in place.
func (d dataset) snapshot() dataset {
	out := dataset{
		campaigns: maps.Clone(d.campaigns),
		backers:   make(map[uuid.UUID][]domain.BackerRecord, len(d.backers)),
		releases:  make(map[uuid.UUID][]domain.Release, len(d.releases)),
		refunds:   maps.Clone(d.refunds),
		claims:    maps.Clone(d.claims),
		events:    make(map[uuid.UUID][]domain.Event, len(d.events)),
	}
	for k, v := range d.backers {
		out.backers[k] = slices.Clone(v)
	}
	for k, v := range d.releases {
		out.releases[k] = slices.Clone(v)
	}
	for k, v := range d.events {
		out.events[k] = slices.Clone(v)
	}
	return out
}

// Store implements port.CampaignRepository and port.Transactor in memory.
type Store struct {
	mu   sync.Mutex
	data dataset
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Transact runs fn while holding the store lock. Changes made by fn are
// discarded when it returns an error or panics.
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.data.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.data = saved
			panic(r)
		}
		if err != nil {
			s.data = saved
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// view runs fn on the dataset, locking unless ctx already holds the lock.
func (s *Store) view(ctx context.Context, fn func(d *dataset) error) error {
	if s.inTx(ctx) {
		return fn(&s.data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// InsertCampaign stores a copy of c.
func (s *Store) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	return s.view(ctx, func(d *dataset) error {
		if _, ok := d.campaigns[c.ID]; ok {
			return domain.ErrInvalidConfig.Detail("campaign %s already exists", c.ID)
		}
		d.campaigns[c.ID] = *c.Clone()
		return nil
	})
}

// GetCampaign returns a copy of the campaign, or nil when it is unknown.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.view(ctx, func(d *dataset) error {
		if c, ok := d.campaigns[id]; ok {
			out = c.Clone()
		}
		return nil
	})
	return out, err
}

// LockCampaign is GetCampaign: the unit of work already holds the store lock.
func (s *Store) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return s.GetCampaign(ctx, id)
}

// UpdateCampaign replaces the stored campaign with a copy of c.
func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return s.view(ctx, func(d *dataset) error {
		if _, ok := d.campaigns[c.ID]; !ok {
			return domain.ErrCampaignNotFound
		}
		d.campaigns[c.ID] = *c.Clone()
		return nil
	})
}

// GetBacker returns a copy of the ledger entry of account.
func (s *Store) GetBacker(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.BackerRecord, error) {
	var out *domain.BackerRecord
	err := s.view(ctx, func(d *dataset) error {
		if i := indexBacker(d.backers[campaignID], account); i >= 0 {
			rec := d.backers[campaignID][i]
			out = &rec
		}
		return nil
	})
	return out, err
}

// InsertBacker appends a ledger entry, keeping enrollment order.
func (s *Store) InsertBacker(ctx context.Context, rec *domain.BackerRecord) error {
	return s.view(ctx, func(d *dataset) error {
		if indexBacker(d.backers[rec.CampaignID], rec.Account) >= 0 {
			return domain.ErrAlreadyEnrolled
		}
		d.backers[rec.CampaignID] = append(d.backers[rec.CampaignID], *rec)
		return nil
	})
}

// UpdateBacker overwrites the ledger entry of rec.Account.
func (s *Store) UpdateBacker(ctx context.Context, rec *domain.BackerRecord) error {
	return s.view(ctx, func(d *dataset) error {
		i := indexBacker(d.backers[rec.CampaignID], rec.Account)
		if i < 0 {
			return domain.ErrNotEnrolled
		}
		d.backers[rec.CampaignID][i] = *rec
		return nil
	})
}

// ListBackers returns the ledger entries in enrollment order.
func (s *Store) ListBackers(ctx context.Context, campaignID uuid.UUID) ([]domain.BackerRecord, error) {
	var out []domain.BackerRecord
	err := s.view(ctx, func(d *dataset) error {
		out = slices.Clone(d.backers[campaignID])
		return nil
	})
	return out, err
}

// SumBacked totals the funded ledger entries.
func (s *Store) SumBacked(ctx context.Context, campaignID uuid.UUID) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	err := s.view(ctx, func(d *dataset) error {
		for _, rec := range d.backers[campaignID] {
			if rec.AmountBacked > 0 {
				totals.Sum += rec.AmountBacked
				totals.Count++
			}
		}
		return nil
	})
	return totals, err
}

// InsertRelease appends to the release ledger.
func (s *Store) InsertRelease(ctx context.Context, r *domain.Release) error {
	return s.view(ctx, func(d *dataset) error {
		d.releases[r.CampaignID] = append(d.releases[r.CampaignID], *r)
		return nil
	})
}

// ListReleases returns releases ordered by milestone.
func (s *Store) ListReleases(ctx context.Context, campaignID uuid.UUID) ([]domain.Release, error) {
	var out []domain.Release
	err := s.view(ctx, func(d *dataset) error {
		out = slices.Clone(d.releases[campaignID])
		sort.Slice(out, func(i, j int) bool { return out[i].Milestone < out[j].Milestone })
		return nil
	})
	return out, err
}

// GetRefund returns the refund of account.
func (s *Store) GetRefund(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.Refund, error) {
	var out *domain.Refund
	err := s.view(ctx, func(d *dataset) error {
		if r, ok := d.refunds[accountKey{campaignID, account}]; ok {
			out = &r
		}
		return nil
	})
	return out, err
}

// InsertRefund records a refund once per account.
func (s *Store) InsertRefund(ctx context.Context, r *domain.Refund) error {
	return s.view(ctx, func(d *dataset) error {
		key := accountKey{r.CampaignID, r.Account}
		if _, ok := d.refunds[key]; ok {
			return domain.ErrAlreadyRefunded
		}
		d.refunds[key] = *r
		return nil
	})
}

// GetRewardClaim returns the reward claim of account.
func (s *Store) GetRewardClaim(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.RewardClaim, error) {
	var out *domain.RewardClaim
	err := s.view(ctx, func(d *dataset) error {
		if rc, ok := d.claims[accountKey{campaignID, account}]; ok {
			out = &rc
		}
		return nil
	})
	return out, err
}

// InsertRewardClaim records a reward claim once per account.
func (s *Store) InsertRewardClaim(ctx context.Context, rc *domain.RewardClaim) error {
	return s.view(ctx, func(d *dataset) error {
		key := accountKey{rc.CampaignID, rc.Account}
		if _, ok := d.claims[key]; ok {
			return domain.ErrRewardAlreadyClaimed
		}
		d.claims[key] = *rc
		return nil
	})
}

// AppendEvents appends events to their campaign journals.
func (s *Store) AppendEvents(ctx context.Context, events []domain.Event) error {
	return s.view(ctx, func(d *dataset) error {
		for _, e := range events {
			d.events[e.CampaignID] = append(d.events[e.CampaignID], e)
		}
		return nil
	})
}

// ListEvents returns at most limit events after afterSeq. A limit of zero
// returns the rest of the journal.
func (s *Store) ListEvents(ctx context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Event, error) {
	var out []domain.Event
	err := s.view(ctx, func(d *dataset) error {
		for _, e := range d.events[campaignID] {
			if e.Seq <= afterSeq {
				continue
			}
			if limit > 0 && len(out) == limit {
				break
			}
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

func indexBacker(records []domain.BackerRecord, account domain.Account) int {
	return slices.IndexFunc(records, func(r domain.BackerRecord) bool { return r.Account == account })
}
