package port

import (
	"context"

	"github.com/google/uuid"

	"milestone-escrow/internal/core/domain"
)

// Transactor runs a unit of work atomically. Repository calls made with the
// context passed to fn join the unit; the unit commits when fn returns nil and
// rolls back otherwise. Nested calls join the outer unit.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

// CampaignRepository defines the persistence layer for campaigns and their
// ledgers. It is an outbound port in hexagonal architecture.
// Implementations must be concurrency-safe. Lookups return nil, nil when the
// row does not exist.
type CampaignRepository interface {
	// InsertCampaign stores a new campaign with its configuration and state.
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id without locking it.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// LockCampaign returns a campaign by id and holds it exclusively until the
	// surrounding unit of work ends. It must be called inside Transact.
	LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// UpdateCampaign persists the mutable state and event sequence.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error

	// GetBacker returns the ledger entry of account.
	GetBacker(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.BackerRecord, error)
	// InsertBacker creates a ledger entry. It fails with
	// domain.ErrAlreadyEnrolled when one already exists.
	InsertBacker(ctx context.Context, rec *domain.BackerRecord) error
	// UpdateBacker persists the funded amount of an entry.
	UpdateBacker(ctx context.Context, rec *domain.BackerRecord) error
	// ListBackers returns every ledger entry ordered by enrollment.
	ListBackers(ctx context.Context, campaignID uuid.UUID) ([]domain.BackerRecord, error)
	// SumBacked aggregates the backer ledger.
	SumBacked(ctx context.Context, campaignID uuid.UUID) (domain.LedgerTotals, error)

	// InsertRelease appends to the release ledger.
	InsertRelease(ctx context.Context, r *domain.Release) error
	// ListReleases returns releases ordered by milestone.
	ListReleases(ctx context.Context, campaignID uuid.UUID) ([]domain.Release, error)

	// GetRefund returns the refund claimed by account.
	GetRefund(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.Refund, error)
	// InsertRefund appends to the refund ledger. It fails with
	// domain.ErrAlreadyRefunded when account was already refunded.
	InsertRefund(ctx context.Context, r *domain.Refund) error

	// GetRewardClaim returns the reward claim of account.
	GetRewardClaim(ctx context.Context, campaignID uuid.UUID, account domain.Account) (*domain.RewardClaim, error)
	// InsertRewardClaim records a claim. It fails with
	// domain.ErrRewardAlreadyClaimed when account already claimed.
	InsertRewardClaim(ctx context.Context, rc *domain.RewardClaim) error

	// AppendEvents stores journal entries produced by one unit of work.
	AppendEvents(ctx context.Context, events []domain.Event) error
	// ListEvents returns at most limit events with Seq > afterSeq in order.
	ListEvents(ctx context.Context, campaignID uuid.UUID, afterSeq uint64, limit int) ([]domain.Event, error)
}
