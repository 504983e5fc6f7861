package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"milestone-escrow/internal/core/domain"
)

// DefaultEventPageSize caps ListEvents when no limit is given.
const DefaultEventPageSize = 100

// CampaignUseCase defines the business operations exposed by the escrow. This
// interface represents the primary port into the application domain. Every
// mutating call runs as one atomic unit per campaign: it either applies all
// of its effects or none of them.
type CampaignUseCase interface {
	// CreateCampaign validates the configuration and opens a campaign in the
	// Funding phase.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns the configuration, state and releases of a campaign.
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error)

	// Enroll opens an empty ledger entry for account.
	Enroll(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.BackerRecord, error)
	// Fund books a one-time contribution of account into the campaign escrow.
	Fund(ctx context.Context, id uuid.UUID, account domain.Account, pay domain.Payment) (*domain.BackerRecord, error)

	// CloseFunding ends the funding phase on behalf of actor.
	CloseFunding(ctx context.Context, id uuid.UUID, actor domain.Account) (*domain.Campaign, error)
	// RequestValidation opens validation of the next milestone.
	RequestValidation(ctx context.Context, id uuid.UUID, actor domain.Account) (*domain.Campaign, error)
	// RecordDecision applies the approval authority's verdict.
	RecordDecision(ctx context.Context, id uuid.UUID, actor domain.Account, approved bool) (*DecisionResult, error)

	// GetBacker returns the ledger entry of account or domain.ErrNotEnrolled.
	GetBacker(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.BackerRecord, error)
	// ListBackers returns the whole backer ledger.
	ListBackers(ctx context.Context, id uuid.UUID) ([]domain.BackerRecord, error)
	// RewardEligibility answers whether account may claim the reward. An
	// ineligible account is not an error.
	RewardEligibility(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.Eligibility, error)
	// ClaimReward records the reward claim of an eligible backer.
	ClaimReward(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.RewardClaim, error)
	// ClaimRefund pays account back after an unsuccessful ending.
	ClaimRefund(ctx context.Context, id uuid.UUID, account domain.Account) (*domain.Refund, error)

	// ListEvents pages through the campaign journal.
	ListEvents(ctx context.Context, id uuid.UUID, afterSeq uint64, limit int) ([]domain.Event, error)
}

// CreateCampaignReq carries the parameters of a new campaign. Creator is the
// calling account.
type CreateCampaignReq struct {
	Creator           domain.Account
	Goal              uint64
	FundsReceiver     domain.Account
	FundStart         time.Time
	FundEnd           time.Time
	RewardMetadata    string
	TotalMilestones   uint8
	Allocations       []uint64
	ApprovalAuthority domain.Account
}

// Config converts the request into a campaign configuration.
func (r CreateCampaignReq) Config() domain.CampaignConfig {
	return domain.CampaignConfig{
		Creator:           r.Creator,
		Goal:              r.Goal,
		FundsReceiver:     r.FundsReceiver,
		FundStart:         r.FundStart,
		FundEnd:           r.FundEnd,
		TotalMilestones:   r.TotalMilestones,
		Allocations:       r.Allocations,
		RewardMetadata:    r.RewardMetadata,
		ApprovalAuthority: r.ApprovalAuthority,
	}
}

// CampaignView is the read model of a campaign.
type CampaignView struct {
	Campaign *domain.Campaign
	Releases []domain.Release
}

// DecisionResult is returned by RecordDecision. Release is nil on rejection.
type DecisionResult struct {
	Campaign *domain.Campaign
	Release  *domain.Release
}
