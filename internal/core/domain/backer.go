package domain

import (
	"time"

	"github.com/google/uuid"
)

// BackerRecord is the per-account ledger entry of a campaign. It exists once
// the account has enrolled; AmountBacked stays zero until the account funds.
type BackerRecord struct {
	CampaignID   uuid.UUID
	Account      Account
	AmountBacked uint64
	EnrolledAt   time.Time
	FundedAt     *time.Time
}

// Funded reports whether the backer has already contributed.
func (b *BackerRecord) Funded() bool {
	return b != nil && b.AmountBacked > 0
}

// Refund is a claim paid back to a backer after an unsuccessful ending.
// Refunds live in their own ledger so the frozen backer ledger stays intact.
type Refund struct {
	CampaignID uuid.UUID
	Account    Account
	Amount     uint64
	CreatedAt  time.Time
}

// RewardClaim marks a backer as having claimed the campaign reward.
type RewardClaim struct {
	CampaignID     uuid.UUID
	Account        Account
	RewardMetadata string
	CreatedAt      time.Time
}

// Eligibility is the answer to a reward eligibility query.
type Eligibility struct {
	Eligible       bool
	RewardMetadata string
}
