package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxMilestones bounds the milestone schedule of a single campaign.
const MaxMilestones = 10

// MaxAmount is the largest amount a ledger column can hold. Amounts are
// unsigned in the domain but persisted as BIGINT.
const MaxAmount = uint64(1<<63 - 1)

// Account identifies a ledger account: a backer, the creator, the funds
// receiver, the milestone approval authority or a campaign escrow.
type Account string

// String returns the raw account identifier.
func (a Account) String() string { return string(a) }

// IsZero reports whether the account is blank.
func (a Account) IsZero() bool { return strings.TrimSpace(string(a)) == "" }

// EscrowAccount returns the account that holds the funds of the campaign with
// the given id. Payments toward a campaign must be addressed to it.
func EscrowAccount(id uuid.UUID) Account {
	return Account("escrow:" + id.String())
}

// Phase is the campaign lifecycle stage. Numeric values are persisted.
type Phase uint8

const (
	PhaseFunding                 Phase = 0
	PhaseWaitingForNextMilestone Phase = 1
	PhaseMilestoneValidation     Phase = 2
	PhaseEnded                   Phase = 3
)

// String prints the phase as a lower-case label for logs and the API.
func (p Phase) String() string {
	switch p {
	case PhaseFunding:
		return "funding"
	case PhaseWaitingForNextMilestone:
		return "waiting_for_next_milestone"
	case PhaseMilestoneValidation:
		return "milestone_validation"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records why a campaign reached PhaseEnded.
type EndReason uint8

const (
	EndReasonNone              EndReason = 0
	EndReasonCompleted         EndReason = 1
	EndReasonGoalNotReached    EndReason = 2
	EndReasonMilestoneRejected EndReason = 3
)

// String prints the end reason as a lower-case label.
func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "completed"
	case EndReasonGoalNotReached:
		return "goal_not_reached"
	case EndReasonMilestoneRejected:
		return "milestone_rejected"
	default:
		return "none"
	}
}

// Refundable reports whether backers may reclaim funds after this ending.
func (r EndReason) Refundable() bool {
	return r == EndReasonGoalNotReached || r == EndReasonMilestoneRejected
}

// NullMilestone is an optional milestone index. The zero value means no
// milestone has been validated yet.
type NullMilestone struct {
	Index uint8
	Valid bool
}

// MilestoneAt returns a valid NullMilestone for index.
func MilestoneAt(index uint8) NullMilestone {
	return NullMilestone{Index: index, Valid: true}
}

// Next returns the index of the milestone that follows the reached one.
func (m NullMilestone) Next() uint8 {
	if !m.Valid {
		return 0
	}
	return m.Index + 1
}

// Count returns how many milestones have been validated.
func (m NullMilestone) Count() int {
	if !m.Valid {
		return 0
	}
	return int(m.Index) + 1
}

// CampaignConfig holds the parameters fixed when a campaign is created.
type CampaignConfig struct {
	Creator           Account
	Goal              uint64
	FundsReceiver     Account
	FundStart         time.Time
	FundEnd           time.Time
	TotalMilestones   uint8
	Allocations       []uint64
	RewardMetadata    string
	ApprovalAuthority Account
}

// InFundingWindow reports whether now lies in the inclusive funding window.
func (c CampaignConfig) InFundingWindow(now time.Time) bool {
	return !now.Before(c.FundStart) && !now.After(c.FundEnd)
}

// AllocationTotal sums the milestone schedule. ok is false on overflow.
func (c CampaignConfig) AllocationTotal() (total uint64, ok bool) {
	for _, a := range c.Allocations {
		total, ok = addAmount(total, a)
		if !ok {
			return 0, false
		}
	}
	return total, true
}

// Validate checks the configuration against the creation rules of p.
func (c CampaignConfig) Validate(p Policy) error {
	switch {
	case c.Creator.IsZero():
		return ErrInvalidConfig.Detail("creator is required")
	case c.FundsReceiver.IsZero():
		return ErrInvalidConfig.Detail("funds receiver is required")
	case c.ApprovalAuthority.IsZero():
		return ErrInvalidConfig.Detail("milestone approval authority is required")
	case c.Goal > MaxAmount:
		return ErrInvalidConfig.Detail("campaign goal %d exceeds %d", c.Goal, MaxAmount)
	case c.TotalMilestones < 1 || c.TotalMilestones > MaxMilestones:
		return ErrInvalidConfig.Detail("total milestones %d outside [1, %d]", c.TotalMilestones, MaxMilestones)
	case !c.FundStart.Before(c.FundEnd):
		return ErrInvalidConfig.Detail("fund start date must precede fund end date")
	case len(c.Allocations) != int(c.TotalMilestones):
		return ErrInvalidConfig.Detail("got %d milestone allocations for %d milestones",
			len(c.Allocations), c.TotalMilestones)
	}

	total, ok := c.AllocationTotal()
	if !ok {
		return ErrInvalidConfig.Detail("milestone allocations overflow")
	}
	if p.EnforceAllocationSum && total > c.Goal {
		return ErrInvalidConfig.Detail("milestone allocations sum to %d, above goal %d", total, c.Goal)
	}
	return nil
}

func (c CampaignConfig) clone() CampaignConfig {
	c.Allocations = append([]uint64(nil), c.Allocations...)
	return c
}

// CampaignState is the mutable part of a campaign.
type CampaignState struct {
	Phase            Phase
	CollectedFunds   uint64
	TotalBackers     uint64
	ReachedMilestone NullMilestone
	ReleasedFunds    uint64
	EndReason        EndReason
}

// HeldFunds returns what the escrow still holds after milestone releases.
func (s CampaignState) HeldFunds() uint64 {
	return s.CollectedFunds - s.ReleasedFunds
}

// Campaign is the aggregate guarding one escrow. All mutations go through its
// methods, which check the phase before touching any ledger.
type Campaign struct {
	ID        uuid.UUID
	Escrow    Account
	Config    CampaignConfig
	State     CampaignState
	EventSeq  uint64
	CreatedAt time.Time
	UpdatedAt time.Time

	pending []Event
}

// Clone returns a deep copy without pending events.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	out.Config = c.Config.clone()
	out.pending = nil
	return &out
}

// Payment is a value transfer submitted alongside a fund call.
type Payment struct {
	Amount   uint64
	Receiver Account
}

// Release is the portion of escrow paid out when a milestone is approved.
type Release struct {
	CampaignID uuid.UUID
	Milestone  uint8
	Amount     uint64
	Receiver   Account
	CreatedAt  time.Time
}

// LedgerTotals aggregates the backer ledger of one campaign.
type LedgerTotals struct {
	Sum   uint64
	Count uint64
}

func addAmount(a, b uint64) (uint64, bool) {
	if b > MaxAmount-a || a > MaxAmount {
		return 0, false
	}
	return a + b, true
}
