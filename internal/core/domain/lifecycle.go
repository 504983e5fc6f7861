package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewCampaign validates cfg and returns a campaign in the Funding phase with
// empty ledgers and no milestone reached.
func NewCampaign(id uuid.UUID, cfg CampaignConfig, p Policy, now time.Time) (*Campaign, error) {
	if err := cfg.Validate(p); err != nil {
		return nil, err
	}
	cfg = cfg.clone()
	cfg.FundStart = cfg.FundStart.UTC()
	cfg.FundEnd = cfg.FundEnd.UTC()

	c := &Campaign{
		ID:        id,
		Escrow:    EscrowAccount(id),
		Config:    cfg,
		State:     CampaignState{Phase: PhaseFunding},
		CreatedAt: now.UTC(),
	}
	c.record(now, EventCampaignCreated, cfg.Creator, campaignCreatedPayload{
		Goal:            cfg.Goal,
		FundsReceiver:   cfg.FundsReceiver,
		FundStart:       cfg.FundStart.Unix(),
		FundEnd:         cfg.FundEnd.Unix(),
		TotalMilestones: cfg.TotalMilestones,
		Allocations:     cfg.Allocations,
		Escrow:          c.Escrow,
	})
	return c, nil
}

// Enroll opens a zero-valued ledger entry for account. enrolled tells whether
// a record already exists. An ended campaign accepts no new entries.
func (c *Campaign) Enroll(account Account, enrolled bool, now time.Time) (*BackerRecord, error) {
	if account.IsZero() {
		return nil, ErrInvalidAccount
	}
	if c.State.Phase == PhaseEnded {
		return nil, wrongPhase("enroll", c.State.Phase)
	}
	if enrolled {
		return nil, ErrAlreadyEnrolled
	}
	rec := &BackerRecord{
		CampaignID: c.ID,
		Account:    account,
		EnrolledAt: now.UTC(),
	}
	c.record(now, EventBackerEnrolled, account, nil)
	return rec, nil
}

// Fund books a contribution into rec. Guards run in a fixed order and the
// first failure wins; nothing is mutated unless every guard passes.
func (c *Campaign) Fund(rec *BackerRecord, pay Payment, p Policy, now time.Time) error {
	if rec == nil {
		return ErrNotEnrolled
	}
	if c.State.Phase != PhaseFunding {
		return wrongPhase("fund", c.State.Phase)
	}
	if p.EnforceFundingWindow && !c.Config.InFundingWindow(now) {
		return ErrOutsideFundingWindow
	}
	if pay.Amount < p.MinContribution {
		return ErrBelowMinimum.Detail("%d < %d", pay.Amount, p.MinContribution)
	}
	if pay.Receiver != c.Escrow {
		return ErrWrongDestination
	}
	if rec.AmountBacked != 0 {
		return ErrAlreadyFunded
	}
	collected, ok := addAmount(c.State.CollectedFunds, pay.Amount)
	if !ok {
		return ErrAmountOverflow
	}

	fundedAt := now.UTC()
	rec.AmountBacked = pay.Amount
	rec.FundedAt = &fundedAt
	c.State.CollectedFunds = collected
	c.State.TotalBackers++

	c.record(now, EventBackerFunded, rec.Account, backerFundedPayload{
		Amount:         pay.Amount,
		CollectedFunds: c.State.CollectedFunds,
		TotalBackers:   c.State.TotalBackers,
	})
	return nil
}

// CheckLedger verifies that fund accounting matches the backer ledger.
func (c *Campaign) CheckLedger(totals LedgerTotals) error {
	if totals.Sum != c.State.CollectedFunds || totals.Count != c.State.TotalBackers {
		return ErrLedgerInconsistent.Detail("state has %d from %d backers, ledger has %d from %d",
			c.State.CollectedFunds, c.State.TotalBackers, totals.Sum, totals.Count)
	}
	return nil
}

// GoalReached reports whether collected funds cover the goal.
func (c *Campaign) GoalReached() bool {
	return c.State.CollectedFunds >= c.Config.Goal
}

// CloseFunding ends the funding phase. The campaign moves on to milestone
// validation when the goal is met and ends otherwise.
func (c *Campaign) CloseFunding(actor Account, p Policy, now time.Time) error {
	if c.State.Phase != PhaseFunding {
		return wrongPhase("close funding", c.State.Phase)
	}
	if err := c.authorizeTransition(actor, p); err != nil {
		return err
	}
	goalReached := c.GoalReached()
	if now.Before(c.Config.FundEnd) && !(p.AllowEarlyClose && goalReached) {
		return ErrFundingWindowOpen
	}

	if goalReached {
		c.State.Phase = PhaseWaitingForNextMilestone
	} else {
		c.end(EndReasonGoalNotReached)
	}
	c.record(now, EventFundingClosed, actor, fundingClosedPayload{
		GoalReached:    goalReached,
		CollectedFunds: c.State.CollectedFunds,
		Phase:          c.State.Phase.String(),
	})
	return nil
}

// RequestValidation opens validation of the next milestone.
func (c *Campaign) RequestValidation(actor Account, p Policy, now time.Time) error {
	if c.State.Phase != PhaseWaitingForNextMilestone {
		return wrongPhase("request validation", c.State.Phase)
	}
	if err := c.authorizeTransition(actor, p); err != nil {
		return err
	}
	next := c.State.ReachedMilestone.Next()
	if next >= c.Config.TotalMilestones {
		return ErrMilestoneScheduleExhausted
	}

	c.State.Phase = PhaseMilestoneValidation
	c.record(now, EventValidationRequested, actor, milestonePayload{
		Milestone: next,
		Phase:     c.State.Phase.String(),
	})
	return nil
}

// RecordDecision applies the approval authority's verdict on the milestone
// under validation. An approval releases that milestone's allocation and
// returns the release; a rejection ends the campaign.
func (c *Campaign) RecordDecision(actor Account, approved bool, now time.Time) (*Release, error) {
	if c.State.Phase != PhaseMilestoneValidation {
		return nil, wrongPhase("record decision", c.State.Phase)
	}
	if actor != c.Config.ApprovalAuthority {
		return nil, ErrUnauthorizedDecision
	}
	next := c.State.ReachedMilestone.Next()
	if next >= c.Config.TotalMilestones {
		return nil, ErrMilestoneScheduleExhausted
	}

	if !approved {
		c.end(EndReasonMilestoneRejected)
		c.record(now, EventMilestoneRejected, actor, milestonePayload{
			Milestone: next,
			Phase:     c.State.Phase.String(),
		})
		return nil, nil
	}

	amount := c.Config.Allocations[next]
	if held := c.State.HeldFunds(); amount > held {
		amount = held
	}
	release := &Release{
		CampaignID: c.ID,
		Milestone:  next,
		Amount:     amount,
		Receiver:   c.Config.FundsReceiver,
		CreatedAt:  now.UTC(),
	}
	c.State.ReleasedFunds += amount
	c.State.ReachedMilestone = MilestoneAt(next)
	if next+1 < c.Config.TotalMilestones {
		c.State.Phase = PhaseWaitingForNextMilestone
	} else {
		c.end(EndReasonCompleted)
	}

	c.record(now, EventMilestoneApproved, actor, milestonePayload{
		Milestone: next,
		Amount:    amount,
		Receiver:  release.Receiver,
		Phase:     c.State.Phase.String(),
	})
	return release, nil
}

// RewardEligibility answers whether rec may claim the reward. It never fails
// and does not mutate the campaign.
func (c *Campaign) RewardEligibility(rec *BackerRecord, p Policy) Eligibility {
	if c.State.Phase != PhaseEnded {
		return Eligibility{}
	}
	if c.State.ReachedMilestone.Count() < p.rewardThreshold(c.Config.TotalMilestones) {
		return Eligibility{}
	}
	if !rec.Funded() {
		return Eligibility{}
	}
	return Eligibility{
		Eligible:       true,
		RewardMetadata: c.Config.RewardMetadata,
	}
}

// ClaimReward records a reward claim for an eligible backer. claimed is the
// existing claim of the account, if any.
func (c *Campaign) ClaimReward(rec *BackerRecord, claimed *RewardClaim, p Policy, now time.Time) (*RewardClaim, error) {
	eligibility := c.RewardEligibility(rec, p)
	if !eligibility.Eligible {
		return nil, ErrNotRewardEligible
	}
	if claimed != nil {
		return nil, ErrRewardAlreadyClaimed
	}
	claim := &RewardClaim{
		CampaignID:     c.ID,
		Account:        rec.Account,
		RewardMetadata: eligibility.RewardMetadata,
		CreatedAt:      now.UTC(),
	}
	c.record(now, EventRewardClaimed, rec.Account, rewardPayload{RewardMetadata: claim.RewardMetadata})
	return claim, nil
}

// RefundShare returns what a backer who contributed backed gets back. After a
// failed goal it is the full contribution; after a rejected milestone it is
// the pro-rata share of the funds still held in escrow, rounded down.
func (c *Campaign) RefundShare(backed uint64) uint64 {
	switch c.State.EndReason {
	case EndReasonGoalNotReached:
		return backed
	case EndReasonMilestoneRejected:
		collected := c.State.CollectedFunds
		if collected == 0 {
			return 0
		}
		numerator := decimal.NewFromInt(int64(backed)).Mul(decimal.NewFromInt(int64(c.State.HeldFunds())))
		share, _ := numerator.QuoRem(decimal.NewFromInt(int64(collected)), 0)
		return uint64(share.IntPart())
	default:
		return 0
	}
}

// ClaimRefund pays a backer back after an unsuccessful ending. refunded is the
// existing refund of the account, if any.
func (c *Campaign) ClaimRefund(rec *BackerRecord, refunded *Refund, now time.Time) (*Refund, error) {
	if c.State.Phase != PhaseEnded {
		return nil, wrongPhase("claim refund", c.State.Phase)
	}
	if !c.State.EndReason.Refundable() {
		return nil, ErrNotRefundable.Detail("campaign %s", c.State.EndReason)
	}
	if rec == nil {
		return nil, ErrNotEnrolled
	}
	if refunded != nil {
		return nil, ErrAlreadyRefunded
	}
	amount := c.RefundShare(rec.AmountBacked)
	if amount == 0 {
		return nil, ErrNotRefundable
	}
	refund := &Refund{
		CampaignID: c.ID,
		Account:    rec.Account,
		Amount:     amount,
		CreatedAt:  now.UTC(),
	}
	c.record(now, EventRefundClaimed, rec.Account, amountPayload{Amount: amount})
	return refund, nil
}

func (c *Campaign) authorizeTransition(actor Account, p Policy) error {
	if p.CreatorOnlyTransitions && actor != c.Config.Creator {
		return ErrUnauthorizedTransition
	}
	return nil
}

func (c *Campaign) end(reason EndReason) {
	c.State.Phase = PhaseEnded
	c.State.EndReason = reason
}
