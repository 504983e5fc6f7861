package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creator   Account = "creator"
	receiver  Account = "receiver"
	authority Account = "authority"
)

var (
	fundStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fundEnd   = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	midWindow = fundStart.Add(24 * time.Hour)
	afterEnd  = fundEnd.Add(time.Hour)
)

func newConfig(goal uint64, allocations ...uint64) CampaignConfig {
	return CampaignConfig{
		Creator:           creator,
		Goal:              goal,
		FundsReceiver:     receiver,
		FundStart:         fundStart,
		FundEnd:           fundEnd,
		TotalMilestones:   uint8(len(allocations)),
		Allocations:       allocations,
		RewardMetadata:    "ipfs://reward",
		ApprovalAuthority: authority,
	}
}

func newTestCampaign(t *testing.T, goal uint64, allocations ...uint64) *Campaign {
	t.Helper()
	c, err := NewCampaign(uuid.New(), newConfig(goal, allocations...), DefaultPolicy(), fundStart)
	require.NoError(t, err)
	c.TakeEvents()
	return c
}

func enrollAndFund(t *testing.T, c *Campaign, account Account, amount uint64) *BackerRecord {
	t.Helper()
	rec, err := c.Enroll(account, false, midWindow)
	require.NoError(t, err)
	require.NoError(t, c.Fund(rec, Payment{Amount: amount, Receiver: c.Escrow}, DefaultPolicy(), midWindow))
	return rec
}

func TestNewCampaign(t *testing.T) {
	id := uuid.New()
	c, err := NewCampaign(id, newConfig(1000, 400, 600), DefaultPolicy(), fundStart)
	require.NoError(t, err)

	assert.Equal(t, EscrowAccount(id), c.Escrow)
	assert.Equal(t, CampaignState{Phase: PhaseFunding}, c.State)
	assert.False(t, c.State.ReachedMilestone.Valid)

	events := c.TakeEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventCampaignCreated, events[0].Type)
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Empty(t, c.TakeEvents())
}

func TestNewCampaign_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CampaignConfig)
	}{
		{name: "zero milestones", mutate: func(c *CampaignConfig) { c.TotalMilestones = 0; c.Allocations = nil }},
		{name: "eleven milestones", mutate: func(c *CampaignConfig) {
			c.TotalMilestones = 11
			c.Allocations = make([]uint64, 11)
		}},
		{name: "start equals end", mutate: func(c *CampaignConfig) { c.FundEnd = c.FundStart }},
		{name: "start after end", mutate: func(c *CampaignConfig) { c.FundStart = c.FundEnd.Add(time.Second) }},
		{name: "allocation count mismatch", mutate: func(c *CampaignConfig) { c.Allocations = []uint64{400} }},
		{name: "allocations above goal", mutate: func(c *CampaignConfig) { c.Allocations = []uint64{400, 601} }},
		{name: "allocation overflow", mutate: func(c *CampaignConfig) { c.Allocations = []uint64{MaxAmount, 1} }},
		{name: "goal too large", mutate: func(c *CampaignConfig) { c.Goal = MaxAmount + 1 }},
		{name: "missing creator", mutate: func(c *CampaignConfig) { c.Creator = "" }},
		{name: "missing receiver", mutate: func(c *CampaignConfig) { c.FundsReceiver = " " }},
		{name: "missing authority", mutate: func(c *CampaignConfig) { c.ApprovalAuthority = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(1000, 400, 600)
			tt.mutate(&cfg)
			c, err := NewCampaign(uuid.New(), cfg, DefaultPolicy(), fundStart)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewCampaign_AllocationSumPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.EnforceAllocationSum = false

	_, err := NewCampaign(uuid.New(), newConfig(100, 400, 600), p, fundStart)
	assert.NoError(t, err)
}

func TestNewCampaign_MilestoneBounds(t *testing.T) {
	for _, n := range []int{1, MaxMilestones} {
		allocations := make([]uint64, n)
		_, err := NewCampaign(uuid.New(), newConfig(1000, allocations...), DefaultPolicy(), fundStart)
		assert.NoError(t, err, "milestones %d", n)
	}
}

func TestEnroll(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)

	rec, err := c.Enroll("alice", false, midWindow)
	require.NoError(t, err)
	assert.Equal(t, Account("alice"), rec.Account)
	assert.Equal(t, uint64(0), rec.AmountBacked)
	assert.False(t, rec.Funded())

	_, err = c.Enroll("alice", true, midWindow)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	_, err = c.Enroll("", false, midWindow)
	assert.ErrorIs(t, err, ErrInvalidAccount)
	_, err = c.Enroll("  ", false, midWindow)
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestEnroll_ClosedOnceEnded(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	enrollAndFund(t, c, "alice", 100)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	require.Equal(t, PhaseEnded, c.State.Phase)
	c.TakeEvents()
	seq := c.EventSeq

	rec, err := c.Enroll("latecomer", false, afterEnd)
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Nil(t, rec)
	assert.Equal(t, seq, c.EventSeq)
	assert.Empty(t, c.TakeEvents())
}

func TestEnroll_OpenWhileMilestonesRun(t *testing.T) {
	c := newTestCampaign(t, 100, 50, 50)
	enrollAndFund(t, c, "alice", 100)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	require.Equal(t, PhaseWaitingForNextMilestone, c.State.Phase)

	rec, err := c.Enroll("bob", false, afterEnd)
	require.NoError(t, err)
	assert.False(t, rec.Funded())
}

func TestFund(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	rec, err := c.Enroll("alice", false, midWindow)
	require.NoError(t, err)
	c.TakeEvents()

	err = c.Fund(rec, Payment{Amount: 500, Receiver: c.Escrow}, DefaultPolicy(), midWindow)
	require.NoError(t, err)

	assert.Equal(t, uint64(500), rec.AmountBacked)
	require.NotNil(t, rec.FundedAt)
	assert.Equal(t, midWindow, *rec.FundedAt)
	assert.Equal(t, uint64(500), c.State.CollectedFunds)
	assert.Equal(t, uint64(1), c.State.TotalBackers)
	assert.Equal(t, PhaseFunding, c.State.Phase)

	events := c.TakeEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventBackerFunded, events[0].Type)
	assert.JSONEq(t, `{"amount":500,"collected_funds":500,"total_backers":1}`, string(events[0].Payload))
}

func TestFund_Guards(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *Campaign) *BackerRecord
		payment func(c *Campaign) Payment
		now     time.Time
		wantErr error
	}{
		{
			name:    "not enrolled",
			setup:   func(c *Campaign) *BackerRecord { return nil },
			payment: func(c *Campaign) Payment { return Payment{Amount: 50, Receiver: c.Escrow} },
			now:     midWindow,
			wantErr: ErrNotEnrolled,
		},
		{
			name: "wrong phase wins over amount",
			setup: func(c *Campaign) *BackerRecord {
				c.State.Phase = PhaseWaitingForNextMilestone
				return &BackerRecord{Account: "bob"}
			},
			payment: func(c *Campaign) Payment { return Payment{Amount: 1, Receiver: "elsewhere"} },
			now:     midWindow,
			wantErr: ErrWrongPhase,
		},
		{
			name:    "before window",
			setup:   func(c *Campaign) *BackerRecord { return &BackerRecord{Account: "bob"} },
			payment: func(c *Campaign) Payment { return Payment{Amount: 50, Receiver: c.Escrow} },
			now:     fundStart.Add(-time.Second),
			wantErr: ErrOutsideFundingWindow,
		},
		{
			name:    "after window",
			setup:   func(c *Campaign) *BackerRecord { return &BackerRecord{Account: "bob"} },
			payment: func(c *Campaign) Payment { return Payment{Amount: 50, Receiver: c.Escrow} },
			now:     afterEnd,
			wantErr: ErrOutsideFundingWindow,
		},
		{
			name:    "below minimum wins over destination",
			setup:   func(c *Campaign) *BackerRecord { return &BackerRecord{Account: "bob"} },
			payment: func(c *Campaign) Payment { return Payment{Amount: 9, Receiver: "elsewhere"} },
			now:     midWindow,
			wantErr: ErrBelowMinimum,
		},
		{
			name:    "wrong destination wins over already funded",
			setup:   func(c *Campaign) *BackerRecord { return &BackerRecord{Account: "bob", AmountBacked: 20} },
			payment: func(c *Campaign) Payment { return Payment{Amount: 50, Receiver: receiver} },
			now:     midWindow,
			wantErr: ErrWrongDestination,
		},
		{
			name:    "already funded",
			setup:   func(c *Campaign) *BackerRecord { return &BackerRecord{Account: "bob", AmountBacked: 20} },
			payment: func(c *Campaign) Payment { return Payment{Amount: 50, Receiver: c.Escrow} },
			now:     midWindow,
			wantErr: ErrAlreadyFunded,
		},
		{
			name: "overflow",
			setup: func(c *Campaign) *BackerRecord {
				c.State.CollectedFunds = MaxAmount - 5
				return &BackerRecord{Account: "bob"}
			},
			payment: func(c *Campaign) Payment { return Payment{Amount: 10, Receiver: c.Escrow} },
			now:     midWindow,
			wantErr: ErrAmountOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCampaign(t, 1000, 400, 600)
			rec := tt.setup(c)
			before := c.State
			var beforeRec BackerRecord
			if rec != nil {
				beforeRec = *rec
			}

			err := c.Fund(rec, tt.payment(c), DefaultPolicy(), tt.now)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, before, c.State)
			if rec != nil {
				assert.Equal(t, beforeRec, *rec)
			}
			assert.Empty(t, c.TakeEvents())
		})
	}
}

func TestFund_MinimumBoundary(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)

	rec, err := c.Enroll("alice", false, midWindow)
	require.NoError(t, err)
	err = c.Fund(rec, Payment{Amount: 9, Receiver: c.Escrow}, DefaultPolicy(), midWindow)
	assert.ErrorIs(t, err, ErrBelowMinimum)

	err = c.Fund(rec, Payment{Amount: 10, Receiver: c.Escrow}, DefaultPolicy(), midWindow)
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), c.State.CollectedFunds)
}

func TestFund_SecondCallAlwaysFails(t *testing.T) {
	for _, second := range []uint64{10, 500, 10_000} {
		t.Run(fmt.Sprint(second), func(t *testing.T) {
			c := newTestCampaign(t, 1000, 400, 600)
			rec := enrollAndFund(t, c, "alice", 100)

			err := c.Fund(rec, Payment{Amount: second, Receiver: c.Escrow}, DefaultPolicy(), midWindow)
			assert.ErrorIs(t, err, ErrAlreadyFunded)
			assert.Equal(t, uint64(100), rec.AmountBacked)
			assert.Equal(t, uint64(100), c.State.CollectedFunds)
			assert.Equal(t, uint64(1), c.State.TotalBackers)
		})
	}
}

func TestFund_WindowPolicyOff(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	p := DefaultPolicy()
	p.EnforceFundingWindow = false

	rec := &BackerRecord{Account: "late"}
	assert.NoError(t, c.Fund(rec, Payment{Amount: 10, Receiver: c.Escrow}, p, afterEnd))
}

func TestFund_InvariantHoldsForRandomSequences(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := newTestCampaign(t, 1_000_000, 500_000, 500_000)
	ledger := map[Account]*BackerRecord{}

	for i := 0; i < 500; i++ {
		account := Account(fmt.Sprintf("acct-%d", r.Intn(60)))
		rec, ok := ledger[account]
		if !ok && r.Intn(4) > 0 {
			var err error
			rec, err = c.Enroll(account, false, midWindow)
			require.NoError(t, err)
			ledger[account] = rec
		}
		_ = c.Fund(rec, Payment{Amount: uint64(r.Intn(40)), Receiver: c.Escrow}, DefaultPolicy(), midWindow)

		var totals LedgerTotals
		for _, b := range ledger {
			totals.Sum += b.AmountBacked
			if b.AmountBacked > 0 {
				totals.Count++
			}
		}
		require.NoError(t, c.CheckLedger(totals))
	}
}

func TestCheckLedger(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	enrollAndFund(t, c, "alice", 500)

	assert.NoError(t, c.CheckLedger(LedgerTotals{Sum: 500, Count: 1}))
	assert.ErrorIs(t, c.CheckLedger(LedgerTotals{Sum: 400, Count: 1}), ErrLedgerInconsistent)
	assert.ErrorIs(t, c.CheckLedger(LedgerTotals{Sum: 500, Count: 2}), ErrLedgerInconsistent)
}

func TestCloseFunding(t *testing.T) {
	t.Run("goal reached after window", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		enrollAndFund(t, c, "alice", 1000)

		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
		assert.Equal(t, PhaseWaitingForNextMilestone, c.State.Phase)
		assert.Equal(t, EndReasonNone, c.State.EndReason)
	})

	t.Run("goal missed after window", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		enrollAndFund(t, c, "alice", 999)

		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
		assert.Equal(t, PhaseEnded, c.State.Phase)
		assert.Equal(t, EndReasonGoalNotReached, c.State.EndReason)
	})

	t.Run("exactly at window end", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), fundEnd))
		assert.Equal(t, PhaseEnded, c.State.Phase)
	})

	t.Run("window open and goal missed", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		enrollAndFund(t, c, "alice", 999)

		err := c.CloseFunding("anyone", DefaultPolicy(), midWindow)
		assert.ErrorIs(t, err, ErrFundingWindowOpen)
		assert.Equal(t, PhaseFunding, c.State.Phase)
	})

	t.Run("early close once goal met", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		enrollAndFund(t, c, "alice", 1000)

		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), midWindow))
		assert.Equal(t, PhaseWaitingForNextMilestone, c.State.Phase)
	})

	t.Run("early close disabled", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		enrollAndFund(t, c, "alice", 1000)
		p := DefaultPolicy()
		p.AllowEarlyClose = false

		assert.ErrorIs(t, c.CloseFunding("anyone", p, midWindow), ErrFundingWindowOpen)
	})

	t.Run("creator only", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		p := DefaultPolicy()
		p.CreatorOnlyTransitions = true

		assert.ErrorIs(t, c.CloseFunding("mallory", p, afterEnd), ErrUnauthorizedTransition)
		assert.NoError(t, c.CloseFunding(creator, p, afterEnd))
	})

	t.Run("wrong phase", func(t *testing.T) {
		c := newTestCampaign(t, 1000, 400, 600)
		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))

		assert.ErrorIs(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd), ErrWrongPhase)
	})
}

func TestRequestValidation(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	assert.ErrorIs(t, c.RequestValidation("anyone", DefaultPolicy(), midWindow), ErrWrongPhase)

	enrollAndFund(t, c, "alice", 1000)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	c.TakeEvents()

	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
	assert.Equal(t, PhaseMilestoneValidation, c.State.Phase)

	events := c.TakeEvents()
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"milestone":0,"phase":"milestone_validation"}`, string(events[0].Payload))

	assert.ErrorIs(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd), ErrWrongPhase)
}

func TestRequestValidation_ScheduleExhausted(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	c.State.Phase = PhaseWaitingForNextMilestone
	c.State.ReachedMilestone = MilestoneAt(1)

	err := c.RequestValidation("anyone", DefaultPolicy(), afterEnd)
	assert.ErrorIs(t, err, ErrMilestoneScheduleExhausted)
	assert.Equal(t, PhaseWaitingForNextMilestone, c.State.Phase)
}

func TestRecordDecision_Unauthorized(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	enrollAndFund(t, c, "alice", 1000)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))

	for _, actor := range []Account{creator, receiver, "alice", ""} {
		release, err := c.RecordDecision(actor, true, afterEnd)
		assert.Nil(t, release)
		assert.ErrorIs(t, err, ErrUnauthorizedDecision)
	}
	assert.Equal(t, PhaseMilestoneValidation, c.State.Phase)
	assert.False(t, c.State.ReachedMilestone.Valid)
}

func TestRecordDecision_WrongPhase(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	_, err := c.RecordDecision(authority, true, midWindow)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestLifecycle_AllMilestonesApproved(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	alice := enrollAndFund(t, c, "alice", 500)
	bob := enrollAndFund(t, c, "bob", 600)
	assert.Equal(t, uint64(1100), c.State.CollectedFunds)
	assert.Equal(t, uint64(2), c.State.TotalBackers)

	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	assert.Equal(t, PhaseWaitingForNextMilestone, c.State.Phase)

	var reached []NullMilestone
	for i, want := range []uint64{400, 600} {
		require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
		release, err := c.RecordDecision(authority, true, afterEnd)
		require.NoError(t, err)
		require.NotNil(t, release)
		assert.Equal(t, uint8(i), release.Milestone)
		assert.Equal(t, want, release.Amount)
		assert.Equal(t, receiver, release.Receiver)
		reached = append(reached, c.State.ReachedMilestone)
	}

	assert.Equal(t, []NullMilestone{MilestoneAt(0), MilestoneAt(1)}, reached)
	assert.Equal(t, PhaseEnded, c.State.Phase)
	assert.Equal(t, EndReasonCompleted, c.State.EndReason)
	assert.Equal(t, uint8(1), c.State.ReachedMilestone.Index)
	assert.Equal(t, uint64(1000), c.State.ReleasedFunds)
	assert.Equal(t, uint64(100), c.State.HeldFunds())

	for _, rec := range []*BackerRecord{alice, bob} {
		eligibility := c.RewardEligibility(rec, DefaultPolicy())
		assert.Equal(t, Eligibility{Eligible: true, RewardMetadata: "ipfs://reward"}, eligibility)
	}
	assert.False(t, c.RewardEligibility(&BackerRecord{Account: "carol"}, DefaultPolicy()).Eligible)
	assert.False(t, c.RewardEligibility(nil, DefaultPolicy()).Eligible)

	_, err := c.ClaimRefund(alice, nil, afterEnd)
	assert.ErrorIs(t, err, ErrNotRefundable)

	err = c.Fund(&BackerRecord{Account: "late"}, Payment{Amount: 100, Receiver: c.Escrow}, DefaultPolicy(), midWindow)
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.ErrorIs(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd), ErrWrongPhase)
}

func TestLifecycle_GoalNotReached(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	alice := enrollAndFund(t, c, "alice", 100)
	bob := enrollAndFund(t, c, "bob", 200)

	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	assert.Equal(t, PhaseEnded, c.State.Phase)
	assert.False(t, c.State.ReachedMilestone.Valid)

	for _, rec := range []*BackerRecord{alice, bob} {
		first := c.RewardEligibility(rec, DefaultPolicy())
		second := c.RewardEligibility(rec, DefaultPolicy())
		assert.False(t, first.Eligible)
		assert.Equal(t, first, second)
	}

	refund, err := c.ClaimRefund(alice, nil, afterEnd)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), refund.Amount)

	_, err = c.ClaimRefund(alice, refund, afterEnd)
	assert.ErrorIs(t, err, ErrAlreadyRefunded)

	_, err = c.ClaimRefund(nil, nil, afterEnd)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = c.ClaimRefund(&BackerRecord{Account: "idle"}, nil, afterEnd)
	assert.ErrorIs(t, err, ErrNotRefundable)

	assert.Equal(t, uint64(300), c.State.CollectedFunds)
	assert.Equal(t, uint64(100), alice.AmountBacked)
}

func TestLifecycle_MilestoneRejected(t *testing.T) {
	c := newTestCampaign(t, 1000, 400, 600)
	alice := enrollAndFund(t, c, "alice", 300)
	bob := enrollAndFund(t, c, "bob", 700)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))

	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
	_, err := c.RecordDecision(authority, true, afterEnd)
	require.NoError(t, err)

	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
	release, err := c.RecordDecision(authority, false, afterEnd)
	require.NoError(t, err)
	assert.Nil(t, release)

	assert.Equal(t, PhaseEnded, c.State.Phase)
	assert.Equal(t, EndReasonMilestoneRejected, c.State.EndReason)
	assert.Equal(t, MilestoneAt(0), c.State.ReachedMilestone)
	assert.Equal(t, uint64(600), c.State.HeldFunds())

	refund, err := c.ClaimRefund(alice, nil, afterEnd)
	require.NoError(t, err)
	assert.Equal(t, uint64(180), refund.Amount)
	assert.Equal(t, uint64(420), c.RefundShare(bob.AmountBacked))

	assert.True(t, c.RewardEligibility(alice, DefaultPolicy()).Eligible)

	p := DefaultPolicy()
	p.RewardMilestoneThreshold = 2
	assert.False(t, c.RewardEligibility(alice, p).Eligible)
}

func TestRewardEligibility_ThresholdCappedAtMilestoneCount(t *testing.T) {
	c := newTestCampaign(t, 100, 100)
	alice := enrollAndFund(t, c, "alice", 100)
	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
	_, err := c.RecordDecision(authority, true, afterEnd)
	require.NoError(t, err)
	require.Equal(t, EndReasonCompleted, c.State.EndReason)

	p := DefaultPolicy()
	p.RewardMilestoneThreshold = 5
	assert.True(t, c.RewardEligibility(alice, p).Eligible)
	claim, err := c.ClaimReward(alice, nil, p, afterEnd)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://reward", claim.RewardMetadata)

	p.RewardMilestoneThreshold = 0
	assert.True(t, c.RewardEligibility(alice, p).Eligible)
}

func TestRefundShare_RoundsDown(t *testing.T) {
	c := newTestCampaign(t, 30, 10, 10, 10)
	c.State = CampaignState{
		Phase:          PhaseEnded,
		CollectedFunds: 3,
		ReleasedFunds:  1,
		EndReason:      EndReasonMilestoneRejected,
	}

	assert.Equal(t, uint64(0), c.RefundShare(1))
	assert.Equal(t, uint64(1), c.RefundShare(2))

	c.State.CollectedFunds = MaxAmount
	c.State.ReleasedFunds = 1
	assert.Equal(t, MaxAmount-1, c.RefundShare(MaxAmount))
}

func TestRecordDecision_ReleaseCappedByHeldFunds(t *testing.T) {
	p := DefaultPolicy()
	p.EnforceAllocationSum = false
	c, err := NewCampaign(uuid.New(), newConfig(100, 80, 80), p, fundStart)
	require.NoError(t, err)

	rec, err := c.Enroll("alice", false, midWindow)
	require.NoError(t, err)
	require.NoError(t, c.Fund(rec, Payment{Amount: 120, Receiver: c.Escrow}, p, midWindow))
	require.NoError(t, c.CloseFunding("anyone", p, afterEnd))

	var released []uint64
	for i := 0; i < 2; i++ {
		require.NoError(t, c.RequestValidation("anyone", p, afterEnd))
		release, err := c.RecordDecision(authority, true, afterEnd)
		require.NoError(t, err)
		released = append(released, release.Amount)
	}
	assert.Equal(t, []uint64{80, 40}, released)
	assert.Equal(t, uint64(0), c.State.HeldFunds())
}

func TestClaimReward(t *testing.T) {
	c := newTestCampaign(t, 100, 100)
	alice := enrollAndFund(t, c, "alice", 100)

	_, err := c.ClaimReward(alice, nil, DefaultPolicy(), midWindow)
	assert.ErrorIs(t, err, ErrNotRewardEligible)

	require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))
	require.NoError(t, c.RequestValidation("anyone", DefaultPolicy(), afterEnd))
	_, err = c.RecordDecision(authority, true, afterEnd)
	require.NoError(t, err)
	assert.Equal(t, PhaseEnded, c.State.Phase)

	claim, err := c.ClaimReward(alice, nil, DefaultPolicy(), afterEnd)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://reward", claim.RewardMetadata)

	_, err = c.ClaimReward(alice, claim, DefaultPolicy(), afterEnd)
	assert.ErrorIs(t, err, ErrRewardAlreadyClaimed)
}

func TestReachedMilestone_Monotonic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := r.Intn(MaxMilestones) + 1
		allocations := make([]uint64, n)
		for i := range allocations {
			allocations[i] = 10
		}
		c := newTestCampaign(t, uint64(10*n), allocations...)
		enrollAndFund(t, c, "alice", uint64(10*n))
		require.NoError(t, c.CloseFunding("anyone", DefaultPolicy(), afterEnd))

		last := -1
		for step := 0; step < 3*n; step++ {
			actor := authority
			if r.Intn(5) == 0 {
				actor = "mallory"
			}
			_ = c.RequestValidation("anyone", DefaultPolicy(), afterEnd)
			_, _ = c.RecordDecision(actor, r.Intn(8) > 0, afterEnd)

			current := c.State.ReachedMilestone.Count() - 1
			require.GreaterOrEqual(t, current, last)
			require.Less(t, current, n)
			last = current
		}
	}
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("fund: %w", ErrBelowMinimum.Detail("5 < 10"))
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.NotErrorIs(t, err, ErrAlreadyFunded)
	assert.Equal(t, CodeBelowMinimum, CodeOf(err))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))
	assert.Equal(t, "contribution below minimum: 5 < 10", ErrBelowMinimum.Detail("5 < 10").Error())

	cause := errors.New("duplicate key")
	wrapped := ErrAlreadyEnrolled.Wrap(cause)
	assert.ErrorIs(t, wrapped, ErrAlreadyEnrolled)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "account already enrolled", wrapped.Message)
	assert.Equal(t, "account already enrolled: duplicate key", wrapped.Error())
	assert.Nil(t, ErrAlreadyEnrolled.Cause)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "funding", PhaseFunding.String())
	assert.Equal(t, "waiting_for_next_milestone", PhaseWaitingForNextMilestone.String())
	assert.Equal(t, "milestone_validation", PhaseMilestoneValidation.String())
	assert.Equal(t, "ended", PhaseEnded.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
