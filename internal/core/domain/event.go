package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names an entry of the campaign journal.
type EventType string

const (
	EventCampaignCreated     EventType = "campaign.created"
	EventBackerEnrolled      EventType = "backer.enrolled"
	EventBackerFunded        EventType = "backer.funded"
	EventFundingClosed       EventType = "funding.closed"
	EventValidationRequested EventType = "milestone.validation_requested"
	EventMilestoneApproved   EventType = "milestone.approved"
	EventMilestoneRejected   EventType = "milestone.rejected"
	EventRefundClaimed       EventType = "refund.claimed"
	EventRewardClaimed       EventType = "reward.claimed"
)

// Event is one journal entry. Seq is dense and increasing per campaign.
type Event struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Seq        uint64
	Type       EventType
	Actor      Account
	Payload    json.RawMessage
	CreatedAt  time.Time
}

type campaignCreatedPayload struct {
	Goal            uint64   `json:"goal"`
	FundsReceiver   Account  `json:"funds_receiver"`
	FundStart       int64    `json:"fund_start_date"`
	FundEnd         int64    `json:"fund_end_date"`
	TotalMilestones uint8    `json:"total_milestones"`
	Allocations     []uint64 `json:"allocations"`
	Escrow          Account  `json:"escrow"`
}

type backerFundedPayload struct {
	Amount         uint64 `json:"amount"`
	CollectedFunds uint64 `json:"collected_funds"`
	TotalBackers   uint64 `json:"total_backers"`
}

type fundingClosedPayload struct {
	GoalReached    bool   `json:"goal_reached"`
	CollectedFunds uint64 `json:"collected_funds"`
	Phase          string `json:"phase"`
}

type milestonePayload struct {
	Milestone uint8   `json:"milestone"`
	Amount    uint64  `json:"amount,omitempty"`
	Receiver  Account `json:"receiver,omitempty"`
	Phase     string  `json:"phase"`
}

type amountPayload struct {
	Amount uint64 `json:"amount"`
}

type rewardPayload struct {
	RewardMetadata string `json:"reward_metadata"`
}

// record appends an event to the pending journal of c.
func (c *Campaign) record(now time.Time, typ EventType, actor Account, payload any) {
	var raw json.RawMessage
	if payload != nil {
		// payloads are plain structs of scalars
		raw, _ = json.Marshal(payload)
	}
	c.EventSeq++
	c.pending = append(c.pending, Event{
		ID:         uuid.New(),
		CampaignID: c.ID,
		Seq:        c.EventSeq,
		Type:       typ,
		Actor:      actor,
		Payload:    raw,
		CreatedAt:  now.UTC(),
	})
	c.UpdatedAt = now.UTC()
}

// TakeEvents returns the events recorded since the last call and clears them.
func (c *Campaign) TakeEvents() []Event {
	events := c.pending
	c.pending = nil
	return events
}
