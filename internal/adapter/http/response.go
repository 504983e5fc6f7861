package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

type releaseResponse struct {
	Milestone uint8  `json:"milestone"`
	Amount    uint64 `json:"amount"`
	Receiver  string `json:"receiver"`
	CreatedAt int64  `json:"created_at"`
}

type campaignResponse struct {
	ID                string            `json:"id"`
	Escrow            string            `json:"escrow"`
	Creator           string            `json:"creator"`
	Goal              uint64            `json:"campaign_goal"`
	FundsReceiver     string            `json:"funds_receiver"`
	FundStartDate     int64             `json:"fund_start_date"`
	FundEndDate       int64             `json:"fund_end_date"`
	TotalMilestones   uint8             `json:"total_milestones"`
	Allocations       []uint64          `json:"milestone_allocations"`
	RewardMetadata    string            `json:"reward_metadata"`
	ApprovalAuthority string            `json:"milestone_approval_authority"`
	Phase             string            `json:"phase"`
	CollectedFunds    uint64            `json:"collected_funds"`
	TotalBackers      uint64            `json:"total_backers"`
	ReachedMilestone  *uint8            `json:"reached_milestone"`
	ReleasedFunds     uint64            `json:"released_funds"`
	HeldFunds         uint64            `json:"held_funds"`
	EndReason         string            `json:"end_reason,omitempty"`
	EventSeq          uint64            `json:"event_seq"`
	Releases          []releaseResponse `json:"releases,omitempty"`
}

func newCampaignResponse(c *domain.Campaign, releases []domain.Release) campaignResponse {
	resp := campaignResponse{
		ID:                c.ID.String(),
		Escrow:            c.Escrow.String(),
		Creator:           c.Config.Creator.String(),
		Goal:              c.Config.Goal,
		FundsReceiver:     c.Config.FundsReceiver.String(),
		FundStartDate:     c.Config.FundStart.Unix(),
		FundEndDate:       c.Config.FundEnd.Unix(),
		TotalMilestones:   c.Config.TotalMilestones,
		Allocations:       c.Config.Allocations,
		RewardMetadata:    c.Config.RewardMetadata,
		ApprovalAuthority: c.Config.ApprovalAuthority.String(),
		Phase:             c.State.Phase.String(),
		CollectedFunds:    c.State.CollectedFunds,
		TotalBackers:      c.State.TotalBackers,
		ReleasedFunds:     c.State.ReleasedFunds,
		HeldFunds:         c.State.HeldFunds(),
		EventSeq:          c.EventSeq,
	}
	if c.State.ReachedMilestone.Valid {
		idx := c.State.ReachedMilestone.Index
		resp.ReachedMilestone = &idx
	}
	if c.State.Phase == domain.PhaseEnded {
		resp.EndReason = c.State.EndReason.String()
	}
	for _, rel := range releases {
		resp.Releases = append(resp.Releases, releaseResponse{
			Milestone: rel.Milestone,
			Amount:    rel.Amount,
			Receiver:  rel.Receiver.String(),
			CreatedAt: rel.CreatedAt.Unix(),
		})
	}
	return resp
}

type backerResponse struct {
	Account      string `json:"account"`
	AmountBacked uint64 `json:"amount_backed"`
	EnrolledAt   int64  `json:"enrolled_at"`
	FundedAt     *int64 `json:"funded_at,omitempty"`
}

func newBackerResponse(rec *domain.BackerRecord) backerResponse {
	resp := backerResponse{
		Account:      rec.Account.String(),
		AmountBacked: rec.AmountBacked,
		EnrolledAt:   rec.EnrolledAt.Unix(),
	}
	if rec.FundedAt != nil {
		ts := rec.FundedAt.Unix()
		resp.FundedAt = &ts
	}
	return resp
}

type decisionResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Release  *releaseResponse `json:"release,omitempty"`
}

func newDecisionResponse(res *port.DecisionResult) decisionResponse {
	resp := decisionResponse{Campaign: newCampaignResponse(res.Campaign, nil)}
	if res.Release != nil {
		resp.Release = &releaseResponse{
			Milestone: res.Release.Milestone,
			Amount:    res.Release.Amount,
			Receiver:  res.Release.Receiver.String(),
			CreatedAt: res.Release.CreatedAt.Unix(),
		}
	}
	return resp
}

type eligibilityResponse struct {
	Eligible       bool   `json:"eligible"`
	RewardMetadata string `json:"reward_metadata,omitempty"`
}

type refundResponse struct {
	Account   string `json:"account"`
	Amount    uint64 `json:"amount"`
	CreatedAt int64  `json:"created_at"`
}

type rewardClaimResponse struct {
	Account        string `json:"account"`
	RewardMetadata string `json:"reward_metadata"`
	CreatedAt      int64  `json:"created_at"`
}

type eventResponse struct {
	ID        string          `json:"id"`
	Seq       uint64          `json:"seq"`
	Type      string          `json:"type"`
	Actor     string          `json:"actor"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func newEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:        e.ID.String(),
			Seq:       e.Seq,
			Type:      string(e.Type),
			Actor:     e.Actor.String(),
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}
