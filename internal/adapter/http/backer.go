package httpadapter

import (
	"net/http"

	"milestone-escrow/internal/core/domain"
)

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.svc.Enroll(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newBackerResponse(rec))
}

// handleFund books a contribution. An omitted receiver means the payment is
// addressed to the campaign escrow.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req fundRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	pay := domain.Payment{Amount: req.Amount, Receiver: domain.Account(req.Receiver)}
	if pay.Receiver.IsZero() {
		pay.Receiver = domain.EscrowAccount(id)
	}
	rec, err := h.svc.Fund(r.Context(), id, account, pay)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBackerResponse(rec))
}

func (h *Handler) handleGetBacker(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.svc.GetBacker(r.Context(), id, pathAccount(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBackerResponse(rec))
}

func (h *Handler) handleListBackers(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	backers, err := h.svc.ListBackers(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]backerResponse, 0, len(backers))
	for i := range backers {
		resp = append(resp, newBackerResponse(&backers[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRewardEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	el, err := h.svc.RewardEligibility(r.Context(), id, pathAccount(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eligibilityResponse{Eligible: el.Eligible, RewardMetadata: el.RewardMetadata})
}

func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	refund, err := h.svc.ClaimRefund(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, refundResponse{
		Account:   refund.Account.String(),
		Amount:    refund.Amount,
		CreatedAt: refund.CreatedAt.Unix(),
	})
}

func (h *Handler) handleClaimReward(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	account, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	claim, err := h.svc.ClaimReward(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rewardClaimResponse{
		Account:        claim.Account.String(),
		RewardMetadata: claim.RewardMetadata,
		CreatedAt:      claim.CreatedAt.Unix(),
	})
}
