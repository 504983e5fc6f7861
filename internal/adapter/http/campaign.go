package httpadapter

import (
	"math"
	"net/http"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	creator, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.toPort(creator))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(c, nil))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(view.Campaign, view.Releases))
}

func (h *Handler) handleCloseFunding(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CloseFunding(r.Context(), id, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c, nil))
}

func (h *Handler) handleRequestValidation(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.RequestValidation(r.Context(), id, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c, nil))
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	actor, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req decisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Approved == nil {
		h.writeError(w, r, badRequest("approved is required"))
		return
	}
	res, err := h.svc.RecordDecision(r.Context(), id, actor, *req.Approved)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newDecisionResponse(res))
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	after, err := queryUint(r, "after")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	// the use case clamps oversized pages
	events, err := h.svc.ListEvents(r.Context(), id, after, int(min(limit, math.MaxInt32)))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventResponses(events))
}
