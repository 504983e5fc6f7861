package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks malformed input that never reached the domain.
var errBadRequest = errors.New("bad request")

type createCampaignRequest struct {
	Goal              uint64   `json:"campaign_goal"`
	FundsReceiver     string   `json:"funds_receiver"`
	FundStartDate     int64    `json:"fund_start_date"`
	FundEndDate       int64    `json:"fund_end_date"`
	RewardMetadata    string   `json:"reward_metadata"`
	TotalMilestones   uint8    `json:"total_milestones"`
	Allocations       []uint64 `json:"milestone_allocations"`
	ApprovalAuthority string   `json:"milestone_approval_authority"`
}

func (r createCampaignRequest) toPort(creator domain.Account) port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Creator:           creator,
		Goal:              r.Goal,
		FundsReceiver:     domain.Account(r.FundsReceiver),
		FundStart:         time.Unix(r.FundStartDate, 0).UTC(),
		FundEnd:           time.Unix(r.FundEndDate, 0).UTC(),
		RewardMetadata:    r.RewardMetadata,
		TotalMilestones:   r.TotalMilestones,
		Allocations:       r.Allocations,
		ApprovalAuthority: domain.Account(r.ApprovalAuthority),
	}
}

type fundRequest struct {
	Amount   uint64 `json:"amount"`
	Receiver string `json:"receiver"`
}

type decisionRequest struct {
	Approved *bool `json:"approved"`
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequest("invalid JSON: %v", err)
	}
	return nil
}

func campaignID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid campaign id")
	}
	return id, nil
}

func caller(r *http.Request) (domain.Account, error) {
	account := domain.Account(strings.TrimSpace(r.Header.Get(AccountHeader)))
	if account.IsZero() {
		return "", badRequest("missing %s header", AccountHeader)
	}
	return account, nil
}

func pathAccount(r *http.Request) domain.Account {
	return domain.Account(chi.URLParam(r, "account"))
}

func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest("invalid %s", key)
	}
	return v, nil
}
