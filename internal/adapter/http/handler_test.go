package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"milestone-escrow/internal/adapter/memory"
	"milestone-escrow/internal/adapter/usecase"
	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port/mocks"
)

var clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store := memory.NewStore()
	svc := usecase.NewCampaignUseCase(store, store, domain.DefaultPolicy(), zaptest.NewLogger(t),
		usecase.WithClock(func() time.Time { return clock }))
	return NewHandler(svc, zaptest.NewLogger(t))
}

func do(t *testing.T, h *Handler, method, path, account string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if account != "" {
		req.Header.Set(AccountHeader, account)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), rec.Body.String())
	return out
}

func createBody(allocations ...uint64) createCampaignRequest {
	return createCampaignRequest{
		Goal:              1000,
		FundsReceiver:     "receiver",
		FundStartDate:     clock.Add(-time.Hour).Unix(),
		FundEndDate:       clock.Add(time.Hour).Unix(),
		RewardMetadata:    "ipfs://reward",
		TotalMilestones:   uint8(len(allocations)),
		Allocations:       allocations,
		ApprovalAuthority: "authority",
	}
}

func createCampaign(t *testing.T, h *Handler) campaignResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", "creator", createBody(400, 600))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[campaignResponse](t, rec)
}

func TestHandler_CampaignLifecycle(t *testing.T) {
	h := newTestHandler(t)
	c := createCampaign(t, h)
	assert.Equal(t, "funding", c.Phase)
	assert.Equal(t, "creator", c.Creator)
	assert.Equal(t, clock.Add(time.Hour).Unix(), c.FundEndDate)
	assert.Nil(t, c.ReachedMilestone)
	base := "/api/v1/campaigns/" + c.ID

	for _, account := range []string{"alice", "bob"} {
		rec := do(t, h, http.MethodPost, base+"/enroll", account, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodPost, base+"/fund", "alice", fundRequest{Amount: 500})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	alice := decode[backerResponse](t, rec)
	assert.Equal(t, uint64(500), alice.AmountBacked)
	require.NotNil(t, alice.FundedAt)
	assert.Equal(t, clock.Unix(), *alice.FundedAt)

	rec = do(t, h, http.MethodPost, base+"/fund", "bob", fundRequest{Amount: 600, Receiver: c.Escrow})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, base+"/close-funding", "anyone", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "waiting_for_next_milestone", decode[campaignResponse](t, rec).Phase)

	rec = do(t, h, http.MethodPost, base+"/request-validation", "anyone", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "milestone_validation", decode[campaignResponse](t, rec).Phase)

	rec = do(t, h, http.MethodPost, base+"/decision", "authority", `{"approved":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decision := decode[decisionResponse](t, rec)
	require.NotNil(t, decision.Release)
	assert.Equal(t, uint64(400), decision.Release.Amount)
	assert.Equal(t, "receiver", decision.Release.Receiver)
	require.NotNil(t, decision.Campaign.ReachedMilestone)
	assert.Equal(t, uint8(0), *decision.Campaign.ReachedMilestone)

	rec = do(t, h, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[campaignResponse](t, rec)
	assert.Equal(t, uint64(1100), got.CollectedFunds)
	assert.Equal(t, uint64(2), got.TotalBackers)
	assert.Equal(t, uint64(400), got.ReleasedFunds)
	assert.Equal(t, uint64(700), got.HeldFunds)
	assert.Empty(t, got.EndReason)
	require.Len(t, got.Releases, 1)

	rec = do(t, h, http.MethodGet, base+"/backers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]backerResponse](t, rec), 2)

	rec = do(t, h, http.MethodGet, base+"/backers/bob", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(600), decode[backerResponse](t, rec).AmountBacked)

	rec = do(t, h, http.MethodGet, base+"/backers/alice/reward", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, eligibilityResponse{Eligible: true, RewardMetadata: "ipfs://reward"}, decode[eligibilityResponse](t, rec))

	rec = do(t, h, http.MethodPost, base+"/reward", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ipfs://reward", decode[rewardClaimResponse](t, rec).RewardMetadata)

	rec = do(t, h, http.MethodPost, base+"/reward", "alice", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.CodeRewardAlreadyClaimed), decode[errorResponse](t, rec).Code)

	rec = do(t, h, http.MethodPost, base+"/refund", "bob", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/events?after=1&limit=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[[]eventResponse](t, rec)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(2), events[0].Seq)
	assert.Equal(t, string(domain.EventBackerEnrolled), events[0].Type)
	assert.Equal(t, "alice", events[0].Actor)
}

func TestHandler_CloseFundingBeforeGoal(t *testing.T) {
	h := newTestHandler(t)
	c := createCampaign(t, h)
	base := "/api/v1/campaigns/" + c.ID

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, base+"/enroll", "alice", nil).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, base+"/fund", "alice", fundRequest{Amount: 300}).Code)

	// the goal is not met, so funding cannot close before the window ends
	rec := do(t, h, http.MethodPost, base+"/close-funding", "anyone", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.CodeFundingWindowOpen), decode[errorResponse](t, rec).Code)
}

func TestHandler_Errors(t *testing.T) {
	h := newTestHandler(t)
	c := createCampaign(t, h)
	base := "/api/v1/campaigns/" + c.ID
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, base+"/enroll", "alice", nil).Code)

	tests := []struct {
		name    string
		method  string
		path    string
		account string
		body    any
		status  int
		code    string
	}{
		{"missing caller", http.MethodPost, base + "/enroll", "", nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"bad campaign id", http.MethodGet, "/api/v1/campaigns/nope", "", nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown campaign", http.MethodGet, "/api/v1/campaigns/" + uuid.NewString(), "", nil, http.StatusNotFound, string(domain.CodeCampaignNotFound)},
		{"invalid config", http.MethodPost, "/api/v1/campaigns", "creator", createBody(), http.StatusBadRequest, string(domain.CodeInvalidConfig)},
		{"unknown field", http.MethodPost, base + "/fund", "alice", `{"amount":10,"tip":1}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"below minimum", http.MethodPost, base + "/fund", "alice", fundRequest{Amount: 5}, http.StatusUnprocessableEntity, string(domain.CodeBelowMinimum)},
		{"wrong destination", http.MethodPost, base + "/fund", "alice", fundRequest{Amount: 50, Receiver: "elsewhere"}, http.StatusConflict, string(domain.CodeWrongDestination)},
		{"not enrolled", http.MethodPost, base + "/fund", "mallory", fundRequest{Amount: 50}, http.StatusNotFound, string(domain.CodeNotEnrolled)},
		{"already enrolled", http.MethodPost, base + "/enroll", "alice", nil, http.StatusConflict, string(domain.CodeAlreadyEnrolled)},
		{"decision missing verdict", http.MethodPost, base + "/decision", "authority", `{}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"decision in funding", http.MethodPost, base + "/decision", "authority", `{"approved":true}`, http.StatusConflict, string(domain.CodeWrongPhase)},
		{"bad limit", http.MethodGet, base + "/events?limit=x", "", nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown backer", http.MethodGet, base + "/backers/mallory", "", nil, http.StatusNotFound, string(domain.CodeNotEnrolled)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.account, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decode[errorResponse](t, rec).Code)
		})
	}
}

func TestHandler_InternalErrorHidesCause(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().GetCampaign(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
	h := NewHandler(svc, zaptest.NewLogger(t))

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errorResponse{Code: string(domain.CodeUnknown), Message: "internal error"}, decode[errorResponse](t, rec))
}

func TestHandler_ErrorMessageOmitsStorageCause(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	cause := errors.New(`duplicate key value violates unique constraint "backers_pkey"`)
	svc.EXPECT().Enroll(mock.Anything, mock.Anything, domain.Account("alice")).
		Return(nil, fmt.Errorf("insert backer: %w", domain.ErrAlreadyEnrolled.Wrap(cause)))
	h := NewHandler(svc, zaptest.NewLogger(t))

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/"+uuid.NewString()+"/enroll", "alice", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, errorResponse{Code: string(domain.CodeAlreadyEnrolled), Message: "account already enrolled"},
		decode[errorResponse](t, rec))
}

func TestHandler_EnrollAfterEnd(t *testing.T) {
	store := memory.NewStore()
	now := clock
	svc := usecase.NewCampaignUseCase(store, store, domain.DefaultPolicy(), zaptest.NewLogger(t),
		usecase.WithClock(func() time.Time { return now }))
	h := NewHandler(svc, zaptest.NewLogger(t))
	c := createCampaign(t, h)
	base := "/api/v1/campaigns/" + c.ID

	now = clock.Add(2 * time.Hour)
	rec := do(t, h, http.MethodPost, base+"/close-funding", "anyone", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "ended", decode[campaignResponse](t, rec).Phase)

	rec = do(t, h, http.MethodPost, base+"/enroll", "latecomer", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.CodeWrongPhase), decode[errorResponse](t, rec).Code)
}

func TestHandler_OperationalRoutes(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "escrow_events_total 1")
	})
	h := NewHandler(mocks.NewMockCampaignUseCase(t), zaptest.NewLogger(t), WithMetrics(metrics))

	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "escrow_events_total")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.CodeInvalidAccount))
	assert.Equal(t, http.StatusForbidden, statusFor(domain.CodeUnauthorizedDecision))
	assert.Equal(t, http.StatusForbidden, statusFor(domain.CodeUnauthorizedTransition))
	assert.Equal(t, http.StatusConflict, statusFor(domain.CodeMilestoneScheduleExhausted))
	assert.Equal(t, http.StatusConflict, statusFor(domain.CodeLedgerInconsistent))
	assert.Equal(t, http.StatusInternalServerError, statusFor(domain.CodeUnknown))
}
