package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"milestone-escrow/internal/core/port"
)

// AccountHeader carries the identity of the calling account. It stands in
// for the verified sender of the host transaction.
const AccountHeader = "X-Account"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CampaignUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *zap.Logger
	router chi.Router
}

// Option adds optional routes to the handler.
type Option func(r chi.Router)

// WithMetrics exposes h under /metrics.
func WithMetrics(h http.Handler) Option {
	return func(r chi.Router) { r.Method(http.MethodGet, "/metrics", h) }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *zap.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	for _, opt := range opts {
		opt(r)
	}

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCreateCampaign)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Post("/enroll", h.handleEnroll)
			r.Post("/fund", h.handleFund)
			r.Post("/close-funding", h.handleCloseFunding)
			r.Post("/request-validation", h.handleRequestValidation)
			r.Post("/decision", h.handleDecision)
			r.Post("/refund", h.handleClaimRefund)
			r.Post("/reward", h.handleClaimReward)
			r.Get("/events", h.handleListEvents)
			r.Get("/backers", h.handleListBackers)
			r.Get("/backers/{account}", h.handleGetBacker)
			r.Get("/backers/{account}/reward", h.handleRewardEligibility)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
