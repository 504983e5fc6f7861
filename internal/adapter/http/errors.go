package httpadapter

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"milestone-escrow/internal/core/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeInvalidConfig, domain.CodeInvalidAccount:
		return http.StatusBadRequest
	case domain.CodeUnauthorizedDecision, domain.CodeUnauthorizedTransition:
		return http.StatusForbidden
	case domain.CodeCampaignNotFound, domain.CodeNotEnrolled:
		return http.StatusNotFound
	case domain.CodeBelowMinimum:
		return http.StatusUnprocessableEntity
	case domain.CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusConflict
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadRequest) {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	var derr *domain.Error
	if !errors.As(err, &derr) {
		derr = &domain.Error{Code: domain.CodeUnknown}
	}
	status := statusFor(derr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeJSON(w, status, errorResponse{Code: string(derr.Code), Message: "internal error"})
		return
	}
	// the message omits storage causes attached with Wrap
	h.writeJSON(w, status, errorResponse{Code: string(derr.Code), Message: derr.Message})
}
