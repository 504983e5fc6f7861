package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown                    Code = "UNKNOWN"
	CodeInvalidConfig              Code = "INVALID_CONFIG"
	CodeInvalidAccount             Code = "INVALID_ACCOUNT"
	CodeCampaignNotFound           Code = "CAMPAIGN_NOT_FOUND"
	CodeAlreadyEnrolled            Code = "ALREADY_ENROLLED"
	CodeNotEnrolled                Code = "NOT_ENROLLED"
	CodeWrongPhase                 Code = "WRONG_PHASE"
	CodeOutsideFundingWindow       Code = "OUTSIDE_FUNDING_WINDOW"
	CodeBelowMinimum               Code = "BELOW_MINIMUM"
	CodeWrongDestination           Code = "WRONG_DESTINATION"
	CodeAlreadyFunded              Code = "ALREADY_FUNDED"
	CodeAmountOverflow             Code = "AMOUNT_OVERFLOW"
	CodeLedgerInconsistent         Code = "LEDGER_INCONSISTENT"
	CodeFundingWindowOpen          Code = "FUNDING_WINDOW_OPEN"
	CodeUnauthorizedTransition     Code = "UNAUTHORIZED_TRANSITION"
	CodeUnauthorizedDecision       Code = "UNAUTHORIZED_DECISION"
	CodeMilestoneScheduleExhausted Code = "MILESTONE_SCHEDULE_EXHAUSTED"
	CodeNotRefundable              Code = "NOT_REFUNDABLE"
	CodeAlreadyRefunded            Code = "ALREADY_REFUNDED"
	CodeNotRewardEligible          Code = "NOT_REWARD_ELIGIBLE"
	CodeRewardAlreadyClaimed       Code = "REWARD_ALREADY_CLAIMED"
)

// Error is a guard violation raised by the campaign. Two errors match under
// errors.Is when their codes are equal, so a detailed error still matches
// its sentinel.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Detail returns a copy of e with a formatted message appended.
func (e *Error) Detail(format string, args ...any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + ": " + fmt.Sprintf(format, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of e caused by err. The cause stays out of the
// message returned to callers of the API.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Cause: err}
}

// NewError creates a domain error.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the domain code of err, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

var (
	ErrInvalidConfig              = NewError(CodeInvalidConfig, "invalid campaign configuration")
	ErrInvalidAccount             = NewError(CodeInvalidAccount, "account is required")
	ErrCampaignNotFound           = NewError(CodeCampaignNotFound, "campaign not found")
	ErrAlreadyEnrolled            = NewError(CodeAlreadyEnrolled, "account already enrolled")
	ErrNotEnrolled                = NewError(CodeNotEnrolled, "account not enrolled")
	ErrWrongPhase                 = NewError(CodeWrongPhase, "operation not allowed in current phase")
	ErrOutsideFundingWindow       = NewError(CodeOutsideFundingWindow, "outside funding window")
	ErrBelowMinimum               = NewError(CodeBelowMinimum, "contribution below minimum")
	ErrWrongDestination           = NewError(CodeWrongDestination, "payment not addressed to campaign escrow")
	ErrAlreadyFunded              = NewError(CodeAlreadyFunded, "account already funded")
	ErrAmountOverflow             = NewError(CodeAmountOverflow, "amount overflows ledger")
	ErrLedgerInconsistent         = NewError(CodeLedgerInconsistent, "fund accounting does not match backer ledger")
	ErrFundingWindowOpen          = NewError(CodeFundingWindowOpen, "funding window still open")
	ErrUnauthorizedTransition     = NewError(CodeUnauthorizedTransition, "caller may not trigger this transition")
	ErrUnauthorizedDecision       = NewError(CodeUnauthorizedDecision, "decision not from milestone approval authority")
	ErrMilestoneScheduleExhausted = NewError(CodeMilestoneScheduleExhausted, "no milestones remaining")
	ErrNotRefundable              = NewError(CodeNotRefundable, "nothing to refund")
	ErrAlreadyRefunded            = NewError(CodeAlreadyRefunded, "refund already claimed")
	ErrNotRewardEligible          = NewError(CodeNotRewardEligible, "account not eligible for reward")
	ErrRewardAlreadyClaimed       = NewError(CodeRewardAlreadyClaimed, "reward already claimed")
)

func wrongPhase(op string, p Phase) *Error {
	return ErrWrongPhase.Detail("%s in phase %s", op, p)
}
