package port

import (
	"milestone-escrow/internal/core/domain"
)

// Observer receives notifications about committed campaign changes and
// rejected operations. Implementations must not block.
type Observer interface {
	// Committed is called once per successful unit of work with the events
	// it stored.
	Committed(events []domain.Event)
	// Rejected is called when an operation fails with a domain error.
	Rejected(op string, code domain.Code)
}

// NopObserver discards every notification.
type NopObserver struct{}

func (NopObserver) Committed([]domain.Event) {}

func (NopObserver) Rejected(string, domain.Code) {}
