package domain

import "context"

// Action represents a single executable operation with rollback capability.
//
// Action lives in the domain layer so board types can describe their own
// compensations without importing the application layer.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// It is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description is used in logs (e.g. "set lead 42 stage to Won").
	Description() string
}
