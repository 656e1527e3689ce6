package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// LeadClient defines the client port for the downstream lead API.
// Implemented by the ACL adapter; called by the application layer.
// Every call carries the caller's credentials explicitly; implementations
// return domain.ErrUnauthenticated without touching the network when they
// are missing.
type LeadClient interface {
	// ListLeads returns the leads matching filter together with the
	// reference collections the API sends alongside them.
	ListLeads(ctx context.Context, creds caller.Credentials, filter lead.Filter) (lead.Listing, error)

	// UpdateLeadStage persists a stage change. Only the stage is sent.
	// Returns domain.ErrNotFound if the lead does not exist downstream.
	UpdateLeadStage(ctx context.Context, creds caller.Credentials, id string, stage lead.Stage) error
}

// ProfileClient resolves who the credentials belong to.
type ProfileClient interface {
	// GetProfile returns the caller's role and profile id.
	GetProfile(ctx context.Context, creds caller.Credentials) (caller.Caller, error)
}
