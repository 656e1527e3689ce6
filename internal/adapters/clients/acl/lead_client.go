package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/clients/acl/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	domlead "github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.LeadClient    = (*LeadClient)(nil)
	_ ports.ProfileClient = (*LeadClient)(nil)
	_ ports.HealthChecker = (*LeadClient)(nil)
)

const (
	leadsPath   = "/leads"
	profilePath = "/profile"
)

// LeadClient reaches the lead API: it loads leads, persists stage changes
// and resolves the caller's profile.
type LeadClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewLeadClient creates a LeadClient. orgHeader names the header carrying
// the organization id (normally "org").
func NewLeadClient(client *httpclient.Client, orgHeader string, logger *slog.Logger) *LeadClient {
	return &LeadClient{
		req:    NewRequester(client, orgHeader, logger),
		logger: logger,
	}
}

// ListLeads fetches the leads matching filter together with the reference
// collections returned next to them.
func (c *LeadClient) ListLeads(ctx context.Context, creds caller.Credentials, filter domlead.Filter) (domlead.Listing, error) {
	q := url.Values{}
	if filter.Stage != "" {
		q.Set("status", filter.Stage.String())
	}
	if filter.AssignedTo != "" {
		q.Set("assigned_to", filter.AssignedTo)
	}

	var resp lead.ListResponseDTO
	if err := c.req.Do(ctx, creds, http.MethodGet, leadsPath, q, nil, &resp); err != nil {
		return domlead.Listing{}, fmt.Errorf("listing leads: %w", err)
	}

	listing, skipped := lead.ToDomainListing(&resp)
	if skipped > 0 {
		c.logger.WarnContext(ctx, "skipped leads outside the pipeline",
			slog.Int("skipped", skipped),
			slog.String("stage", filter.Stage.String()),
		)
	}
	return listing, nil
}

// UpdateLeadStage persists a stage change for one lead.
func (c *LeadClient) UpdateLeadStage(ctx context.Context, creds caller.Credentials, id string, stage domlead.Stage) error {
	path := leadsPath + "/" + url.PathEscape(id)
	body := lead.ToUpdateStatusRequest(stage)

	if err := c.req.Do(ctx, creds, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("updating lead %s to %s: %w", id, stage, err)
	}
	return nil
}

// GetProfile resolves the caller behind creds.
func (c *LeadClient) GetProfile(ctx context.Context, creds caller.Credentials) (caller.Caller, error) {
	var resp lead.ProfileDTO
	if err := c.req.Do(ctx, creds, http.MethodGet, profilePath, nil, nil, &resp); err != nil {
		return caller.Caller{}, fmt.Errorf("fetching profile: %w", err)
	}
	return lead.ToDomainCaller(&resp), nil
}

// Name identifies the lead API in the readiness report.
func (c *LeadClient) Name() string {
	return c.req.client.Name()
}

// HealthCheck reports the circuit breaker state without making a request.
// Boards keep serving their last loaded data while the breaker is open.
func (c *LeadClient) HealthCheck(ctx context.Context) error {
	return c.req.client.HealthCheck(ctx)
}
