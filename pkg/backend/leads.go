package backend

import (
	"context"
	"fmt"
	"net/url"
)

// Leads lists the captured leads for a bot.
func (c *Client) Leads(ctx context.Context, botID string) ([]Lead, error) {
	var leads []Lead
	if err := c.get(ctx, "/api/leads/"+url.PathEscape(botID), &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead to a new pipeline state.
func (c *Client) UpdateLeadStatus(ctx context.Context, leadID string, status LeadStatus) error {
	if !ValidLeadStatus(status) {
		return fmt.Errorf("backend: invalid lead status %q", status)
	}
	payload := map[string]LeadStatus{"status": status}
	return c.patch(ctx, "/api/leads/"+url.PathEscape(leadID)+"/status", payload, nil)
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, leadID string) error {
	return c.delete(ctx, "/api/leads/"+url.PathEscape(leadID))
}
