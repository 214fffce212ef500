package backend

import (
	"context"
	"net/url"
)

// Usage fetches the per-day usage series for an org/bot pair.
func (c *Client) Usage(ctx context.Context, orgID, botID string) ([]UsagePoint, error) {
	var points []UsagePoint
	path := "/api/usage/" + url.PathEscape(orgID) + "/" + url.PathEscape(botID)
	if err := c.get(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// UsageSummary fetches the rollup counters for an org/bot pair.
func (c *Client) UsageSummary(ctx context.Context, orgID, botID string) (UsageSummary, error) {
	var summary UsageSummary
	path := "/api/usage/summary/" + url.PathEscape(orgID) + "/" + url.PathEscape(botID)
	if err := c.get(ctx, path, &summary); err != nil {
		return UsageSummary{}, err
	}
	return summary, nil
}
