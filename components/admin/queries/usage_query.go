package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/components/usage"
)

// UsageReportInput identifies an analytics request.
type UsageReportInput struct {
	BotID string
}

type usageService interface {
	Load(ctx context.Context, botID string) (*usage.Report, error)
}

// UsageReportQuery executes read-only analytics resolution.
type UsageReportQuery struct {
	service usageService
}

// NewUsageReportQuery builds the query.
func NewUsageReportQuery(service usageService) *UsageReportQuery {
	return &UsageReportQuery{service: service}
}

var _ gocommand.Querier[UsageReportInput, *usage.Report] = (*UsageReportQuery)(nil)

// Query renders the usage report for the bot.
func (q *UsageReportQuery) Query(ctx context.Context, input UsageReportInput) (*usage.Report, error) {
	return q.service.Load(ctx, input.BotID)
}
