package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/components/leads"
	"github.com/chatstack/botadmin/pkg/backend"
)

// LeadsInput identifies a filtered leads request.
type LeadsInput struct {
	BotID  string
	Status backend.LeadStatus
	Search string
}

type leadsService interface {
	List(ctx context.Context, botID string) ([]backend.Lead, error)
}

// LeadsQuery fetches and filters the lead pipeline.
type LeadsQuery struct {
	service leadsService
}

// NewLeadsQuery builds the query.
func NewLeadsQuery(service leadsService) *LeadsQuery {
	return &LeadsQuery{service: service}
}

var _ gocommand.Querier[LeadsInput, []backend.Lead] = (*LeadsQuery)(nil)

// Query lists the bot's leads with the status and search filters applied.
func (q *LeadsQuery) Query(ctx context.Context, input LeadsInput) ([]backend.Lead, error) {
	list, err := q.service.List(ctx, input.BotID)
	if err != nil {
		return nil, err
	}
	return leads.Filter(list, input.Status, input.Search), nil
}
