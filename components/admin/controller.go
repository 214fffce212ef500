package admin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chatstack/botadmin/components/bots"
	"github.com/chatstack/botadmin/components/calendar"
	"github.com/chatstack/botadmin/components/embed"
	"github.com/chatstack/botadmin/components/forms"
	"github.com/chatstack/botadmin/components/ingest"
	"github.com/chatstack/botadmin/components/leads"
	"github.com/chatstack/botadmin/components/usage"
	"github.com/chatstack/botadmin/pkg/backend"
)

// ControllerOptions wires page services into the controller. Renderer is
// required; any nil service disables its pages.
type ControllerOptions struct {
	Renderer  Renderer
	Bots      *bots.Service
	Calendar  *calendar.Service
	Embed     *embed.Generator
	Forms     *forms.Service
	Ingest    *ingest.Service
	Leads     *leads.Service
	Usage     *usage.Service
	Telemetry Telemetry
}

// Controller renders the admin pages.
type Controller struct {
	renderer  Renderer
	bots      *bots.Service
	calendar  *calendar.Service
	embed     *embed.Generator
	forms     *forms.Service
	ingest    *ingest.Service
	leads     *leads.Service
	usage     *usage.Service
	telemetry Telemetry
}

// NewController builds a controller from options.
func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("admin: renderer is required")
	}
	return &Controller{
		renderer:  opts.Renderer,
		bots:      opts.Bots,
		calendar:  opts.Calendar,
		embed:     opts.Embed,
		forms:     opts.Forms,
		ingest:    opts.Ingest,
		leads:     opts.Leads,
		usage:     opts.Usage,
		telemetry: normalizeTelemetry(opts.Telemetry),
	}, nil
}

// RenderBots writes the bot list page.
func (c *Controller) RenderBots(ctx context.Context, out io.Writer) error {
	if c.bots == nil {
		return fmt.Errorf("admin: bots service not configured")
	}
	list, err := c.bots.List(ctx)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("bots", map[string]any{"Bots": list}, out)
	return err
}

// RenderCalendar writes the booking grid page for the given bot and window.
func (c *Controller) RenderCalendar(ctx context.Context, out io.Writer, botID string, view calendar.ViewMode, anchor time.Time) error {
	if c.calendar == nil {
		return fmt.Errorf("admin: calendar service not configured")
	}
	win, err := c.calendar.LoadWindow(ctx, botID, view, anchor)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("calendar", map[string]any{"Window": win}, out)
	return err
}

// RenderLeads writes the leads table page.
func (c *Controller) RenderLeads(ctx context.Context, out io.Writer, botID string) error {
	if c.leads == nil {
		return fmt.Errorf("admin: leads service not configured")
	}
	list, err := c.leads.List(ctx, botID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("leads", map[string]any{"Leads": list}, out)
	return err
}

// RenderUsage writes the analytics page with pre-rendered charts.
func (c *Controller) RenderUsage(ctx context.Context, out io.Writer, botID string) error {
	if c.usage == nil {
		return fmt.Errorf("admin: usage service not configured")
	}
	report, err := c.usage.Load(ctx, botID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("usage", map[string]any{
		"Report":        report,
		"DailyChart":    report.DailyHTML,
		"SummaryChart":  report.SummaryHTML,
		"FallbackChart": report.FallbackHTML,
	}, out)
	return err
}

// RenderForms writes the form builder page.
func (c *Controller) RenderForms(ctx context.Context, out io.Writer, botID string) error {
	if c.forms == nil {
		return fmt.Errorf("admin: forms service not configured")
	}
	configs, err := c.forms.Configs(ctx, botID)
	if err != nil {
		return err
	}
	resources, err := c.forms.Resources(ctx, botID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("forms", map[string]any{
		"Configs":   configs,
		"Resources": resources,
	}, out)
	return err
}

// RenderEmbed writes the snippet generator page for one variant and theme.
func (c *Controller) RenderEmbed(ctx context.Context, out io.Writer, botID string, variant embed.Variant, theme embed.Theme) error {
	if c.embed == nil {
		return fmt.Errorf("admin: embed generator not configured")
	}
	snippet, err := c.embed.Generate(ctx, botID, variant, theme)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("embed", map[string]any{"Snippet": snippet}, out)
	return err
}

// RenderIngest writes the knowledge page, optionally with an active job.
func (c *Controller) RenderIngest(ctx context.Context, out io.Writer, jobID string) error {
	if c.ingest == nil {
		return fmt.Errorf("admin: ingest service not configured")
	}
	var job *backend.IngestJob
	if jobID != "" {
		fetched, err := c.ingest.JobStatus(ctx, jobID)
		if err != nil {
			return err
		}
		job = &fetched
	}
	_, err := c.renderer.Render("ingest", map[string]any{"Job": job}, out)
	return err
}
