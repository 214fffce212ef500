package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Backend is the slice of the API client the generator needs.
type Backend interface {
	BotConfig(ctx context.Context, botID string) (backend.BotConfig, error)
	BotKey(ctx context.Context, botID string) (backend.BotKey, error)
}

// Telemetry records generator activity.
type Telemetry interface {
	Record(ctx context.Context, event string, fields map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// Options configures the snippet generator.
type Options struct {
	Backend    Backend
	BackendURL string
	Telemetry  Telemetry
	Logger     *slog.Logger
}

// Generator produces embeddable widget snippets with contrast feedback.
type Generator struct {
	backend    Backend
	backendURL string
	telemetry  Telemetry
	logger     *slog.Logger
}

// NewGenerator builds a generator from options.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("embed: backend is required")
	}
	if opts.BackendURL == "" {
		return nil, fmt.Errorf("embed: backend URL is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		backend:    opts.Backend,
		backendURL: opts.BackendURL,
		telemetry:  normalizeTelemetry(opts.Telemetry),
		logger:     logger,
	}, nil
}

// ContrastReport scores the theme's text color against its background.
type ContrastReport struct {
	Ratio  float64
	Bucket ContrastBucket
	// Suggested is a non-empty hex color when AutoFix found a better text
	// color for the chosen background.
	Suggested string
}

// Snippet is a generated widget embed.
type Snippet struct {
	Variant  Variant
	HTML     string
	Contrast ContrastReport
}

// Generate fetches the bot's greeting and public key, merges them into the
// theme, and renders the requested variant. When the theme omits a greeting
// the bot's configured welcome message is used.
func (g *Generator) Generate(ctx context.Context, botID string, variant Variant, theme Theme) (*Snippet, error) {
	builder := BuilderFor(variant)
	if builder == nil {
		return nil, fmt.Errorf("embed: unknown variant %q", variant)
	}

	key, err := g.backend.BotKey(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("embed: load bot key: %w", err)
	}
	if key.Revoked {
		return nil, fmt.Errorf("embed: bot key for %s is revoked; rotate it before embedding", botID)
	}

	if theme.Greeting == "" {
		cfg, err := g.backend.BotConfig(ctx, botID)
		if err != nil {
			g.logger.Warn("bot config unavailable, using default greeting", "bot_id", botID, "error", err)
		} else if cfg.WelcomeMessage != "" {
			theme.Greeting = cfg.WelcomeMessage
		}
		if theme.Greeting == "" {
			theme.Greeting = DefaultTheme().Greeting
		}
	}

	snippet := &Snippet{
		Variant: variant,
		HTML: builder(SnippetConfig{
			BackendURL: g.backendURL,
			BotID:      botID,
			PublicKey:  key.Key,
			Theme:      theme,
		}),
		Contrast: g.contrast(theme),
	}

	g.telemetry.Record(ctx, "embed.snippet_generated", map[string]any{
		"bot_id":  botID,
		"variant": string(variant),
		"bucket":  string(snippet.Contrast.Bucket),
	})
	return snippet, nil
}

func (g *Generator) contrast(theme Theme) ContrastReport {
	ratio, bucket, err := Score(theme.TextColor, theme.Background)
	if err != nil {
		return ContrastReport{Bucket: ContrastPoor}
	}
	report := ContrastReport{Ratio: ratio, Bucket: bucket}
	if ratio < autoFixTarget {
		fg, _ := ParseHex(theme.TextColor)
		bg, _ := ParseHex(theme.Background)
		if fixed, ok := AutoFix(fg, bg); ok {
			report.Suggested = fixed.Hex()
		}
	}
	return report
}
