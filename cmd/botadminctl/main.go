package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/chatstack/botadmin/components/calendar"
	"github.com/chatstack/botadmin/components/embed"
	"github.com/chatstack/botadmin/pkg/backend"
	"github.com/chatstack/botadmin/pkg/session"
)

type cli struct {
	BackendURL string `env:"BACKEND_URL" default:"http://localhost:8080" help:"Platform API origin."`
	Token      string `env:"ADMIN_TOKEN" help:"Bearer token for the platform API."`
	Org        string `env:"ADMIN_ORG" help:"Organization id for usage-scoped calls."`
	Mock       bool   `help:"Use in-memory fixtures instead of the live backend."`

	Snippet  snippetCmd  `cmd:"" help:"Generate an embeddable chat widget snippet from a theme manifest."`
	Export   exportCmd   `cmd:"" help:"Export a bot's bookings as CSV or ICS."`
	Contrast contrastCmd `cmd:"" help:"Score a text/background color pair and suggest a fix."`
}

func main() {
	_ = godotenv.Load()
	root := &cli{}
	ctx := kong.Parse(root,
		kong.Description("Operator tooling for the chatbot admin dashboard."),
		kong.UsageOnError(),
	)
	err := ctx.Run(root)
	ctx.FatalIfErrorf(err)
}

func (c *cli) client() (backend.API, error) {
	if c.Mock {
		return demoClient(), nil
	}
	store := session.NewInMemoryStore()
	if c.Token != "" {
		if err := store.SetToken(context.Background(), c.Token); err != nil {
			return nil, err
		}
	}
	if c.Org != "" {
		if err := store.SetOrgID(context.Background(), c.Org); err != nil {
			return nil, err
		}
	}
	return backend.NewClient(backend.Config{BaseURL: c.BackendURL, Session: store})
}

func demoClient() *backend.MockClient {
	now := time.Now()
	return backend.NewMockClient(backend.MockData{
		Bots: []backend.Bot{{ID: "demo-bot", Name: "Demo Bot", Behavior: backend.BehaviorSupport}},
		Keys: map[string]backend.BotKey{
			"demo-bot": {Key: "pk_demo"},
		},
		Configs: map[string]backend.BotConfig{
			"demo-bot": {Behavior: backend.BehaviorSupport, WelcomeMessage: "Hi, how can we help?"},
		},
		Appointments: map[string][]backend.Appointment{
			"demo-bot": {{
				ID:            "appt-1",
				CustomerName:  "Ada Lovelace",
				CustomerEmail: "ada@example.com",
				Service:       "Consultation",
				StartTime:     now.Add(24 * time.Hour),
				EndTime:       now.Add(25 * time.Hour),
				Status:        backend.StatusConfirmed,
			}},
		},
	})
}

// snippetManifest is the YAML document fed to the snippet command. Theme keys
// sit at the top level next to the name and variant.
type snippetManifest struct {
	Name    string      `yaml:"name"`
	Variant string      `yaml:"variant"`
	Theme   embed.Theme `yaml:",inline"`
}

type snippetCmd struct {
	Bot      string `required:"" help:"Bot id to embed."`
	Manifest string `type:"path" help:"YAML theme manifest. Defaults apply when omitted."`
	Variant  string `help:"Widget variant, overrides the manifest value."`
	Out      string `type:"path" help:"Output file. Defaults to <name>_<variant>.html next to the manifest."`
	Autofix  bool   `help:"Apply the suggested text color when contrast falls below AA."`
}

func (cmd *snippetCmd) Run(root *cli) error {
	manifest := snippetManifest{Theme: embed.DefaultTheme()}
	if cmd.Manifest != "" {
		data, err := os.ReadFile(cmd.Manifest)
		if err != nil {
			return fmt.Errorf("botadminctl: read manifest: %w", err)
		}
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return fmt.Errorf("botadminctl: parse manifest: %w", err)
		}
	}
	variant := embed.Variant(manifest.Variant)
	if cmd.Variant != "" {
		variant = embed.Variant(cmd.Variant)
	}
	if variant == "" {
		variant = embed.VariantBubbleLight
	}
	if !embed.ValidVariant(variant) {
		return fmt.Errorf("botadminctl: unknown variant %q (valid: %v)", variant, embed.Variants())
	}

	client, err := root.client()
	if err != nil {
		return err
	}
	generator, err := embed.NewGenerator(embed.Options{
		Backend:    client,
		BackendURL: root.BackendURL,
	})
	if err != nil {
		return err
	}

	snippet, err := generator.Generate(context.Background(), cmd.Bot, variant, manifest.Theme)
	if err != nil {
		return err
	}

	report := snippet.Contrast
	fmt.Fprintf(os.Stdout, "contrast %.2f:1 (%s)\n", report.Ratio, report.Bucket)
	if report.Suggested != "" {
		fmt.Fprintf(os.Stdout, "suggested text color: %s\n", report.Suggested)
		if cmd.Autofix {
			manifest.Theme.TextColor = report.Suggested
			snippet, err = generator.Generate(context.Background(), cmd.Bot, variant, manifest.Theme)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "applied suggested text color")
		}
	}

	out := cmd.Out
	if out == "" {
		base := manifest.Name
		if base == "" {
			base = cmd.Bot
		}
		out = fmt.Sprintf("%s_%s.html", strcase.ToSnake(base), strcase.ToSnake(string(variant)))
		if cmd.Manifest != "" {
			out = filepath.Join(filepath.Dir(cmd.Manifest), out)
		}
	}
	if err := os.WriteFile(out, []byte(snippet.HTML), 0o644); err != nil {
		return fmt.Errorf("botadminctl: write snippet: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", out)
	return nil
}

type exportCmd struct {
	Bot    string `required:"" help:"Bot id whose bookings to export."`
	Format string `default:"csv" enum:"csv,ics" help:"Export format."`
	View   string `default:"month" enum:"month,week" help:"Window size around the anchor date."`
	Anchor string `help:"Anchor date (YYYY-MM-DD). Defaults to today."`
	Out    string `type:"path" help:"Output file. Defaults to bookings_<bot>.<format>."`
}

func (cmd *exportCmd) Run(root *cli) error {
	anchor := time.Now()
	if cmd.Anchor != "" {
		parsed, err := time.Parse(time.DateOnly, cmd.Anchor)
		if err != nil {
			return fmt.Errorf("botadminctl: parse anchor: %w", err)
		}
		anchor = parsed
	}

	client, err := root.client()
	if err != nil {
		return err
	}
	svc, err := calendar.NewService(calendar.Options{Backend: client})
	if err != nil {
		return err
	}
	win, err := svc.LoadWindow(context.Background(), cmd.Bot, calendar.ViewMode(cmd.View), anchor)
	if err != nil {
		return err
	}

	var payload string
	switch cmd.Format {
	case "ics":
		payload = calendar.ExportICS(win.Appointments)
	default:
		payload, err = calendar.ExportCSV(win.Appointments)
		if err != nil {
			return err
		}
	}

	out := cmd.Out
	if out == "" {
		out = fmt.Sprintf("bookings_%s.%s", strcase.ToSnake(cmd.Bot), cmd.Format)
	}
	if err := os.WriteFile(out, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("botadminctl: write export: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %d bookings to %s\n", len(win.Appointments), out)
	return nil
}

type contrastCmd struct {
	Text       string `arg:"" help:"Text color (#rrggbb)."`
	Background string `arg:"" help:"Background color (#rrggbb)."`
	Fix        bool   `help:"Suggest a passing text color when the pair scores below AA."`
}

func (cmd *contrastCmd) Run(_ *cli) error {
	ratio, bucket, err := embed.Score(cmd.Text, cmd.Background)
	if err != nil {
		return fmt.Errorf("botadminctl: %w", err)
	}
	fmt.Fprintf(os.Stdout, "%.2f:1 (%s)\n", ratio, bucket)
	if !cmd.Fix {
		return nil
	}
	fg, _ := embed.ParseHex(cmd.Text)
	bg, _ := embed.ParseHex(cmd.Background)
	fixed, ok := embed.AutoFix(fg, bg)
	if !ok {
		fmt.Fprintln(os.Stdout, "no passing adjustment found")
		return nil
	}
	if strings.EqualFold(fixed.Hex(), cmd.Text) {
		fmt.Fprintln(os.Stdout, "already passing")
		return nil
	}
	fmt.Fprintf(os.Stdout, "suggested text color: %s\n", fixed.Hex())
	return nil
}
