package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	router "github.com/goliatone/go-router"

	"github.com/chatstack/botadmin/components/admin"
	"github.com/chatstack/botadmin/components/admin/commands"
	"github.com/chatstack/botadmin/components/calendar"
	"github.com/chatstack/botadmin/components/embed"
)

// ActorResolver extracts the acting admin's identity from the request.
type ActorResolver func(router.Context) (actorID, tenantID string)

// Executor groups the mutation commands mounted as JSON endpoints.
type Executor struct {
	CancelBooking  *commands.CancelBookingCommand
	LeadStatus     *commands.UpdateLeadStatusCommand
	RotateKey      *commands.RotateBotKeyCommand
	ClearKnowledge *commands.ClearKnowledgeCommand
	UpdateField    *commands.UpdateFormFieldCommand
}

// Config wires go-router with the admin controller and commands.
type Config[T any] struct {
	Router        router.Router[T]
	Controller    *admin.Controller
	Executor      *Executor
	ActorResolver ActorResolver
	BasePath      string
}

// Register mounts the admin pages and mutation endpoints on a go-router
// router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	resolver := cfg.ActorResolver
	if resolver == nil {
		resolver = defaultActorResolver
	}

	group := cfg.Router.Group(base)

	group.Get("/bots", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderBots(ctx.Context(), buf)
		})
	}))

	group.Get("/bots/:id/calendar", router.WrapHandler(func(ctx router.Context) error {
		view := calendar.ViewMode(ctx.Query("view"))
		if view == "" {
			view = calendar.ViewMonth
		}
		anchor := time.Now()
		if raw := ctx.Query("anchor"); raw != "" {
			parsed, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			anchor = parsed
		}
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderCalendar(ctx.Context(), buf, ctx.Param("id"), view, anchor)
		})
	}))

	group.Get("/bots/:id/leads", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderLeads(ctx.Context(), buf, ctx.Param("id"))
		})
	}))

	group.Get("/bots/:id/usage", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderUsage(ctx.Context(), buf, ctx.Param("id"))
		})
	}))

	group.Get("/bots/:id/forms", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderForms(ctx.Context(), buf, ctx.Param("id"))
		})
	}))

	group.Get("/bots/:id/embed", router.WrapHandler(func(ctx router.Context) error {
		variant := embed.Variant(ctx.Query("variant"))
		if variant == "" {
			variant = embed.VariantBubbleLight
		}
		theme := embed.DefaultTheme()
		if color := ctx.Query("primary"); color != "" {
			theme.PrimaryColor = color
		}
		if color := ctx.Query("text"); color != "" {
			theme.TextColor = color
		}
		if color := ctx.Query("background"); color != "" {
			theme.Background = color
		}
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderEmbed(ctx.Context(), buf, ctx.Param("id"), variant, theme)
		})
	}))

	group.Get("/bots/:id/knowledge", router.WrapHandler(func(ctx router.Context) error {
		return renderPage(ctx, func(buf *bytes.Buffer) error {
			return cfg.Controller.RenderIngest(ctx.Context(), buf, ctx.Query("job"))
		})
	}))

	if cfg.Executor != nil {
		registerAPI(group, cfg.Executor, resolver)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], exec *Executor, resolver ActorResolver) {
	if exec.CancelBooking != nil {
		r.Post("/bots/:id/booking/cancel", router.WrapHandler(func(ctx router.Context) error {
			var payload commands.CancelBookingInput
			if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			payload.BotID = ctx.Param("id")
			payload.ActorID, payload.TenantID = resolver(ctx)
			if err := exec.CancelBooking.Execute(ctx.Context(), payload); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
		}))
	}

	if exec.LeadStatus != nil {
		r.Post("/leads/:id/status", router.WrapHandler(func(ctx router.Context) error {
			var payload commands.UpdateLeadStatusInput
			if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			payload.LeadID = ctx.Param("id")
			payload.ActorID, payload.TenantID = resolver(ctx)
			if err := exec.LeadStatus.Execute(ctx.Context(), payload); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
		}))
	}

	if exec.RotateKey != nil {
		r.Post("/bots/:id/key/rotate", router.WrapHandler(func(ctx router.Context) error {
			payload := commands.RotateBotKeyInput{BotID: ctx.Param("id")}
			payload.ActorID, payload.TenantID = resolver(ctx)
			if err := exec.RotateKey.Execute(ctx.Context(), payload); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": "rotated"})
		}))
	}

	if exec.ClearKnowledge != nil {
		r.Post("/bots/:id/knowledge/clear", router.WrapHandler(func(ctx router.Context) error {
			payload := commands.ClearKnowledgeInput{BotID: ctx.Param("id")}
			payload.ActorID, payload.TenantID = resolver(ctx)
			if err := exec.ClearKnowledge.Execute(ctx.Context(), payload); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": "cleared"})
		}))
	}

	if exec.UpdateField != nil {
		r.Post("/form-fields/:id", router.WrapHandler(func(ctx router.Context) error {
			var payload commands.UpdateFormFieldInput
			if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			payload.FieldID = ctx.Param("id")
			payload.ActorID, payload.TenantID = resolver(ctx)
			if err := exec.UpdateField.Execute(ctx.Context(), payload); err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
		}))
	}
}

func renderPage(ctx router.Context, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func defaultActorResolver(ctx router.Context) (string, string) {
	actorID, _ := ctx.Locals("user_id").(string)
	tenantID, _ := ctx.Locals("org_id").(string)
	return actorID, tenantID
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}
