package pagescmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/commands"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

const publishPageMessageType = "seo.pages.publish"

// PublishPageCommand requests publication of a page, making it externally
// routable and eligible for sitemap inclusion.
type PublishPageCommand struct {
	PageID      uuid.UUID  `json:"page_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Type implements command.Message.
func (PublishPageCommand) Type() string { return publishPageMessageType }

// Validate ensures the command carries a page identifier before it reaches a handler.
func (m PublishPageCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("seo.pages.publish.page_id_required", "page_id is required")
	}
	if m.PublishedAt != nil && m.PublishedAt.IsZero() {
		errs["published_at"] = validation.NewError("seo.pages.publish.published_at_invalid", "published_at must be a valid timestamp when provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishPageHandler publishes pages via the page service using the shared
// command handler foundation.
type PublishPageHandler struct {
	inner *commands.Handler[PublishPageCommand]
}

// NewPublishPageHandler constructs a handler wired to the provided page service.
func NewPublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPageCommand]) *PublishPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishPageCommand) error {
		_, err := service.Publish(ctx, pages.PublishPageRequest{
			ID:          msg.PageID,
			PublishedAt: msg.PublishedAt,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishPageCommand]{
		commands.WithLogger[PublishPageCommand](baseLogger),
		commands.WithOperation[PublishPageCommand]("pages.publish"),
		commands.WithMessageFields(func(msg PublishPageCommand) map[string]any {
			fields := map[string]any{}
			if msg.PageID != uuid.Nil {
				fields["page_id"] = msg.PageID
			}
			if msg.PublishedAt != nil && !msg.PublishedAt.IsZero() {
				fields["published_at"] = msg.PublishedAt
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *PublishPageHandler) Execute(ctx context.Context, msg PublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}
