package pagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/commands"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

const (
	unpublishPageMessageType = "seo.pages.unpublish"
	archivePageMessageType   = "seo.pages.archive"
)

// UnpublishPageCommand pulls a page back to draft, removing it from routing
// and sitemap output.
type UnpublishPageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

// Type implements command.Message.
func (UnpublishPageCommand) Type() string { return unpublishPageMessageType }

// Validate ensures the command carries a page identifier.
func (m UnpublishPageCommand) Validate() error {
	if m.PageID == uuid.Nil {
		return validation.Errors{
			"page_id": validation.NewError("seo.pages.unpublish.page_id_required", "page_id is required"),
		}
	}
	return nil
}

// ArchivePageCommand retires a published page permanently.
type ArchivePageCommand struct {
	PageID uuid.UUID `json:"page_id"`
}

// Type implements command.Message.
func (ArchivePageCommand) Type() string { return archivePageMessageType }

// Validate ensures the command carries a page identifier.
func (m ArchivePageCommand) Validate() error {
	if m.PageID == uuid.Nil {
		return validation.Errors{
			"page_id": validation.NewError("seo.pages.archive.page_id_required", "page_id is required"),
		}
	}
	return nil
}

// UnpublishPageHandler reverts pages to draft via the page service.
type UnpublishPageHandler struct {
	inner *commands.Handler[UnpublishPageCommand]
}

// NewUnpublishPageHandler constructs a handler wired to the provided page service.
func NewUnpublishPageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishPageCommand]) *UnpublishPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg UnpublishPageCommand) error {
		_, err := service.Unpublish(ctx, msg.PageID)
		return err
	}

	handlerOpts := []commands.HandlerOption[UnpublishPageCommand]{
		commands.WithLogger[UnpublishPageCommand](baseLogger),
		commands.WithOperation[UnpublishPageCommand]("pages.unpublish"),
		commands.WithMessageFields(func(msg UnpublishPageCommand) map[string]any {
			if msg.PageID == uuid.Nil {
				return nil
			}
			return map[string]any{"page_id": msg.PageID}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *UnpublishPageHandler) Execute(ctx context.Context, msg UnpublishPageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ArchivePageHandler archives pages via the page service.
type ArchivePageHandler struct {
	inner *commands.Handler[ArchivePageCommand]
}

// NewArchivePageHandler constructs a handler wired to the provided page service.
func NewArchivePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ArchivePageCommand]) *ArchivePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ArchivePageCommand) error {
		_, err := service.Archive(ctx, msg.PageID)
		return err
	}

	handlerOpts := []commands.HandlerOption[ArchivePageCommand]{
		commands.WithLogger[ArchivePageCommand](baseLogger),
		commands.WithOperation[ArchivePageCommand]("pages.archive"),
		commands.WithMessageFields(func(msg ArchivePageCommand) map[string]any {
			if msg.PageID == uuid.Nil {
				return nil
			}
			return map[string]any{"page_id": msg.PageID}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ArchivePageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ArchivePageHandler) Execute(ctx context.Context, msg ArchivePageCommand) error {
	return h.inner.Execute(ctx, msg)
}
