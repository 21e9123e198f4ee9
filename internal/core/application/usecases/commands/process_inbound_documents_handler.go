package commands

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/extraction"
	"pedidos/internal/pkg/errs"
)

// ProcessInboundDocumentsHandler drives one ingestion sweep: list unread
// purchase messages, extract a fragment from each, and admit the ones
// that pass validation as new orders. Admitted orders are immediately
// scheduled on the calendar and dispatched to the plant.
//
// A message is marked read once its processing completed, including the
// cases where validation rejected it or it was ingested before. A message
// that failed with an error stays unread and is retried on the next
// sweep.
type ProcessInboundDocumentsHandler struct {
	mailbox      ports.Mailbox
	pdfExtractor ports.PDFTextExtractor
	extractor    *extraction.Extractor
	createOrder  CreateOrderCommandHandler
	createEntry  CreateCalendarEntryCommandHandler
	sendToPlant  SendToPlantCommandHandler
	query        string
	logger       *slog.Logger
	now          func() time.Time
}

func NewProcessInboundDocumentsHandler(
	mailbox ports.Mailbox,
	pdfExtractor ports.PDFTextExtractor,
	extractor *extraction.Extractor,
	createOrder CreateOrderCommandHandler,
	createEntry CreateCalendarEntryCommandHandler,
	sendToPlant SendToPlantCommandHandler,
	query string,
	logger *slog.Logger,
) *ProcessInboundDocumentsHandler {
	return &ProcessInboundDocumentsHandler{
		mailbox:      mailbox,
		pdfExtractor: pdfExtractor,
		extractor:    extractor,
		createOrder:  createOrder,
		createEntry:  createEntry,
		sendToPlant:  sendToPlant,
		query:        query,
		logger:       logger.With("component", "inbound_documents"),
		now:          time.Now,
	}
}

// Handle runs one sweep. A single failing message never stops the rest of
// the batch.
func (h *ProcessInboundDocumentsHandler) Handle(ctx context.Context) error {
	refs, err := h.mailbox.GetUnreadMessages(ctx, h.query)
	if err != nil {
		return errs.NewExternalDependencyError("mailbox", "list unread messages", err)
	}

	h.logger.Info("unread purchase messages found", "count", len(refs))

	for _, ref := range refs {
		if err := h.process(ctx, ref.ID); err != nil {
			h.logger.Error("message processing failed", "message_id", ref.ID, "error", err)
			continue
		}
		if err := h.mailbox.MarkRead(ctx, ref.ID); err != nil {
			h.logger.Error("marking message read failed", "message_id", ref.ID, "error", err)
		}
	}

	return nil
}

func (h *ProcessInboundDocumentsHandler) process(ctx context.Context, messageID string) error {
	msg, err := h.mailbox.GetMessage(ctx, messageID)
	if err != nil {
		return errs.NewExternalDependencyError("mailbox", "fetch message", err)
	}

	frag := h.extractor.Extract(extraction.Document{
		MessageID: msg.ID,
		From:      msg.From,
		Body:      msg.Body,
		PDFText:   h.attachedPDFText(ctx, msg),
	})

	if err := frag.Validate(); err != nil {
		h.logger.Warn("document rejected", "message_id", msg.ID, "error", err)
		return nil
	}

	orderID := kernel.NewUUID()

	items := make([]OrderItemInput, 0, len(frag.Items))
	for _, item := range frag.Items {
		items = append(items, OrderItemInput{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := NewCreateOrderCommand(orderID, h.now(), *frag.DeliveryDate, items, order.Details{
		DeliveryTime:     frag.DeliveryTime,
		BillingClient:    frag.BillingClient,
		Recipient:        frag.Recipient,
		DeliveryAddress:  frag.DeliveryAddress,
		DeliveryPlace:    frag.DeliveryPlace,
		SourceEmail:      frag.SourceEmail,
		SourceMessageID:  frag.SourceMessageID,
		PurchaseOrderRef: frag.PurchaseOrderRef,
	})
	if err != nil {
		return err
	}

	if err := h.createOrder.Handle(ctx, cmd); err != nil {
		if errors.Is(err, ErrOrderAlreadyIngested) {
			h.logger.Info("message already produced an order", "message_id", msg.ID)
			return nil
		}
		return err
	}

	// The order exists from here on. Follow-up failures are logged and
	// left for a manual retry through the API, not bounced back to the
	// mailbox.
	entryCmd, err := NewCreateCalendarEntryCommand(orderID)
	if err != nil {
		return err
	}
	if err := h.createEntry.Handle(ctx, entryCmd); err != nil {
		h.logger.Error("calendar entry failed", "order_id", orderID.String(), "error", err)
		return nil
	}

	plantCmd, err := NewSendToPlantCommand(orderID, h.now())
	if err != nil {
		return err
	}
	if err := h.sendToPlant.Handle(ctx, plantCmd); err != nil {
		h.logger.Error("plant dispatch failed", "order_id", orderID.String(), "error", err)
	}

	return nil
}

// attachedPDFText returns the text of the first readable PDF attachment,
// or empty when the message carries none.
func (h *ProcessInboundDocumentsHandler) attachedPDFText(ctx context.Context, msg *ports.Message) string {
	for _, att := range msg.Attachments {
		if !isPDF(att) {
			continue
		}
		text, err := h.pdfExtractor.ExtractText(ctx, att.Data)
		if err != nil {
			h.logger.Warn("pdf text extraction failed",
				"message_id", msg.ID, "filename", att.Filename, "error", err)
			continue
		}
		return text
	}
	return ""
}

func isPDF(att ports.Attachment) bool {
	return att.MimeType == "application/pdf" ||
		strings.EqualFold(filepath.Ext(att.Filename), ".pdf")
}
