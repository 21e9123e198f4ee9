package extraction

import (
	"log/slog"
	"regexp"
	"time"

	"pedidos/internal/extraction/localeparse"
)

// Extractor turns documents into fragments, routing each document to the
// variant its layout calls for.
type Extractor struct {
	now    func() time.Time
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		now:    time.Now,
		logger: logger.With("component", "extractor"),
	}
}

// Extract assembles the best fragment it can from one document. It never
// fails: missing fields and unparseable rows are skipped, and the caller
// decides admission through Fragment.Validate.
func (e *Extractor) Extract(doc Document) Fragment {
	frag := Fragment{
		SourceEmail:     bareAddress(doc.From),
		SourceMessageID: doc.MessageID,
	}

	layout := DetectLayout(doc)
	switch layout {
	case LayoutFixedColumnPDF:
		e.extractFixedColumnPDF(doc, &frag)
	case LayoutGenericTable:
		e.extractGenericTable(doc, &frag)
	default:
		e.extractLabeledFreeText(doc, &frag)
	}

	frag.PurchaseOrderRef = findPurchaseOrderRef(doc.Body, doc.PDFText)

	e.logger.Info("document extracted",
		"message_id", doc.MessageID,
		"layout", layout,
		"items", len(frag.Items),
		"has_delivery_date", frag.DeliveryDate != nil)

	return frag
}

// angleAddressPattern isolates the bare address of a "Name <addr>" sender.
var angleAddressPattern = regexp.MustCompile(`<([^>]+)>`)

// bareAddress strips the display name from a From header. A header without
// angle brackets is already a bare address.
func bareAddress(from string) string {
	if m := angleAddressPattern.FindStringSubmatch(from); m != nil {
		return m[1]
	}
	return from
}

// deliveryDatePatterns are tried in priority order: an explicitly labeled
// date first, any bare date shape last.
var deliveryDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)fecha de entrega[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)entrega[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
}

var deliveryPlacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)lugar de entrega[:\s]*([^\n.;]+)`),
	regexp.MustCompile(`(?i)entregar? en[:\s]*([^\n.;]+)`),
}

// scanDeliveryFields fills the delivery date and place from plain text.
// Used by the table and PDF variants, whose documents carry these fields
// inline in the message body.
func (e *Extractor) scanDeliveryFields(text string, frag *Fragment) {
	for _, pattern := range deliveryDatePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if date, ok := localeparse.Date(m[1]); ok {
			frag.DeliveryDate = &date
			break
		}
	}

	for _, pattern := range deliveryPlacePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			frag.DeliveryPlace = trimField(m[1])
			break
		}
	}
}
