package extraction

import "strings"

// Document is one inbound purchase document, already reduced to text by
// the mailbox and PDF adapters.
type Document struct {
	// MessageID is the mailbox identifier of the source message, empty
	// for documents submitted outside the mailbox flow.
	MessageID string

	// From is the sender address of the source message.
	From string

	// Body is the message body, either HTML markup or plain text.
	Body string

	// PDFText is the plain text of the first PDF attachment, empty when
	// the message carried none.
	PDFText string
}

// Layout tags the extraction variant a document is routed to.
type Layout int

const (
	// LayoutLabeledFreeText scans plain text for labeled fields. It is
	// the fallback when no stronger signal is present.
	LayoutLabeledFreeText Layout = iota

	// LayoutGenericTable parses line items out of an HTML table.
	LayoutGenericTable

	// LayoutFixedColumnPDF parses fixed-column rows out of PDF text.
	LayoutFixedColumnPDF
)

func (l Layout) String() string {
	switch l {
	case LayoutGenericTable:
		return "generic_table"
	case LayoutFixedColumnPDF:
		return "fixed_column_pdf"
	default:
		return "labeled_free_text"
	}
}

// DetectLayout picks the variant for a document: PDF text wins over an
// HTML table, and labeled free text is the fallback.
func DetectLayout(doc Document) Layout {
	if strings.TrimSpace(doc.PDFText) != "" {
		return LayoutFixedColumnPDF
	}
	if strings.Contains(strings.ToLower(doc.Body), "<table") {
		return LayoutGenericTable
	}
	return LayoutLabeledFreeText
}
