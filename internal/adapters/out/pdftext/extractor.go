// Package pdftext extracts plain text from PDF attachments so the document
// extractor can run its fixed-column parsing over it.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// Extractor implements the PDFTextExtractor port with a pure-Go PDF reader.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a PDF text extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "pdftext")}
}

// ExtractText returns the plain text of the document. The reader panics on
// some malformed files, so the call is fenced and reported as an error.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	e.logger.Debug("pdf text extracted", "bytes", len(data), "chars", buf.Len())
	return buf.String(), nil
}
