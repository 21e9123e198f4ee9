package ports

import "context"

// PDFTextExtractor converts PDF bytes into plain text. The extraction
// pipeline only consumes the text output and treats the implementation
// as opaque.
type PDFTextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
