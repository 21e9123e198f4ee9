package extraction

import (
	"regexp"
	"strings"

	"pedidos/internal/extraction/localeparse"
)

// productLinePattern matches one fixed-column product row of the PDF
// layout: a code token, a free-text description and three locale
// formatted numbers read as unit price, quantity and line total.
var productLinePattern = regexp.MustCompile(
	`^([A-Z]{2}\d{4,})\s+(.+?)\s+([\d.,]+)\s+([\d.,]+)\s+([\d.,]+)$`)

// codeShapePattern recognizes lines that start like a product row. Lines
// matching it but not the full pattern are logged for diagnosis.
var codeShapePattern = regexp.MustCompile(`^[A-Z]{2}\d{4,}\b`)

// skipMarkers flag header and footer lines of the PDF layout.
var skipMarkers = []string{"sku", "subtotal", "total neto", "terms"}

// extractFixedColumnPDF reads line items from the fixed-column rows of
// the attached PDF's text. Delivery fields still come from the message
// body.
func (e *Extractor) extractFixedColumnPDF(doc Document, frag *Fragment) {
	for _, line := range strings.Split(doc.PDFText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isMarkerLine(line) {
			continue
		}

		m := productLinePattern.FindStringSubmatch(line)
		if m == nil {
			if codeShapePattern.MatchString(line) {
				e.logger.Warn("product-like pdf line did not match layout",
					"message_id", doc.MessageID, "line", line)
			}
			continue
		}

		product := strings.TrimSpace(m[2])
		price, priceOK := localeparse.Price(m[3], localeparse.CommaDecimal)
		quantity, qtyOK := localeparse.Quantity(m[4], localeparse.CommaDecimal)

		if product == "" || !priceOK || !qtyOK || quantity <= 0 || !price.IsPositive() {
			e.logger.Warn("skipping unparseable pdf row",
				"message_id", doc.MessageID, "line", line)
			continue
		}

		frag.Items = append(frag.Items, LineInput{
			Product:   product,
			Quantity:  quantity,
			UnitPrice: price,
		})
	}

	e.scanDeliveryFields(doc.Body, frag)
}

func isMarkerLine(line string) bool {
	lowered := strings.ToLower(line)
	for _, marker := range skipMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
