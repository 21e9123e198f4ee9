package extraction

import "regexp"

// purchaseOrderPatterns are tried in priority order against the email
// body first and the PDF text second. Absence of a match is not an
// error: the reference is opportunistic.
var purchaseOrderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bOC[\s#:Nº]*([0-9]+)`),
	regexp.MustCompile(`(?i)Orden de Compra[\s#:Nº]*([0-9]+)`),
	regexp.MustCompile(`(?i)O\.C\.[\s#:Nº]*([0-9]+)`),
}

func findPurchaseOrderRef(texts ...string) string {
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, pattern := range purchaseOrderPatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
