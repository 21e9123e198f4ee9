package extraction

import (
	"regexp"
	"strings"
	"time"
)

// freeTextLabels maps fragment fields to the labels that introduce them.
// Matching is by case-insensitive prefix so "Destinatario Entrega" and
// plain "Destinatario" both hit.
var freeTextLabels = []struct {
	label string
	set   func(frag *Fragment, value string)
}{
	{"destinatario", func(f *Fragment, v string) { f.Recipient = v }},
	{"facturar a", func(f *Fragment, v string) { f.BillingClient = v }},
	{"lugar de entrega", func(f *Fragment, v string) { f.DeliveryPlace = v }},
	{"dirección", func(f *Fragment, v string) { f.DeliveryAddress = v }},
}

// deliveryTimePatterns are tried in priority order, the start time of a
// window winning over a bare time. Group 1 is always the time taken.
var deliveryTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*hs?\.?\s*-\s*\d{1,2}:\d{2}\s*hs?\.?`),
	regexp.MustCompile(`(\d{1,2}:\d{2})\s*-\s*\d{1,2}:\d{2}`),
	regexp.MustCompile(`(?i)horario[:\s]*(\d{1,2}:\d{2})`),
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*hs`),
}

// extractLabeledFreeText scans plain text for labeled fields laid out as
// "Label:" followed by the value on the same line or on the next
// non-empty line. The delivery date is not read from the document: these
// messages never carry one, so it is computed as seven business days
// forward from the extraction time.
func (e *Extractor) extractLabeledFreeText(doc Document, frag *Fragment) {
	lines := strings.Split(doc.Body, "\n")

	for _, entry := range freeTextLabels {
		if value := labeledValue(lines, entry.label); value != "" {
			entry.set(frag, value)
		}
	}

	for _, pattern := range deliveryTimePatterns {
		if m := pattern.FindStringSubmatch(doc.Body); m != nil {
			frag.DeliveryTime = m[1]
			break
		}
	}

	date := truncateToDate(AddBusinessDays(e.now(), 7))
	frag.DeliveryDate = &date
}

// labeledValue returns the value introduced by label: the part of the
// labeled line after its colon if non-empty, otherwise the next
// non-empty line. This covers both "Label: value" and the common
// "Label\n\nValue" layout.
func labeledValue(lines []string, label string) string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(trimmed), label) {
			continue
		}

		if idx := strings.Index(trimmed, ":"); idx >= 0 {
			if value := strings.TrimSpace(trimmed[idx+1:]); value != "" {
				return value
			}
		}

		for _, next := range lines[i+1:] {
			if value := strings.TrimSpace(next); value != "" {
				return value
			}
		}
		return ""
	}
	return ""
}

// AddBusinessDays advances from by n weekdays, skipping Saturdays and
// Sundays.
func AddBusinessDays(from time.Time, n int) time.Time {
	d := from
	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return d
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
