// Package localeparse converts the locale-formatted numbers and dates found
// in purchase documents into canonical values.
//
// Every function reports absence with a boolean instead of an error: not
// matching is the expected, common outcome of scanning free text with
// speculative patterns, and callers simply move on to the next candidate.
package localeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Convention selects how a numeric string is interpreted. It is chosen by
// the calling extractor based on the source layout, never auto-detected.
type Convention int

const (
	// CommaDecimal reads dot-thousands/comma-decimal numbers: "18.500,00".
	CommaDecimal Convention = iota

	// DotDecimal reads plain dot-decimal numbers: "18500.00".
	DotDecimal
)

// dateLayouts are tried in fixed priority order: slash before dash,
// four-digit year before two-digit.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2-1-06",
}

var nonNumeric = regexp.MustCompile(`[^0-9.,]`)
var nonDigit = regexp.MustCompile(`[^0-9]`)

// Date attempts each supported day/month/year layout and returns the first
// success.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Price normalizes a locale-formatted price string. All characters except
// digits, comma and dot are stripped first, so "$ 18.500,00" parses too.
func Price(s string, c Convention) (decimal.Decimal, bool) {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	switch c {
	case CommaDecimal:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case DotDecimal:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Quantity reads a locale-formatted amount that must be a whole number,
// e.g. the "16,00" quantity column of fixed-column PDF rows.
func Quantity(s string, c Convention) (int, bool) {
	d, ok := Price(s, c)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// Digits extracts a bare integer by stripping every non-digit character,
// e.g. "10 unidades" -> 10. Used for quantity cells in HTML tables.
func Digits(s string) (int, bool) {
	cleaned := nonDigit.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}
