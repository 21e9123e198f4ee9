package order

import "fmt"

// numberPrefix is the fixed prefix of every order number.
const numberPrefix = "PED"

// FormatNumber renders the display order number: PED-YYYY-MM-NNNNN, where
// NNNNN is the running creation sequence. Sequences are monotonically
// increasing and never reused; orders are never deleted.
func FormatNumber(year int, month int, sequence int64) string {
	return fmt.Sprintf("%s-%04d-%02d-%05d", numberPrefix, year, month, sequence)
}
