// Package money parses locale-formatted currency strings into amounts.
package money

import (
	"strconv"
	"strings"
	"unicode"
)

// ErrUnparseableAmount indicates a price string that could not be converted
// into a numeric amount. Records carrying such amounts are excluded from the
// ledger rather than failing the load.
type ErrUnparseableAmount struct {
	Input string
}

func (e ErrUnparseableAmount) Error() string {
	return "unparseable amount: " + strconv.Quote(e.Input)
}

// Parse converts a locale-formatted price string into a numeric amount.
// Only the currency marker and whitespace are stripped, the decimal comma is
// treated as the fractional separator. Any other residue fails the parse, so
// partially numeric garbage like "12abc" is rejected rather than truncated.
// It never panics; callers are expected to drop the record when an error is
// returned.
func Parse(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, "R$", "")
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, cleaned)

	if cleaned == "" {
		return 0, ErrUnparseableAmount{Input: s}
	}

	// Decimal comma is the fractional separator in the source data
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrUnparseableAmount{Input: s}
	}

	return amount, nil
}
