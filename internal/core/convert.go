package core

// convert.go turns raw CSV cells into transaction fields.
//
// Statement exports disagree on date order and on the decimal separator, so
// dates are tried against a list of strftime layouts and amounts accept
// either "," or "." as the decimal point.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/go-strftime"
	"github.com/shopspring/decimal"
)

// DefaultDateFormat is the layout used when the caller supplies none.
const DefaultDateFormat = "%Y-%m-%d"

// fallbackDateFormats follow the caller's layout. Day-first comes before
// month-first, so "01/02/2024" is the 1st of February.
var fallbackDateFormats = []string{
	"%d.%m.%Y",
	"%Y-%m-%d",
	"%d/%m/%Y",
	"%m/%d/%Y",
}

var errEmptyAmount = errors.New("empty amount")

// DateFormats returns the layouts tried for a cell: the preferred layout
// first, then the fallbacks. Duplicates are kept; trying one twice is harmless.
func DateFormats(preferred string) []string {
	if preferred == "" {
		preferred = DefaultDateFormat
	}
	return append([]string{preferred}, fallbackDateFormats...)
}

// ParseDate parses s with the first layout in formats that accepts it.
func ParseDate(s string, formats []string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, f := range formats {
		t, err := strftime.Parse(f, s)
		if err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

// ParseAmount parses a money cell.
//
// Spaces (including no-break and thin spaces) are removed. When both "."
// and "," appear, the one that occurs last is the decimal separator and the
// other is a thousands separator. Otherwise "," is read as a decimal point.
// The result keeps the sign written in the cell.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = stripSpaces(s)
	if s == "" {
		return decimal.Zero, errEmptyAmount
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot >= 0 && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount: %w", err)
	}
	return d, nil
}

// stripSpaces removes every kind of space a spreadsheet may put in a number.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0', '\u202f', '\u2009':
			return -1
		}
		return r
	}, s)
}

// CleanCell trims whitespace and strips an Excel text-formula wrapper
// (="...") from a cell value.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// OptionalText returns nil for blank text.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
