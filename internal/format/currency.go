// Package format renders exact decimal amounts for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders an amount with two fraction digits and comma thousands
// separators: 1234567.8 -> "1,234,567.80".
func Currency(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}

// Accounting renders an amount in accounting notation: negatives are
// parenthesized instead of signed. -1234.5 -> "(1,234.50)".
func Accounting(d decimal.Decimal) string {
	if d.IsNegative() {
		return "(" + Currency(d.Neg()) + ")"
	}
	return Currency(d)
}
