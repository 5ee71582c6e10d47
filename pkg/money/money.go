package money

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount for display
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a decimal.Decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as dollars and cents with thousands separators, e.g. "$1,234.50"
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole formats the amount rounded to whole dollars, e.g. "$1,235"
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

func format(d decimal.Decimal, places int32) string {
	fixed := d.Abs().StringFixed(places)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(group(whole))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// group inserts thousands separators into a string of digits
func group(digits string) string {
	n, err := decimal.NewFromString(digits)
	if err != nil || !n.LessThan(decimal.NewFromInt(1_000_000_000_000_000)) {
		return digits
	}
	return humanize.Comma(n.IntPart())
}
