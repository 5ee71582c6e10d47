package output

import (
	"bytes"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/tax-calculator/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as grouped USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.New(amount).Format() }

// FormatDollars formats a decimal as grouped USD rounded to whole dollars.
func FormatDollars(amount decimal.Decimal) string { return money.New(amount).FormatWhole() }

// FormatPercentage formats a fraction (0.25) as a percentage with 2 decimals ("25.00%").
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(2) + "%"
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
