package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/tables"
)

// Unrecaptured1250Rate is the flat rate applied to unrecaptured section 1250 gain
var Unrecaptured1250Rate = decimal.RequireFromString("0.25")

// QDCG holds the figures that decide how much income is taxed at the
// qualified dividends and capital gains rates
type QDCG struct {
	QualifiedDividends   decimal.Decimal
	CapitalGain          decimal.Decimal // recognized gain, after carryover and loss floor
	LongTermCapitalGain  decimal.Decimal
	Unrecaptured1250Gain decimal.Decimal
}

// Amount returns the income eligible for preferential rates. It may be zero or negative.
func (q QDCG) Amount() decimal.Decimal {
	amount := q.QualifiedDividends
	if q.CapitalGain.IsPositive() && q.LongTermCapitalGain.IsPositive() {
		amount = amount.Add(decimal.Min(q.CapitalGain, q.LongTermCapitalGain))
	}
	return amount.Sub(q.Unrecaptured1250Gain)
}

// ApplyTaxBrackets returns the marginal bracket tax on amount.
// Brackets must be sorted by ascending boundary and amount must be non-negative.
func ApplyTaxBrackets(brackets []tables.Bracket, amount decimal.Decimal) decimal.Decimal {
	return applyTaxBrackets(brackets, amount, NopLogger{})
}

func applyTaxBrackets(brackets []tables.Bracket, amount decimal.Decimal, logger Logger) decimal.Decimal {
	tax := decimal.Zero
	for i := len(brackets) - 1; i >= 0; i-- {
		b := brackets[i]
		if !amount.GreaterThan(b.Boundary) {
			continue
		}
		excess := amount.Sub(b.Boundary)
		tax = tax.Add(excess.Mul(b.Rate))
		logger.Debugf("applying %s to %s-%s: %s cumulative",
			b.Rate, amount.StringFixed(0), b.Boundary, tax.StringFixed(0))
		amount = b.Boundary
	}
	return tax
}

// qdcgTax taxes qdcg on the threshold schedule. Each threshold is measured against
// where qdcg sits within taxableIncome, consuming qdcg from the top down.
func qdcgTax(thresholds []tables.Bracket, taxableIncome, qdcg decimal.Decimal, logger Logger) decimal.Decimal {
	tax := decimal.Zero
	remaining := decimal.Min(taxableIncome, qdcg)
	for _, t := range thresholds {
		limit := decimal.Max(decimal.Zero, taxableIncome.Sub(t.Boundary))
		qualified := decimal.Max(decimal.Zero, remaining.Sub(limit))
		tax = tax.Add(qualified.Mul(t.Rate))
		logger.Debugf("applying %s to %s-%s: %s cumulative",
			t.Rate, remaining.StringFixed(0), limit.StringFixed(0), tax.StringFixed(0))
		remaining = remaining.Sub(qualified)
		if remaining.IsZero() {
			break
		}
	}
	return tax
}

// ComputeTaxWithQDCG returns the lesser of the ordinary bracket tax on taxableIncome
// and the tax with qualified dividends and capital gains taxed on thresholds.
// When the preferential amount is not positive only the ordinary bracket tax applies.
func ComputeTaxWithQDCG(brackets, thresholds []tables.Bracket, taxableIncome decimal.Decimal, gains QDCG, logger Logger) decimal.Decimal {
	if logger == nil {
		logger = NopLogger{}
	}

	tax := applyTaxBrackets(brackets, taxableIncome, logger)
	logger.Debugf("tax: %s", tax.StringFixed(0))

	qdcg := gains.Amount()
	if !qdcg.IsPositive() {
		return tax
	}

	income := taxableIncome.Sub(gains.Unrecaptured1250Gain)
	taxQDCG := applyTaxBrackets(brackets, decimal.Max(decimal.Zero, income.Sub(qdcg)), logger).
		Add(qdcgTax(thresholds, income, qdcg, logger))

	unrecapturedTax := gains.Unrecaptured1250Gain.Mul(Unrecaptured1250Rate)
	logger.Debugf("applying %s to %s: %s",
		Unrecaptured1250Rate, gains.Unrecaptured1250Gain.StringFixed(0), unrecapturedTax.StringFixed(0))
	taxQDCG = taxQDCG.Add(unrecapturedTax)
	logger.Debugf("tax_qdcg: %s", taxQDCG.StringFixed(0))

	return decimal.Min(tax, taxQDCG)
}
