package calculation

import (
	"github.com/shopspring/decimal"
)

// Law changes effective from tax year 2018
const taxReformYear = 2018

var (
	saltCap             = decimal.NewFromInt(10000)
	phaseOutStep        = decimal.NewFromInt(2500)
	itemizedLimitCap    = decimal.RequireFromString("0.8")
	qbiRate             = decimal.RequireFromString("0.2")
	medicareSurtaxFloor = decimal.NewFromInt(200000)
	one                 = decimal.NewFromInt(1)
)

// capSALT limits the state and local tax deduction from 2018 on
func capSALT(year int, amount decimal.Decimal) decimal.Decimal {
	if year >= taxReformYear {
		return decimal.Min(amount, saltCap)
	}
	return amount
}

// itemizedLimit is the phase-out of itemized deductions: rate times the AGI in
// excess of threshold, but never more than 80% of the tentative deduction
func itemizedLimit(agi, threshold, rate, tentative decimal.Decimal) decimal.Decimal {
	excess := decimal.Max(decimal.Zero, agi.Sub(threshold))
	return decimal.Min(excess.Mul(rate), tentative.Mul(itemizedLimitCap))
}

// phaseOutSteps counts the started increments of 2500 in excess
func phaseOutSteps(excess decimal.Decimal) decimal.Decimal {
	if !excess.IsPositive() {
		return decimal.Zero
	}
	return excess.Div(phaseOutStep).Ceil()
}
