package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/tables"
)

var (
	stateItemizedLimitRate      = decimal.RequireFromString("0.06")
	stateExemptionPhaseOut      = decimal.NewFromInt(6)
	mentalHealthServicesFloor   = decimal.NewFromInt(1000000)
	mentalHealthServicesTaxRate = decimal.RequireFromString("0.01")
)

// StateTaxComputer computes the state income tax
type StateTaxComputer struct {
	profile *TaxProfile
	params  tables.StateParameters
	logger  Logger

	adjustedAGI             decimal.Decimal
	itemizedDeduction       decimal.Decimal
	taxableIncome           decimal.Decimal
	exemption               decimal.Decimal
	tax                     decimal.Decimal
	mentalHealthServicesTax decimal.Decimal
	excessDisabilityTax     decimal.Decimal
	taxWithheld             decimal.Decimal
}

// NewStateTaxComputer computes the state tax of profile
func NewStateTaxComputer(profile *TaxProfile, logger Logger) (*StateTaxComputer, error) {
	params, err := tables.State(profile.Year)
	if err != nil {
		return nil, fmt.Errorf("state tax: %w", err)
	}

	c := &StateTaxComputer{
		profile: profile,
		params:  params,
		logger:  withPrefix(logger, "state"),
	}

	// HSA contributions are taxable for the state
	c.adjustedAGI = profile.AGI.Sub(profile.TaxableStateRefund).Add(profile.HSA)
	c.itemizedDeduction = c.computeItemizedDeduction()
	c.logger.Debugf("standard_deduction = %s", params.StandardDeduction.StringFixed(0))
	c.taxableIncome = decimal.Max(decimal.Zero,
		c.adjustedAGI.Sub(decimal.Max(params.StandardDeduction, c.itemizedDeduction)))

	excess := decimal.Max(decimal.Zero, profile.AGI.Sub(params.LimitThreshold))
	c.logger.Debugf("excess = %s", excess.StringFixed(0))
	c.exemption = decimal.Max(decimal.Zero, params.Exemption.Sub(phaseOutSteps(excess).Mul(stateExemptionPhaseOut)))

	c.tax = decimal.Max(decimal.Zero, applyTaxBrackets(params.Brackets, c.taxableIncome, c.logger).Sub(c.exemption))

	c.mentalHealthServicesTax = decimal.Max(decimal.Zero, c.taxableIncome.Sub(mentalHealthServicesFloor)).
		Mul(mentalHealthServicesTaxRate)
	c.logger.Debugf("applying %s to %s-%s: %s", mentalHealthServicesTaxRate,
		c.taxableIncome.StringFixed(0), mentalHealthServicesFloor, c.mentalHealthServicesTax.StringFixed(0))

	due := params.DisabilityInsuranceTaxRate.Mul(decimal.Min(params.DisabilityInsuranceMaxWage, profile.StateWages))
	c.excessDisabilityTax = decimal.Max(decimal.Zero, profile.SDI.Add(profile.VPDI).Sub(due))
	c.taxWithheld = decimal.Sum(profile.StateIncomeTaxWithheld, c.excessDisabilityTax, profile.StateEstimatedTaxPaidThisYear)

	c.logger.Debugf("taxable_income = %s, exemption = %s, tax = %s",
		c.taxableIncome.StringFixed(0), c.exemption.StringFixed(0), c.tax.StringFixed(0))
	return c, nil
}

func (c *StateTaxComputer) computeItemizedDeduction() decimal.Decimal {
	p := c.profile
	tentative := decimal.Sum(p.PrimaryHomeTaxes, p.CarRegistration, p.OtherTaxes, p.PrimaryHomeInterest, p.Gifts)
	c.logger.Debugf("tentative_deduction = %s", tentative.StringFixed(0))

	limit := itemizedLimit(p.AGI, c.params.LimitThreshold, stateItemizedLimitRate, tentative)
	c.logger.Debugf("limit = %s", limit.StringFixed(0))

	itemized := tentative.Sub(limit)
	c.logger.Debugf("itemized_deduction = %s", itemized.StringFixed(0))
	return itemized
}

// Regime returns domain.RegimeState
func (c *StateTaxComputer) Regime() domain.Regime { return domain.RegimeState }

// Params returns the year parameters used by the computation
func (c *StateTaxComputer) Params() tables.StateParameters { return c.params }

// AdjustedAGI returns AGI less the taxable state refund plus HSA contributions
func (c *StateTaxComputer) AdjustedAGI() decimal.Decimal { return c.adjustedAGI }

// ItemizedDeduction returns the state itemized deduction after the high-income limitation
func (c *StateTaxComputer) ItemizedDeduction() decimal.Decimal { return c.itemizedDeduction }

// TaxableIncome returns the adjusted AGI less the larger deduction, floored at zero
func (c *StateTaxComputer) TaxableIncome() decimal.Decimal { return c.taxableIncome }

// Exemption returns the exemption credit after phase-out
func (c *StateTaxComputer) Exemption() decimal.Decimal { return c.exemption }

// Tax returns the bracket tax less the exemption credit, floored at zero
func (c *StateTaxComputer) Tax() decimal.Decimal { return c.tax }

// MentalHealthServicesTax returns the 1% surtax on taxable income over 1,000,000
func (c *StateTaxComputer) MentalHealthServicesTax() decimal.Decimal { return c.mentalHealthServicesTax }

// ExcessDisabilityTax returns disability insurance withheld above the yearly maximum
func (c *StateTaxComputer) ExcessDisabilityTax() decimal.Decimal { return c.excessDisabilityTax }

// TaxWithheld returns every state payment made during the year
func (c *StateTaxComputer) TaxWithheld() decimal.Decimal { return c.taxWithheld }

// BalanceDue returns the state tax still owed, negative for a refund
func (c *StateTaxComputer) BalanceDue() decimal.Decimal {
	return c.tax.Add(c.mentalHealthServicesTax).Sub(c.taxWithheld)
}

// Result returns the computation as a domain value
func (c *StateTaxComputer) Result() domain.StateResult {
	return domain.StateResult{
		AdjustedAGI:             c.adjustedAGI,
		ItemizedDeduction:       c.itemizedDeduction,
		StandardDeduction:       c.params.StandardDeduction,
		TaxableIncome:           c.taxableIncome,
		Exemption:               c.exemption,
		Tax:                     c.tax,
		MentalHealthServicesTax: c.mentalHealthServicesTax,
		ExcessDisabilityTax:     c.excessDisabilityTax,
		TaxWithheld:             c.taxWithheld,
	}
}
