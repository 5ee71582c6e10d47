package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/tables"
)

var amtExemptionPhaseOut = decimal.RequireFromString("0.25")

// AMTTaxComputer computes the federal alternative minimum tax.
// State and local taxes are not deductible for AMT.
type AMTTaxComputer struct {
	profile *TaxProfile
	params  tables.AMTParameters
	logger  Logger

	itemizedDeduction decimal.Decimal
	taxableIncome     decimal.Decimal
	exemption         decimal.Decimal
	tax               decimal.Decimal
	credits           decimal.Decimal
}

// NewAMTTaxComputer computes the tentative minimum tax of profile
func NewAMTTaxComputer(profile *TaxProfile, logger Logger) (*AMTTaxComputer, error) {
	params, err := tables.AMT(profile.Year)
	if err != nil {
		return nil, fmt.Errorf("alternative minimum tax: %w", err)
	}

	c := &AMTTaxComputer{
		profile: profile,
		params:  params,
		logger:  withPrefix(logger, "amt"),
	}

	c.itemizedDeduction = profile.PrimaryHomeInterest.Add(profile.Gifts)
	c.logger.Debugf("itemized_deduction = %s", c.itemizedDeduction.StringFixed(0))
	c.logger.Debugf("    primary_home_interest = %s", profile.PrimaryHomeInterest.StringFixed(0))
	c.logger.Debugf("    gifts = %s", profile.Gifts.StringFixed(0))

	c.taxableIncome = decimal.Max(decimal.Zero, profile.AGI.
		Sub(profile.TaxableStateRefund).
		Add(profile.PrivateActivityBondInterest).
		Sub(c.itemizedDeduction))

	excess := decimal.Max(decimal.Zero, c.taxableIncome.Sub(params.LimitThreshold))
	c.logger.Debugf("excess = %s", excess.StringFixed(0))
	c.exemption = decimal.Max(decimal.Zero, params.Exemption.Sub(excess.Mul(amtExemptionPhaseOut)))

	c.tax = ComputeTaxWithQDCG(params.Brackets, params.QDCGThresholds,
		decimal.Max(decimal.Zero, c.taxableIncome.Sub(c.exemption)), profile.Gains(), c.logger)
	c.credits = federalCredits(profile)

	c.logger.Debugf("taxable_income = %s, exemption = %s, tax = %s",
		c.taxableIncome.StringFixed(0), c.exemption.StringFixed(0), c.tax.StringFixed(0))
	return c, nil
}

// Regime returns domain.RegimeAMT
func (c *AMTTaxComputer) Regime() domain.Regime { return domain.RegimeAMT }

// Params returns the year parameters used by the computation
func (c *AMTTaxComputer) Params() tables.AMTParameters { return c.params }

func (c *AMTTaxComputer) ItemizedDeduction() decimal.Decimal { return c.itemizedDeduction }
func (c *AMTTaxComputer) TaxableIncome() decimal.Decimal     { return c.taxableIncome }
func (c *AMTTaxComputer) Exemption() decimal.Decimal         { return c.exemption }

// Tax returns the tentative minimum tax
func (c *AMTTaxComputer) Tax() decimal.Decimal { return c.tax }

// Credits returns the foreign tax credit; it is subtracted once, in the federal balance due
func (c *AMTTaxComputer) Credits() decimal.Decimal { return c.credits }

// Owed returns the alternative minimum tax actually due on top of regularTax
func (c *AMTTaxComputer) Owed(regularTax decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, c.tax.Sub(regularTax))
}

// Result returns the computation as a domain value
func (c *AMTTaxComputer) Result(regularTax decimal.Decimal) domain.AMTResult {
	return domain.AMTResult{
		ItemizedDeduction: c.itemizedDeduction,
		TaxableIncome:     c.taxableIncome,
		Exemption:         c.exemption,
		Tax:               c.tax,
		Owed:              c.Owed(regularTax),
	}
}
