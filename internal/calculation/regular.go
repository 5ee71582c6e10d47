package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/tables"
)

var (
	regularItemizedLimitRate   = decimal.RequireFromString("0.03")
	regularExemptionPhaseOut   = decimal.RequireFromString("0.02")
	additionalMedicareTaxRate  = decimal.RequireFromString("0.009")
	netInvestmentIncomeTaxRate = decimal.RequireFromString("0.038")
	medicareTaxRate            = decimal.RequireFromString("0.0145")
)

// Computer is implemented by the regime orchestrators
type Computer interface {
	Regime() domain.Regime
	TaxableIncome() decimal.Decimal
	Exemption() decimal.Decimal
	Tax() decimal.Decimal
}

// RegularTaxComputer computes the federal regular income tax.
// Every figure is computed once by the constructor.
type RegularTaxComputer struct {
	profile *TaxProfile
	params  tables.RegularParameters
	logger  Logger

	stateLocalIncomeTaxes  decimal.Decimal
	stateLocalTaxes        decimal.Decimal
	itemizedDeduction      decimal.Decimal
	qbiDeduction           decimal.Decimal
	taxableIncome          decimal.Decimal
	exemption              decimal.Decimal
	tax                    decimal.Decimal
	additionalMedicareTax  decimal.Decimal
	netInvestmentIncomeTax decimal.Decimal
	excessSocialSecurity   decimal.Decimal
	credits                decimal.Decimal
	taxWithheld            decimal.Decimal
}

// NewRegularTaxComputer computes the regular tax of profile
func NewRegularTaxComputer(profile *TaxProfile, logger Logger) (*RegularTaxComputer, error) {
	params, err := tables.Regular(profile.Year)
	if err != nil {
		return nil, fmt.Errorf("regular tax: %w", err)
	}

	c := &RegularTaxComputer{
		profile: profile,
		params:  params,
		logger:  withPrefix(logger, "regular"),
	}
	c.stateLocalIncomeTaxes = federalStateLocalIncomeTaxes(profile)
	c.stateLocalTaxes = c.computeStateLocalTaxes()
	c.itemizedDeduction = c.computeItemizedDeduction()
	c.qbiDeduction = c.computeQBIDeduction()
	c.taxableIncome = decimal.Max(decimal.Zero, profile.AGI.
		Sub(decimal.Max(params.StandardDeduction, c.itemizedDeduction)).
		Sub(c.qbiDeduction))
	c.exemption = c.computeExemption()
	c.tax = ComputeTaxWithQDCG(params.Brackets, params.QDCGThresholds,
		decimal.Max(decimal.Zero, c.taxableIncome.Sub(c.exemption)), profile.Gains(), c.logger)
	c.additionalMedicareTax = c.computeAdditionalMedicareTax()
	c.netInvestmentIncomeTax = c.computeNetInvestmentIncomeTax()
	c.excessSocialSecurity = c.computeExcessSocialSecurity()
	c.credits = federalCredits(profile)
	c.taxWithheld = c.computeTaxWithheld()

	c.logger.Debugf("taxable_income = %s, exemption = %s, tax = %s",
		c.taxableIncome.StringFixed(0), c.exemption.StringFixed(0), c.tax.StringFixed(0))
	return c, nil
}

// federalStateLocalIncomeTaxes is the state and local income tax paid during the year
func federalStateLocalIncomeTaxes(p *TaxProfile) decimal.Decimal {
	return decimal.Sum(p.StateIncomeTaxWithheld, p.SDI, p.StateTaxDueLastYear, p.StateEstimatedTaxPaidLastYear)
}

// federalCredits is the foreign tax credit, claimed as a credit before 2018
func federalCredits(p *TaxProfile) decimal.Decimal {
	if p.Year < taxReformYear {
		return p.ForeignTaxPaid
	}
	return decimal.Zero
}

func (c *RegularTaxComputer) computeStateLocalTaxes() decimal.Decimal {
	p := c.profile
	return capSALT(p.Year, decimal.Sum(c.stateLocalIncomeTaxes, p.PrimaryHomeTaxes, p.CarRegistration))
}

func (c *RegularTaxComputer) computeItemizedDeduction() decimal.Decimal {
	p := c.profile
	foreignTax := decimal.Zero
	if p.Year >= taxReformYear {
		foreignTax = p.ForeignTaxPaid
	}
	tentative := decimal.Sum(c.stateLocalTaxes, p.OtherTaxes, foreignTax, p.PrimaryHomeInterest, p.Gifts)

	c.logger.Debugf("tentative_deduction = %s", tentative.StringFixed(0))
	c.logger.Debugf("    state_local_taxes = %s", c.stateLocalTaxes.StringFixed(0))
	c.logger.Debugf("        state_local_income_taxes = %s", c.stateLocalIncomeTaxes.StringFixed(0))
	c.logger.Debugf("        primary_home_taxes = %s", p.PrimaryHomeTaxes.StringFixed(0))
	c.logger.Debugf("        car_registration = %s", p.CarRegistration.StringFixed(0))
	c.logger.Debugf("    other_taxes = %s", p.OtherTaxes.StringFixed(0))
	c.logger.Debugf("    primary_home_interest = %s", p.PrimaryHomeInterest.StringFixed(0))
	c.logger.Debugf("    gifts = %s", p.Gifts.StringFixed(0))

	limit := itemizedLimit(p.AGI, c.params.LimitThreshold, regularItemizedLimitRate, tentative)
	c.logger.Debugf("limit = %s", limit.StringFixed(0))
	return tentative.Sub(limit)
}

func (c *RegularTaxComputer) computeQBIDeduction() decimal.Decimal {
	p := c.profile
	if p.Year < taxReformYear {
		return decimal.Zero
	}
	// Not floored: a rental loss makes the deduction negative and raises taxable
	// income. Pending tax-law review.
	qbi := p.RentalIncome.Add(p.Section199ADividends).Mul(qbiRate)
	c.logger.Debugf("qbi = %s", qbi.StringFixed(0))
	return qbi
}

func (c *RegularTaxComputer) computeExemption() decimal.Decimal {
	excess := decimal.Max(decimal.Zero, c.profile.AGI.Sub(c.params.LimitThreshold))
	c.logger.Debugf("excess = %s", excess.StringFixed(0))
	phaseOut := decimal.Min(one, phaseOutSteps(excess).Mul(regularExemptionPhaseOut))
	return c.params.Exemption.Mul(one.Sub(phaseOut))
}

func (c *RegularTaxComputer) computeAdditionalMedicareTax() decimal.Decimal {
	wages := c.profile.MedicareWages
	tax := decimal.Max(decimal.Zero, wages.Sub(medicareSurtaxFloor)).Mul(additionalMedicareTaxRate)
	c.logger.Debugf("applying %s to %s-%s: %s",
		additionalMedicareTaxRate, wages.StringFixed(0), medicareSurtaxFloor, tax.StringFixed(0))
	return tax
}

func (c *RegularTaxComputer) computeNetInvestmentIncomeTax() decimal.Decimal {
	p := c.profile
	investmentIncome := decimal.Sum(p.Interest, p.Dividends, p.RentalIncomeOffset, p.CapitalGain, p.InvestmentIncomeModification)
	c.logger.Debugf("investment_income: %s", investmentIncome.StringFixed(0))

	ratio := decimal.Zero
	if p.AGI.IsPositive() {
		ratio = investmentIncome.Div(p.AGI).RoundBank(4)
	}
	// The allocable share is capped again from 2018 even though the SALT cap
	// already applied to the itemized deduction. Pending tax-law review.
	allocable := capSALT(p.Year, c.stateLocalIncomeTaxes.Mul(ratio))
	c.logger.Debugf("allocable_state_local_income_taxes: %s", allocable.StringFixed(0))

	taxableInvestment := investmentIncome.Sub(allocable)
	excessAGI := decimal.Max(decimal.Zero, p.AGI.Sub(medicareSurtaxFloor))
	// Floored at zero when investment income is a net loss. Pending tax-law review.
	tax := decimal.Max(decimal.Zero, decimal.Min(taxableInvestment, excessAGI)).Mul(netInvestmentIncomeTaxRate)
	c.logger.Debugf("applying %s to min(%s, %s-%s): %s",
		netInvestmentIncomeTaxRate, taxableInvestment.StringFixed(0), p.AGI.StringFixed(0),
		medicareSurtaxFloor, tax.StringFixed(0))
	return tax
}

func (c *RegularTaxComputer) computeExcessSocialSecurity() decimal.Decimal {
	p := c.profile
	due := c.params.SocialSecurityTaxRate.Mul(decimal.Min(c.params.SocialSecurityMaxWage, p.SocialSecurityWages))
	return decimal.Max(decimal.Zero, p.SocialSecurityTaxWithheld.Sub(due))
}

func (c *RegularTaxComputer) computeTaxWithheld() decimal.Decimal {
	p := c.profile
	medicareWithheld := p.MedicareTaxWithheld.Sub(p.MedicareWages.Mul(medicareTaxRate))
	return decimal.Sum(p.FederalIncomeTaxWithheld, medicareWithheld, c.excessSocialSecurity, p.FederalEstimatedTaxPaid)
}

// Regime returns domain.RegimeRegular
func (c *RegularTaxComputer) Regime() domain.Regime { return domain.RegimeRegular }

// Params returns the year parameters used by the computation
func (c *RegularTaxComputer) Params() tables.RegularParameters { return c.params }

// StateLocalIncomeTaxes returns the state and local income taxes paid during the year, before the cap
func (c *RegularTaxComputer) StateLocalIncomeTaxes() decimal.Decimal { return c.stateLocalIncomeTaxes }

// StateLocalTaxes returns the deductible state and local taxes after the cap
func (c *RegularTaxComputer) StateLocalTaxes() decimal.Decimal { return c.stateLocalTaxes }

// ItemizedDeduction returns the itemized deduction after the high-income limitation
func (c *RegularTaxComputer) ItemizedDeduction() decimal.Decimal { return c.itemizedDeduction }

// QBIDeduction returns the qualified business income deduction, negative for a rental loss
func (c *RegularTaxComputer) QBIDeduction() decimal.Decimal { return c.qbiDeduction }

// TaxableIncome returns AGI less the larger deduction and the QBI deduction, floored at zero
func (c *RegularTaxComputer) TaxableIncome() decimal.Decimal { return c.taxableIncome }

// Exemption returns the personal exemption after phase-out
func (c *RegularTaxComputer) Exemption() decimal.Decimal { return c.exemption }

// Tax returns the income tax on taxable income less exemption
func (c *RegularTaxComputer) Tax() decimal.Decimal { return c.tax }

// AdditionalMedicareTax returns the 0.9% surtax on medicare wages over 200,000
func (c *RegularTaxComputer) AdditionalMedicareTax() decimal.Decimal { return c.additionalMedicareTax }

// NetInvestmentIncomeTax returns the 3.8% surtax on investment income
func (c *RegularTaxComputer) NetInvestmentIncomeTax() decimal.Decimal { return c.netInvestmentIncomeTax }

// ExcessSocialSecurity returns social security tax withheld above the yearly maximum
func (c *RegularTaxComputer) ExcessSocialSecurity() decimal.Decimal { return c.excessSocialSecurity }

// Credits returns the credits against the federal tax
func (c *RegularTaxComputer) Credits() decimal.Decimal { return c.credits }

// TaxWithheld returns every federal payment made during the year
func (c *RegularTaxComputer) TaxWithheld() decimal.Decimal { return c.taxWithheld }

// Result returns the computation as a domain value
func (c *RegularTaxComputer) Result() domain.RegularResult {
	return domain.RegularResult{
		ItemizedDeduction:       c.itemizedDeduction,
		StandardDeduction:       c.params.StandardDeduction,
		QBIDeduction:            c.qbiDeduction,
		TaxableIncome:           c.taxableIncome,
		Exemption:               c.exemption,
		Tax:                     c.tax,
		AdditionalMedicareTax:   c.additionalMedicareTax,
		NetInvestmentIncomeTax:  c.netInvestmentIncomeTax,
		ExcessSocialSecurityTax: c.excessSocialSecurity,
		Credits:                 c.credits,
		TaxWithheld:             c.taxWithheld,
	}
}
