package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies one of the tax computations performed for a year
type Regime string

const (
	RegimeRegular Regime = "regular"
	RegimeAMT     Regime = "amt"
	RegimeState   Regime = "state"
)

// Regimes lists every regime in computation order
func Regimes() []Regime {
	return []Regime{RegimeRegular, RegimeAMT, RegimeState}
}

// String returns a display name for the regime
func (r Regime) String() string {
	switch r {
	case RegimeRegular:
		return "Regular"
	case RegimeAMT:
		return "AMT"
	case RegimeState:
		return "State"
	default:
		return string(r)
	}
}

// RegularResult contains the federal regular tax computation
type RegularResult struct {
	ItemizedDeduction       decimal.Decimal `yaml:"itemized_deduction" json:"itemized_deduction"`
	StandardDeduction       decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	QBIDeduction            decimal.Decimal `yaml:"qbi_deduction" json:"qbi_deduction"`
	TaxableIncome           decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	Exemption               decimal.Decimal `yaml:"exemption" json:"exemption"`
	Tax                     decimal.Decimal `yaml:"tax" json:"tax"`
	AdditionalMedicareTax   decimal.Decimal `yaml:"additional_medicare_tax" json:"additional_medicare_tax"`
	NetInvestmentIncomeTax  decimal.Decimal `yaml:"net_investment_income_tax" json:"net_investment_income_tax"`
	ExcessSocialSecurityTax decimal.Decimal `yaml:"excess_social_security_tax" json:"excess_social_security_tax"`
	Credits                 decimal.Decimal `yaml:"credits" json:"credits"`
	TaxWithheld             decimal.Decimal `yaml:"tax_withheld" json:"tax_withheld"`
}

// AMTResult contains the federal alternative minimum tax computation.
// Tax is the tentative minimum tax; Owed is the part exceeding regular tax.
type AMTResult struct {
	ItemizedDeduction decimal.Decimal `yaml:"itemized_deduction" json:"itemized_deduction"`
	TaxableIncome     decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	Exemption         decimal.Decimal `yaml:"exemption" json:"exemption"`
	Tax               decimal.Decimal `yaml:"tax" json:"tax"`
	Owed              decimal.Decimal `yaml:"owed" json:"owed"`
}

// StateResult contains the state income tax computation
type StateResult struct {
	AdjustedAGI             decimal.Decimal `yaml:"adjusted_agi" json:"adjusted_agi"`
	ItemizedDeduction       decimal.Decimal `yaml:"itemized_deduction" json:"itemized_deduction"`
	StandardDeduction       decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	TaxableIncome           decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	Exemption               decimal.Decimal `yaml:"exemption" json:"exemption"`
	Tax                     decimal.Decimal `yaml:"tax" json:"tax"`
	MentalHealthServicesTax decimal.Decimal `yaml:"mental_health_services_tax" json:"mental_health_services_tax"`
	ExcessDisabilityTax     decimal.Decimal `yaml:"excess_disability_tax" json:"excess_disability_tax"`
	TaxWithheld             decimal.Decimal `yaml:"tax_withheld" json:"tax_withheld"`
}

// TaxSummary is the complete result of computing one tax year
type TaxSummary struct {
	Year          int             `yaml:"year" json:"year"`
	AGI           decimal.Decimal `yaml:"agi" json:"agi"`
	CapitalGain   decimal.Decimal `yaml:"capital_gain" json:"capital_gain"`
	RentalIncome  decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	RentalIncomes []RentalIncome  `yaml:"rental_incomes,omitempty" json:"rental_incomes,omitempty"`

	Regular RegularResult `yaml:"regular" json:"regular"`
	AMT     AMTResult     `yaml:"amt" json:"amt"`
	State   StateResult   `yaml:"state" json:"state"`

	FederalTax        decimal.Decimal `yaml:"federal_tax" json:"federal_tax"` // max(regular, AMT)
	FederalBalanceDue decimal.Decimal `yaml:"federal_balance_due" json:"federal_balance_due"`
	StateBalanceDue   decimal.Decimal `yaml:"state_balance_due" json:"state_balance_due"`
}

// ExtrapolationPoint is the tax outcome for one increment of the varied input
type ExtrapolationPoint struct {
	Delta      decimal.Decimal `yaml:"delta" json:"delta"`
	RegularTax decimal.Decimal `yaml:"regular_tax" json:"regular_tax"`
	AMTTax     decimal.Decimal `yaml:"amt_tax" json:"amt_tax"`
	FederalTax decimal.Decimal `yaml:"federal_tax" json:"federal_tax"`
	StateTax   decimal.Decimal `yaml:"state_tax" json:"state_tax"`
}

// Extrapolation is a series of tax outcomes as one input is increased
type Extrapolation struct {
	Year   int                  `yaml:"year" json:"year"`
	Item   string               `yaml:"item" json:"item"`
	Points []ExtrapolationPoint `yaml:"points" json:"points"`
}
