package domain

import (
	"github.com/shopspring/decimal"
)

// Document is an income document that contributes its figures to the aggregate totals.
// WageRecord, InvestmentRecord and RealEstateRecord are the only implementations.
type Document interface {
	DocumentID() string
	Contribute(t *Totals)
}

// WageRecord represents a wage statement (Form W-2)
type WageRecord struct {
	ID                        string          `yaml:"id" json:"id"`
	Wages                     decimal.Decimal `yaml:"wages" json:"wages"`
	FederalIncomeTaxWithheld  decimal.Decimal `yaml:"federal_income_tax_withheld" json:"federal_income_tax_withheld"`
	SocialSecurityWages       decimal.Decimal `yaml:"social_security_wages" json:"social_security_wages"`
	SocialSecurityTaxWithheld decimal.Decimal `yaml:"social_security_tax_withheld" json:"social_security_tax_withheld"`
	MedicareWages             decimal.Decimal `yaml:"medicare_wages" json:"medicare_wages"`
	MedicareTaxWithheld       decimal.Decimal `yaml:"medicare_tax_withheld" json:"medicare_tax_withheld"`
	HSA                       decimal.Decimal `yaml:"hsa" json:"hsa"`                   // Employer+employee HSA contribution (box 12 W)
	SDI                       decimal.Decimal `yaml:"sdi" json:"sdi"`                   // State disability insurance withheld
	VPDI                      decimal.Decimal `yaml:"vpdi" json:"vpdi"`                 // Voluntary plan disability insurance withheld
	StateWages                decimal.Decimal `yaml:"state_wages" json:"state_wages"`   // Box 16
	StateIncomeTaxWithheld    decimal.Decimal `yaml:"state_income_tax_withheld" json:"state_income_tax_withheld"`
}

// DocumentID returns the record identifier
func (w WageRecord) DocumentID() string { return w.ID }

// Contribute adds the wage statement to the totals
func (w WageRecord) Contribute(t *Totals) {
	t.Wages = t.Wages.Add(w.Wages)
	t.FederalIncomeTaxWithheld = t.FederalIncomeTaxWithheld.Add(w.FederalIncomeTaxWithheld)
	t.SocialSecurityWages = t.SocialSecurityWages.Add(w.SocialSecurityWages)
	t.SocialSecurityTaxWithheld = t.SocialSecurityTaxWithheld.Add(w.SocialSecurityTaxWithheld)
	t.MedicareWages = t.MedicareWages.Add(w.MedicareWages)
	t.MedicareTaxWithheld = t.MedicareTaxWithheld.Add(w.MedicareTaxWithheld)
	t.HSA = t.HSA.Add(w.HSA)
	t.SDI = t.SDI.Add(w.SDI)
	t.VPDI = t.VPDI.Add(w.VPDI)
	t.StateWages = t.StateWages.Add(w.StateWages)
	t.StateIncomeTaxWithheld = t.StateIncomeTaxWithheld.Add(w.StateIncomeTaxWithheld)
}

// InvestmentRecord represents an interest/dividend/brokerage statement (Form 1099)
type InvestmentRecord struct {
	ID                          string          `yaml:"id" json:"id"`
	Interest                    decimal.Decimal `yaml:"interest" json:"interest"`
	Dividends                   decimal.Decimal `yaml:"dividends" json:"dividends"`
	QualifiedDividends          decimal.Decimal `yaml:"qualified_dividends" json:"qualified_dividends"`
	CapitalGainDistributions    decimal.Decimal `yaml:"capital_gain_distributions" json:"capital_gain_distributions"`
	Unrecaptured1250Gain        decimal.Decimal `yaml:"unrecaptured_1250_gain" json:"unrecaptured_1250_gain"`
	FederalIncomeTaxWithheld    decimal.Decimal `yaml:"federal_income_tax_withheld" json:"federal_income_tax_withheld"`
	Section199ADividends        decimal.Decimal `yaml:"section_199a_dividends" json:"section_199a_dividends"`
	ForeignTaxPaid              decimal.Decimal `yaml:"foreign_tax_paid" json:"foreign_tax_paid"`
	PrivateActivityBondInterest decimal.Decimal `yaml:"private_activity_bond_interest" json:"private_activity_bond_interest"`
	ShortTermCapitalGain        decimal.Decimal `yaml:"short_term_capital_gain" json:"short_term_capital_gain"`
	LongTermCapitalGain         decimal.Decimal `yaml:"long_term_capital_gain" json:"long_term_capital_gain"`
	Misc                        decimal.Decimal `yaml:"misc" json:"misc"`
	RothConversionGain          decimal.Decimal `yaml:"roth_conversion_gain" json:"roth_conversion_gain"`
}

// DocumentID returns the record identifier
func (r InvestmentRecord) DocumentID() string { return r.ID }

// Contribute adds the investment statement to the totals.
// Capital gain distributions are long-term gain.
func (r InvestmentRecord) Contribute(t *Totals) {
	t.FederalIncomeTaxWithheld = t.FederalIncomeTaxWithheld.Add(r.FederalIncomeTaxWithheld)
	t.Interest = t.Interest.Add(r.Interest)
	t.Dividends = t.Dividends.Add(r.Dividends)
	t.QualifiedDividends = t.QualifiedDividends.Add(r.QualifiedDividends)
	t.Unrecaptured1250Gain = t.Unrecaptured1250Gain.Add(r.Unrecaptured1250Gain)
	t.Section199ADividends = t.Section199ADividends.Add(r.Section199ADividends)
	t.ForeignTaxPaid = t.ForeignTaxPaid.Add(r.ForeignTaxPaid)
	t.PrivateActivityBondInterest = t.PrivateActivityBondInterest.Add(r.PrivateActivityBondInterest)
	t.ShortTermCapitalGain = t.ShortTermCapitalGain.Add(r.ShortTermCapitalGain)
	t.LongTermCapitalGain = t.LongTermCapitalGain.Add(r.LongTermCapitalGain).Add(r.CapitalGainDistributions)
	t.MiscIncome = t.MiscIncome.Add(r.Misc)
	t.RothConversionGain = t.RothConversionGain.Add(r.RothConversionGain)
}

// RealEstateRecord represents either the primary residence or a rental property.
// Only Taxes and Interest are read from a primary residence.
type RealEstateRecord struct {
	ID           string          `yaml:"id" json:"id"`
	IsPrimary    bool            `yaml:"is_primary" json:"is_primary"`
	Rents        decimal.Decimal `yaml:"rents" json:"rents"`
	Taxes        decimal.Decimal `yaml:"taxes" json:"taxes"`
	Interest     decimal.Decimal `yaml:"interest" json:"interest"`
	HOA          decimal.Decimal `yaml:"hoa" json:"hoa"`
	Insurance    decimal.Decimal `yaml:"insurance" json:"insurance"`
	Advertising  decimal.Decimal `yaml:"advertising" json:"advertising"`
	Legal        decimal.Decimal `yaml:"legal" json:"legal"`
	Commissions  decimal.Decimal `yaml:"commissions" json:"commissions"`
	Management   decimal.Decimal `yaml:"management" json:"management"`
	Repairs      decimal.Decimal `yaml:"repairs" json:"repairs"`
	Utilities    decimal.Decimal `yaml:"utilities" json:"utilities"`
	Depreciation decimal.Decimal `yaml:"depreciation" json:"depreciation"`
	Other        decimal.Decimal `yaml:"other" json:"other"`
}

// DocumentID returns the record identifier
func (r RealEstateRecord) DocumentID() string { return r.ID }

// Expenses returns the sum of all deductible expense categories
func (r RealEstateRecord) Expenses() decimal.Decimal {
	return decimal.Sum(r.Taxes, r.Interest, r.HOA, r.Insurance, r.Advertising, r.Legal,
		r.Commissions, r.Management, r.Repairs, r.Utilities, r.Depreciation, r.Other)
}

// NetRentalIncome returns rents less expenses; it may be negative
func (r RealEstateRecord) NetRentalIncome() decimal.Decimal {
	return r.Rents.Sub(r.Expenses())
}

// Contribute adds the property to the totals: the primary residence feeds
// itemized deductions, every other property is rental activity.
func (r RealEstateRecord) Contribute(t *Totals) {
	if r.IsPrimary {
		t.PrimaryHomeTaxes = t.PrimaryHomeTaxes.Add(r.Taxes)
		t.PrimaryHomeInterest = t.PrimaryHomeInterest.Add(r.Interest)
		return
	}
	net := r.NetRentalIncome()
	t.RentalIncome = t.RentalIncome.Add(net)
	t.RentalIncomes = append(t.RentalIncomes, RentalIncome{ID: r.ID, NetIncome: net})
}

// RentalIncome is the net income of a single rental property
type RentalIncome struct {
	ID        string          `yaml:"id" json:"id"`
	NetIncome decimal.Decimal `yaml:"net_income" json:"net_income"`
}

// Totals holds the raw figures summed across all documents
type Totals struct {
	// Wage statements
	Wages                     decimal.Decimal `json:"wages"`
	FederalIncomeTaxWithheld  decimal.Decimal `json:"federal_income_tax_withheld"` // W-2 and 1099 withholding
	SocialSecurityWages       decimal.Decimal `json:"social_security_wages"`
	SocialSecurityTaxWithheld decimal.Decimal `json:"social_security_tax_withheld"`
	MedicareWages             decimal.Decimal `json:"medicare_wages"`
	MedicareTaxWithheld       decimal.Decimal `json:"medicare_tax_withheld"`
	HSA                       decimal.Decimal `json:"hsa"`
	SDI                       decimal.Decimal `json:"sdi"`
	VPDI                      decimal.Decimal `json:"vpdi"`
	StateWages                decimal.Decimal `json:"state_wages"`
	StateIncomeTaxWithheld    decimal.Decimal `json:"state_income_tax_withheld"`

	// Investment statements
	Interest                    decimal.Decimal `json:"interest"`
	Dividends                   decimal.Decimal `json:"dividends"`
	QualifiedDividends          decimal.Decimal `json:"qualified_dividends"`
	Unrecaptured1250Gain        decimal.Decimal `json:"unrecaptured_1250_gain"`
	Section199ADividends        decimal.Decimal `json:"section_199a_dividends"`
	ForeignTaxPaid              decimal.Decimal `json:"foreign_tax_paid"`
	PrivateActivityBondInterest decimal.Decimal `json:"private_activity_bond_interest"`
	ShortTermCapitalGain        decimal.Decimal `json:"short_term_capital_gain"`
	LongTermCapitalGain         decimal.Decimal `json:"long_term_capital_gain"`
	MiscIncome                  decimal.Decimal `json:"misc_income"`
	RothConversionGain          decimal.Decimal `json:"roth_conversion_gain"`

	// Real estate
	PrimaryHomeTaxes    decimal.Decimal `json:"primary_home_taxes"`
	PrimaryHomeInterest decimal.Decimal `json:"primary_home_interest"`
	RentalIncome        decimal.Decimal `json:"rental_income"`
	RentalIncomes       []RentalIncome  `json:"rental_incomes,omitempty"`
}
