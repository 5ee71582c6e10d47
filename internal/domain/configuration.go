package domain

import (
	"github.com/shopspring/decimal"
)

// Adjustments holds the scalar carryover and adjustment inputs of a tax year
type Adjustments struct {
	CapitalLossCarryover          decimal.Decimal `yaml:"capital_loss_carryover" json:"capital_loss_carryover"`
	RentalLossCarryover           decimal.Decimal `yaml:"rental_loss_carryover" json:"rental_loss_carryover"`
	InvestmentIncomeModification  decimal.Decimal `yaml:"investment_income_modification" json:"investment_income_modification"`
	StateTaxAdjustmentLastYear    decimal.Decimal `yaml:"state_tax_adjustment_last_year" json:"state_tax_adjustment_last_year"` // negative: refund received, positive: additional tax paid
	CarRegistration               decimal.Decimal `yaml:"car_registration" json:"car_registration"`
	OtherTaxes                    decimal.Decimal `yaml:"other_taxes" json:"other_taxes"`
	Gifts                         decimal.Decimal `yaml:"gifts" json:"gifts"`
	FederalEstimatedTaxPaid       decimal.Decimal `yaml:"federal_estimated_tax_paid" json:"federal_estimated_tax_paid"`
	StateEstimatedTaxPaidLastYear decimal.Decimal `yaml:"state_estimated_tax_paid_last_year" json:"state_estimated_tax_paid_last_year"`
	StateEstimatedTaxPaidThisYear decimal.Decimal `yaml:"state_estimated_tax_paid_this_year" json:"state_estimated_tax_paid_this_year"`
	Penalty                       decimal.Decimal `yaml:"penalty" json:"penalty"`
}

// Configuration represents the complete input of a tax computation
type Configuration struct {
	Year              int                `yaml:"year" json:"year"`
	WageRecords       []WageRecord       `yaml:"form_w2s" json:"form_w2s"`
	InvestmentRecords []InvestmentRecord `yaml:"form_1099s" json:"form_1099s"`
	RealEstate        []RealEstateRecord `yaml:"real_estate" json:"real_estate"`
	Adjustments       `yaml:",inline"`
}

// Documents returns every income document of the configuration
func (c *Configuration) Documents() []Document {
	docs := make([]Document, 0, len(c.WageRecords)+len(c.InvestmentRecords)+len(c.RealEstate))
	for _, w := range c.WageRecords {
		docs = append(docs, w)
	}
	for _, r := range c.InvestmentRecords {
		docs = append(docs, r)
	}
	for _, r := range c.RealEstate {
		docs = append(docs, r)
	}
	return docs
}

// PrimaryResidences returns the real estate records flagged as primary residence
func (c *Configuration) PrimaryResidences() []RealEstateRecord {
	var primary []RealEstateRecord
	for _, r := range c.RealEstate {
		if r.IsPrimary {
			primary = append(primary, r)
		}
	}
	return primary
}

// Clone returns a copy of the configuration that shares no slices with the receiver
func (c *Configuration) Clone() *Configuration {
	clone := *c
	clone.WageRecords = append([]WageRecord(nil), c.WageRecords...)
	clone.InvestmentRecords = append([]InvestmentRecord(nil), c.InvestmentRecords...)
	clone.RealEstate = append([]RealEstateRecord(nil), c.RealEstate...)
	return &clone
}
