package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/tax-calculator/internal/domain"
)

var cent = decimal.RequireFromString("0.01")

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	w := d(want)
	assert.True(t, got.Sub(w).Abs().LessThan(cent),
		append([]any{"expected %s, got %s", w.String(), got.String()}, msgAndArgs...)...)
}

// demoConfiguration mirrors the example input shipped with the CLI
func demoConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Year:        2019,
		WageRecords: []domain.WageRecord{{ID: "Company", Wages: d("1000")}},
		InvestmentRecords: []domain.InvestmentRecord{{
			ID:                   "Bank",
			Dividends:            d("100"),
			ShortTermCapitalGain: d("500"),
			LongTermCapitalGain:  d("5000"),
		}},
		RealEstate: []domain.RealEstateRecord{
			{ID: "Primary", IsPrimary: true, Taxes: d("10000"), Interest: d("5000")},
			{ID: "Rental", Rents: d("20000"), Taxes: d("10000"), Interest: d("10000"), Insurance: d("1000"), Depreciation: d("3000")},
		},
	}
}

// highIncomeConfiguration has two employers, a profitable rental and every surtax in play
func highIncomeConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Year: 2019,
		WageRecords: []domain.WageRecord{
			{
				ID:                        "Employer",
				Wages:                     d("300000"),
				FederalIncomeTaxWithheld:  d("70000"),
				SocialSecurityWages:       d("132900"),
				SocialSecurityTaxWithheld: d("8239.80"),
				MedicareWages:             d("310000"),
				MedicareTaxWithheld:       d("5395"),
				HSA:                       d("3500"),
				SDI:                       d("1183.71"),
				StateWages:                d("300000"),
				StateIncomeTaxWithheld:    d("25000"),
			},
			{
				ID:                        "Consulting",
				Wages:                     d("50000"),
				SocialSecurityWages:       d("50000"),
				SocialSecurityTaxWithheld: d("3100"),
				MedicareWages:             d("50000"),
				MedicareTaxWithheld:       d("725"),
				SDI:                       d("500"),
				StateWages:                d("50000"),
				StateIncomeTaxWithheld:    d("3000"),
			},
		},
		InvestmentRecords: []domain.InvestmentRecord{{
			ID:                       "Brokerage",
			Interest:                 d("5000"),
			Dividends:                d("20000"),
			QualifiedDividends:       d("15000"),
			CapitalGainDistributions: d("1000"),
			ShortTermCapitalGain:     d("2000"),
			LongTermCapitalGain:      d("50000"),
			FederalIncomeTaxWithheld: d("100"),
			ForeignTaxPaid:           d("200"),
		}},
		RealEstate: []domain.RealEstateRecord{
			{ID: "Home", IsPrimary: true, Taxes: d("12000"), Interest: d("20000")},
			{
				ID:           "Condo",
				Rents:        d("36000"),
				Taxes:        d("6000"),
				Interest:     d("8000"),
				Insurance:    d("1200"),
				Management:   d("2400"),
				Repairs:      d("1500"),
				Depreciation: d("9000"),
			},
		},
		Adjustments: domain.Adjustments{
			Gifts:                         d("5000"),
			StateTaxAdjustmentLastYear:    d("-800"),
			FederalEstimatedTaxPaid:       d("2000"),
			StateEstimatedTaxPaidThisYear: d("1000"),
			CarRegistration:               d("300"),
		},
	}
}

// preReformConfiguration exercises the personal exemption and itemized deduction phase-outs
func preReformConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Year: 2016,
		WageRecords: []domain.WageRecord{{
			ID:                        "Employer",
			Wages:                     d("280000"),
			FederalIncomeTaxWithheld:  d("60000"),
			SocialSecurityWages:       d("118500"),
			SocialSecurityTaxWithheld: d("7347"),
			MedicareWages:             d("280000"),
			MedicareTaxWithheld:       d("4120"),
			SDI:                       d("960.68"),
			StateWages:                d("280000"),
			StateIncomeTaxWithheld:    d("22000"),
		}},
		InvestmentRecords: []domain.InvestmentRecord{{
			ID:                          "Brokerage",
			Interest:                    d("3000"),
			Dividends:                   d("8000"),
			QualifiedDividends:          d("6000"),
			LongTermCapitalGain:         d("12000"),
			ShortTermCapitalGain:        d("-1000"),
			ForeignTaxPaid:              d("150"),
			PrivateActivityBondInterest: d("400"),
		}},
		RealEstate: []domain.RealEstateRecord{
			{ID: "Home", IsPrimary: true, Taxes: d("9000"), Interest: d("18000")},
		},
		Adjustments: domain.Adjustments{
			Gifts:                         d("3000"),
			StateTaxAdjustmentLastYear:    d("1200"),
			StateEstimatedTaxPaidLastYear: d("500"),
		},
	}
}

// amtConfiguration has a large long-term gain and state taxes that AMT disallows
func amtConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Year: 2017,
		WageRecords: []domain.WageRecord{{
			ID:                        "Employer",
			Wages:                     d("200000"),
			FederalIncomeTaxWithheld:  d("40000"),
			SocialSecurityWages:       d("127200"),
			SocialSecurityTaxWithheld: d("7886.40"),
			MedicareWages:             d("200000"),
			MedicareTaxWithheld:       d("2900"),
			SDI:                       d("998.12"),
			StateWages:                d("200000"),
			StateIncomeTaxWithheld:    d("16000"),
		}},
		InvestmentRecords: []domain.InvestmentRecord{{
			ID:                   "Brokerage",
			Dividends:            d("2000"),
			QualifiedDividends:   d("2000"),
			LongTermCapitalGain:  d("100000"),
			Unrecaptured1250Gain: d("5000"),
		}},
		RealEstate: []domain.RealEstateRecord{
			{ID: "Home", IsPrimary: true, Taxes: d("15000"), Interest: d("4000")},
		},
		Adjustments: domain.Adjustments{Gifts: d("1000")},
	}
}
