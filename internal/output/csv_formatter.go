package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// CSVFormatter writes the tax summary as section,item,amount rows.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(s *domain.TaxSummary) ([]byte, error) {
	if s == nil {
		return nil, errNilSummary
	}
	type row struct {
		section string
		item    string
		amount  decimal.Decimal
	}
	rows := []row{
		{"income", "agi", s.AGI},
		{"income", "capital_gain", s.CapitalGain},
		{"income", "rental_income", s.RentalIncome},
	}
	for _, r := range s.RentalIncomes {
		rows = append(rows, row{"rental", r.ID, r.NetIncome})
	}

	reg := string(domain.RegimeRegular)
	rows = append(rows,
		row{reg, "itemized_deduction", s.Regular.ItemizedDeduction},
		row{reg, "standard_deduction", s.Regular.StandardDeduction},
		row{reg, "qbi_deduction", s.Regular.QBIDeduction},
		row{reg, "taxable_income", s.Regular.TaxableIncome},
		row{reg, "exemption", s.Regular.Exemption},
		row{reg, "tax", s.Regular.Tax},
		row{reg, "additional_medicare_tax", s.Regular.AdditionalMedicareTax},
		row{reg, "net_investment_income_tax", s.Regular.NetInvestmentIncomeTax},
		row{reg, "excess_social_security_tax", s.Regular.ExcessSocialSecurityTax},
		row{reg, "credits", s.Regular.Credits},
		row{reg, "tax_withheld", s.Regular.TaxWithheld},
	)

	amt := string(domain.RegimeAMT)
	rows = append(rows,
		row{amt, "itemized_deduction", s.AMT.ItemizedDeduction},
		row{amt, "taxable_income", s.AMT.TaxableIncome},
		row{amt, "exemption", s.AMT.Exemption},
		row{amt, "tax", s.AMT.Tax},
		row{amt, "owed", s.AMT.Owed},
	)

	st := string(domain.RegimeState)
	rows = append(rows,
		row{st, "adjusted_agi", s.State.AdjustedAGI},
		row{st, "itemized_deduction", s.State.ItemizedDeduction},
		row{st, "standard_deduction", s.State.StandardDeduction},
		row{st, "taxable_income", s.State.TaxableIncome},
		row{st, "exemption", s.State.Exemption},
		row{st, "tax", s.State.Tax},
		row{st, "mental_health_services_tax", s.State.MentalHealthServicesTax},
		row{st, "excess_disability_tax", s.State.ExcessDisabilityTax},
		row{st, "tax_withheld", s.State.TaxWithheld},
	)

	rows = append(rows,
		row{"balance", "federal_tax", s.FederalTax},
		row{"balance", "federal_balance_due", s.FederalBalanceDue},
		row{"balance", "state_balance_due", s.StateBalanceDue},
	)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Amount"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.section, r.item, r.amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
