package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// ConsoleFormatter renders the tax summary as a colored, human readable report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(s *domain.TaxSummary) ([]byte, error) {
	if s == nil {
		return nil, errNilSummary
	}

	var buf bytes.Buffer
	plain := lipgloss.NewStyle()

	fmt.Fprintln(&buf, TitleStyle.Render(fmt.Sprintf("TAX YEAR %d", s.Year)))
	fmt.Fprintln(&buf, "================================")
	writeRow(&buf, plain, "AGI", s.AGI)
	writeRow(&buf, plain, "Capital gain", s.CapitalGain)
	writeRow(&buf, plain, "Rental income", s.RentalIncome)
	for _, r := range s.RentalIncomes {
		writeRow(&buf, MutedStyle, "  "+r.ID, r.NetIncome)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, RegularStyle.Bold(true).Render(domain.RegimeRegular.String()))
	writeRow(&buf, RegularStyle, "Itemized deduction", s.Regular.ItemizedDeduction)
	writeRow(&buf, RegularStyle, "Standard deduction", s.Regular.StandardDeduction)
	if !s.Regular.QBIDeduction.IsZero() {
		writeRow(&buf, RegularStyle, "QBI deduction", s.Regular.QBIDeduction)
	}
	writeRow(&buf, RegularStyle, "Taxable income", s.Regular.TaxableIncome)
	if !s.Regular.Exemption.IsZero() {
		writeRow(&buf, RegularStyle, "Exemption", s.Regular.Exemption)
	}
	writeRow(&buf, RegularStyle, "Tax", s.Regular.Tax)
	writeRow(&buf, SurtaxStyle, "Additional Medicare tax", s.Regular.AdditionalMedicareTax)
	writeRow(&buf, SurtaxStyle, "Net investment income tax", s.Regular.NetInvestmentIncomeTax)
	writeRow(&buf, RegularStyle, "Excess social security tax", s.Regular.ExcessSocialSecurityTax)
	if !s.Regular.Credits.IsZero() {
		writeRow(&buf, RegularStyle, "Credits", s.Regular.Credits)
	}
	writeRow(&buf, RegularStyle, "Tax withheld", s.Regular.TaxWithheld)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, AMTStyle.Bold(true).Render(domain.RegimeAMT.String()))
	writeRow(&buf, AMTStyle, "Itemized deduction", s.AMT.ItemizedDeduction)
	writeRow(&buf, AMTStyle, "Taxable income", s.AMT.TaxableIncome)
	writeRow(&buf, AMTStyle, "Exemption", s.AMT.Exemption)
	writeRow(&buf, AMTStyle, "Tentative minimum tax", s.AMT.Tax)
	writeRow(&buf, AMTStyle, "AMT owed", s.AMT.Owed)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, StateStyle.Bold(true).Render(domain.RegimeState.String()))
	writeRow(&buf, StateStyle, "Adjusted AGI", s.State.AdjustedAGI)
	writeRow(&buf, StateStyle, "Itemized deduction", s.State.ItemizedDeduction)
	writeRow(&buf, StateStyle, "Standard deduction", s.State.StandardDeduction)
	writeRow(&buf, StateStyle, "Taxable income", s.State.TaxableIncome)
	writeRow(&buf, StateStyle, "Exemption credit", s.State.Exemption)
	writeRow(&buf, StateStyle, "Tax", s.State.Tax)
	if !s.State.MentalHealthServicesTax.IsZero() {
		writeRow(&buf, SurtaxStyle, "Mental health services tax", s.State.MentalHealthServicesTax)
	}
	writeRow(&buf, StateStyle, "Excess SDI", s.State.ExcessDisabilityTax)
	writeRow(&buf, StateStyle, "Tax withheld", s.State.TaxWithheld)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "================================")
	writeRow(&buf, plain, "Federal tax", s.FederalTax)
	writeRow(&buf, balanceStyle(s.FederalBalanceDue), "Federal balance due", s.FederalBalanceDue)
	writeRow(&buf, balanceStyle(s.StateBalanceDue), "State balance due", s.StateBalanceDue)

	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, style lipgloss.Style, label string, amount decimal.Decimal) {
	fmt.Fprintln(buf, style.Render(fmt.Sprintf("  %-28s %16s", label, FormatCurrency(amount))))
}

// balanceStyle highlights a refund in green and an amount owed in red
func balanceStyle(balance decimal.Decimal) lipgloss.Style {
	switch {
	case balance.IsPositive():
		return AMTStyle.Bold(true)
	case balance.IsNegative():
		return RegularStyle.Bold(true)
	default:
		return TitleStyle
	}
}
