package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/output"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(output.ColorRegular)
	helpStyle     = lipgloss.NewStyle().MarginTop(1)
)

// View renders the current state (required by tea.Model interface)
func (m Model) View() string {
	var b strings.Builder

	title := "What-if"
	if m.config != nil {
		title = fmt.Sprintf("What-if %d", m.config.Year)
	}
	b.WriteString(output.TitleStyle.Render(title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.itemIdx {
			b.WriteString(selectedStyle.Render("> " + output.ItemLabel(item)))
		} else {
			b.WriteString("  " + output.ItemLabel(item))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nAdditional %s: %s  %s\n\n",
		output.ItemLabel(m.Item()),
		output.FormatDollars(m.delta),
		output.MutedStyle.Render("(step "+output.FormatDollars(m.step)+")"))

	switch {
	case m.err != nil:
		b.WriteString(output.AMTStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.current == nil || m.baseline == nil:
		b.WriteString(output.MutedStyle.Render("Calculating..."))
		b.WriteString("\n")
	default:
		b.WriteString(m.comparisonView())
	}

	if m.showChart && m.extrapolation != nil && len(m.extrapolation.Points) > 1 {
		b.WriteString("\n")
		chart := output.ExtrapolationChart(m.extrapolation, m.width, max(8, m.height/3))
		b.WriteString(chart.Render())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

type comparisonRow struct {
	label  string
	style  lipgloss.Style
	amount func(*domain.TaxSummary) decimal.Decimal
}

var comparisonRows = []comparisonRow{
	{"AGI", lipgloss.NewStyle(), func(s *domain.TaxSummary) decimal.Decimal { return s.AGI }},
	{"Regular tax", output.RegularStyle, func(s *domain.TaxSummary) decimal.Decimal { return s.Regular.Tax }},
	{"AMT", output.AMTStyle, func(s *domain.TaxSummary) decimal.Decimal { return s.AMT.Tax }},
	{"Federal tax", lipgloss.NewStyle(), func(s *domain.TaxSummary) decimal.Decimal { return s.FederalTax }},
	{"Medicare surtax", output.SurtaxStyle, func(s *domain.TaxSummary) decimal.Decimal { return s.Regular.AdditionalMedicareTax }},
	{"NIIT", output.SurtaxStyle, func(s *domain.TaxSummary) decimal.Decimal { return s.Regular.NetInvestmentIncomeTax }},
	{"State tax", output.StateStyle, func(s *domain.TaxSummary) decimal.Decimal { return s.State.Tax }},
	{"Federal balance due", lipgloss.NewStyle(), func(s *domain.TaxSummary) decimal.Decimal { return s.FederalBalanceDue }},
	{"State balance due", lipgloss.NewStyle(), func(s *domain.TaxSummary) decimal.Decimal { return s.StateBalanceDue }},
}

func (m Model) comparisonView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %14s %14s %14s\n", "", "Baseline", "What-if", "Change")
	for _, row := range comparisonRows {
		base, now := row.amount(m.baseline), row.amount(m.current)
		line := fmt.Sprintf("%-22s %14s %14s %14s", row.label,
			output.FormatDollars(base), output.FormatDollars(now), output.FormatDollars(now.Sub(base)))
		b.WriteString(row.style.Render(line))
		b.WriteString("\n")
	}
	if m.delta.IsPositive() {
		change := totalTax(m.current).Sub(totalTax(m.baseline))
		fmt.Fprintf(&b, "\nMarginal rate: %s\n", output.FormatPercentage(change.DivRound(m.delta, 4)))
	}
	return b.String()
}

// totalTax is every tax of the year, federal and state
func totalTax(s *domain.TaxSummary) decimal.Decimal {
	return decimal.Sum(s.FederalTax,
		s.Regular.AdditionalMedicareTax,
		s.Regular.NetInvestmentIncomeTax,
		s.State.Tax,
		s.State.MentalHealthServicesTax)
}
