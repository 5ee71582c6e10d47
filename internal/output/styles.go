package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// Regime colors used by the console report and the extrapolation chart
var (
	ColorRegular = lipgloss.Color("2") // green
	ColorSurtax  = lipgloss.Color("4") // blue
	ColorAMT     = lipgloss.Color("1") // red
	ColorState   = lipgloss.Color("6") // cyan
	ColorMuted   = lipgloss.Color("8")

	TitleStyle   = lipgloss.NewStyle().Bold(true)
	RegularStyle = lipgloss.NewStyle().Foreground(ColorRegular)
	SurtaxStyle  = lipgloss.NewStyle().Foreground(ColorSurtax)
	AMTStyle     = lipgloss.NewStyle().Foreground(ColorAMT)
	StateStyle   = lipgloss.NewStyle().Foreground(ColorState)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// RegimeStyle returns the style used for lines belonging to a regime
func RegimeStyle(r domain.Regime) lipgloss.Style {
	switch r {
	case domain.RegimeRegular:
		return RegularStyle
	case domain.RegimeAMT:
		return AMTStyle
	case domain.RegimeState:
		return StateStyle
	default:
		return lipgloss.NewStyle()
	}
}
