package tui

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// computedMsg carries the summary for one item and delta
type computedMsg struct {
	Item    string
	Delta   decimal.Decimal
	Summary *domain.TaxSummary
	Err     error
}

// extrapolatedMsg carries the series drawn by the chart view
type extrapolatedMsg struct {
	Item          string
	Delta         decimal.Decimal
	Extrapolation *domain.Extrapolation
	Err           error
}
