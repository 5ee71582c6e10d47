// Package tables holds the compiled-in per-year tax parameters for the
// federal regular, federal AMT and state regimes.
package tables

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Unbounded is the sentinel boundary for a bracket or threshold with no upper limit
const Unbounded = math.MaxInt64

// ErrYearNotConfigured is returned when a regime has no parameters for the requested year
var ErrYearNotConfigured = errors.New("tax year not configured")

// Bracket is a marginal rate applied to income above Boundary
type Bracket struct {
	Boundary decimal.Decimal `json:"boundary"`
	Rate     decimal.Decimal `json:"rate"`
}

// RegularParameters are the federal regular tax parameters of one year
type RegularParameters struct {
	Brackets              []Bracket
	QDCGThresholds        []Bracket
	LimitThreshold        decimal.Decimal // itemized deduction and exemption phase-out start; Unbounded when none
	Exemption             decimal.Decimal
	StandardDeduction     decimal.Decimal
	SocialSecurityMaxWage decimal.Decimal
	SocialSecurityTaxRate decimal.Decimal
}

// AMTParameters are the federal alternative minimum tax parameters of one year.
// AMT has no standard deduction.
type AMTParameters struct {
	Brackets       []Bracket
	QDCGThresholds []Bracket
	LimitThreshold decimal.Decimal
	Exemption      decimal.Decimal
}

// StateParameters are the state income tax parameters of one year
type StateParameters struct {
	Brackets                   []Bracket
	LimitThreshold             decimal.Decimal
	Exemption                  decimal.Decimal // exemption credit before phase-out
	StandardDeduction          decimal.Decimal
	DisabilityInsuranceMaxWage decimal.Decimal
	DisabilityInsuranceTaxRate decimal.Decimal
}

// Regular returns the federal regular tax parameters for year
func Regular(year int) (RegularParameters, error) {
	p, ok := regularTable[year]
	if !ok {
		return RegularParameters{}, notConfigured("regular", year)
	}
	p.Brackets = cloneBrackets(p.Brackets)
	p.QDCGThresholds = cloneBrackets(p.QDCGThresholds)
	return p, nil
}

// AMT returns the federal alternative minimum tax parameters for year
func AMT(year int) (AMTParameters, error) {
	p, ok := amtTable[year]
	if !ok {
		return AMTParameters{}, notConfigured("AMT", year)
	}
	regular, ok := regularTable[year]
	if !ok {
		return AMTParameters{}, notConfigured("AMT", year)
	}
	p.Brackets = cloneBrackets(p.Brackets)
	p.QDCGThresholds = cloneBrackets(regular.QDCGThresholds)
	return p, nil
}

// State returns the state income tax parameters for year
func State(year int) (StateParameters, error) {
	p, ok := stateTable[year]
	if !ok {
		return StateParameters{}, notConfigured("state", year)
	}
	p.Brackets = cloneBrackets(p.Brackets)
	return p, nil
}

// Years returns, in ascending order, the years configured for every regime
func Years() []int {
	var years []int
	for year := range regularTable {
		if Supports(year) {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

// Supports reports whether year is configured for every regime
func Supports(year int) bool {
	_, regular := regularTable[year]
	_, amt := amtTable[year]
	_, state := stateTable[year]
	return regular && amt && state
}

// Marginal returns the rate of the highest bracket whose boundary is below amount
func Marginal(brackets []Bracket, amount decimal.Decimal) decimal.Decimal {
	for i := len(brackets) - 1; i >= 0; i-- {
		if amount.GreaterThan(brackets[i].Boundary) {
			return brackets[i].Rate
		}
	}
	return decimal.Zero
}

func notConfigured(regime string, year int) error {
	return fmt.Errorf("%w: %s tax year %d", ErrYearNotConfigured, regime, year)
}

func cloneBrackets(in []Bracket) []Bracket {
	return append([]Bracket(nil), in...)
}

func br(boundary int64, r string) Bracket {
	return Bracket{Boundary: decimal.NewFromInt(boundary), Rate: rate(r)}
}

func dollars(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func rate(r string) decimal.Decimal {
	return decimal.RequireFromString(r)
}
