package calculation

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// ErrUnknownItem is returned when an extrapolation names an input that cannot be varied
var ErrUnknownItem = errors.New("unknown extrapolation item")

// extrapolatedID identifies the synthetic record carrying an extrapolation delta
const extrapolatedID = "extrapolated"

// Inputs that can be varied by Extrapolate
const (
	ItemLongTermCapitalGain  = "long_term_capital_gain"
	ItemShortTermCapitalGain = "short_term_capital_gain"
	ItemQualifiedDividends   = "qualified_dividends"
	ItemWages                = "wages"
	ItemInterest             = "interest"
	ItemRothConversionGain   = "roth_conversion_gain"
	ItemMisc                 = "misc"
)

// ExtrapolationItems lists the inputs Extrapolate can vary
func ExtrapolationItems() []string {
	return []string{
		ItemLongTermCapitalGain,
		ItemShortTermCapitalGain,
		ItemQualifiedDividends,
		ItemWages,
		ItemInterest,
		ItemRothConversionGain,
		ItemMisc,
	}
}

// DefaultDeltas returns 0 to 200,000 in steps of 10,000
func DefaultDeltas() []decimal.Decimal {
	return Deltas(decimal.Zero, decimal.NewFromInt(200000), decimal.NewFromInt(10000))
}

// Deltas returns from, from+step, ... up to and including to
func Deltas(from, to, step decimal.Decimal) []decimal.Decimal {
	if !step.IsPositive() || from.GreaterThan(to) {
		return []decimal.Decimal{from}
	}
	var deltas []decimal.Decimal
	for d := from; d.LessThanOrEqual(to); d = d.Add(step) {
		deltas = append(deltas, d)
	}
	return deltas
}

// CalculationEngine computes the regular, AMT and state taxes of a year
type CalculationEngine struct {
	Logger  Logger
	Workers int // concurrent extrapolation points; GOMAXPROCS when not positive
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Compute runs all three regimes on cfg and reconciles the balances due
func (ce *CalculationEngine) Compute(ctx context.Context, cfg *domain.Configuration) (*domain.TaxSummary, error) {
	return ce.compute(ctx, cfg, ce.logger())
}

func (ce *CalculationEngine) compute(ctx context.Context, cfg *domain.Configuration, logger Logger) (*domain.TaxSummary, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile := NewTaxProfile(cfg, logger)

	regular, err := NewRegularTaxComputer(profile, logger)
	if err != nil {
		return nil, err
	}
	amt, err := NewAMTTaxComputer(profile, logger)
	if err != nil {
		return nil, err
	}
	state, err := NewStateTaxComputer(profile, logger)
	if err != nil {
		return nil, err
	}

	federalTax := decimal.Max(regular.Tax(), amt.Tax())
	balance := decimal.Sum(federalTax, regular.AdditionalMedicareTax(), regular.NetInvestmentIncomeTax()).
		Sub(regular.Credits()).
		Sub(regular.TaxWithheld()).
		Add(profile.Penalty)

	return &domain.TaxSummary{
		Year:              cfg.Year,
		AGI:               profile.AGI,
		CapitalGain:       profile.CapitalGain,
		RentalIncome:      profile.RentalIncome,
		RentalIncomes:     profile.RentalIncomes,
		Regular:           regular.Result(),
		AMT:               amt.Result(regular.Tax()),
		State:             state.Result(),
		FederalTax:        federalTax,
		FederalBalanceDue: balance,
		StateBalanceDue:   state.BalanceDue(),
	}, nil
}

// ComputeWithDelta computes cfg with item increased by delta, leaving cfg unchanged
func (ce *CalculationEngine) ComputeWithDelta(ctx context.Context, cfg *domain.Configuration, item string, delta decimal.Decimal) (*domain.TaxSummary, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	shifted, err := withDelta(cfg, item, delta)
	if err != nil {
		return nil, err
	}
	return ce.compute(ctx, shifted, NopLogger{})
}

// Extrapolate recomputes cfg with item increased by each delta. Points are
// computed concurrently and returned sorted by delta.
func (ce *CalculationEngine) Extrapolate(ctx context.Context, cfg *domain.Configuration, item string, deltas []decimal.Decimal) (*domain.Extrapolation, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if _, err := withDelta(cfg, item, decimal.Zero); err != nil {
		return nil, err
	}
	if len(deltas) == 0 {
		deltas = DefaultDeltas()
	}

	workers := ce.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	points := make([]domain.ExtrapolationPoint, len(deltas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, delta := range deltas {
		g.Go(func() error {
			shifted, err := withDelta(cfg, item, delta)
			if err != nil {
				return err
			}
			summary, err := ce.compute(gctx, shifted, NopLogger{})
			if err != nil {
				return fmt.Errorf("extrapolating %s by %s: %w", item, delta, err)
			}
			points[i] = domain.ExtrapolationPoint{
				Delta:      delta,
				RegularTax: summary.Regular.Tax,
				AMTTax:     summary.AMT.Tax,
				FederalTax: summary.FederalTax,
				StateTax:   summary.State.Tax,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Delta.LessThan(points[j].Delta)
	})
	ce.logger().Infof("extrapolated %s over %d points", item, len(points))

	return &domain.Extrapolation{Year: cfg.Year, Item: item, Points: points}, nil
}

// withDelta returns a copy of cfg carrying one more record worth delta of item
func withDelta(cfg *domain.Configuration, item string, delta decimal.Decimal) (*domain.Configuration, error) {
	shifted := cfg.Clone()
	if item == ItemWages {
		shifted.WageRecords = append(shifted.WageRecords, domain.WageRecord{ID: extrapolatedID, Wages: delta})
		return shifted, nil
	}

	record := domain.InvestmentRecord{ID: extrapolatedID}
	switch item {
	case ItemLongTermCapitalGain:
		record.LongTermCapitalGain = delta
	case ItemShortTermCapitalGain:
		record.ShortTermCapitalGain = delta
	case ItemQualifiedDividends:
		// qualified dividends are also ordinary dividends
		record.Dividends = delta
		record.QualifiedDividends = delta
	case ItemInterest:
		record.Interest = delta
	case ItemRothConversionGain:
		record.RothConversionGain = delta
	case ItemMisc:
		record.Misc = delta
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	shifted.InvestmentRecords = append(shifted.InvestmentRecords, record)
	return shifted, nil
}
