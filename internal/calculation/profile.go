package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// CapitalLossLimit is the floor on the capital loss recognized in a single year
var CapitalLossLimit = decimal.NewFromInt(-3000)

// TaxProfile is the aggregate of every income document and adjustment of one year.
// It is built once per computation and never modified afterwards.
type TaxProfile struct {
	Year int
	domain.Totals

	CapitalLossCarryover          decimal.Decimal
	RentalLossCarryover           decimal.Decimal
	InvestmentIncomeModification  decimal.Decimal
	TaxableStateRefund            decimal.Decimal
	StateTaxDueLastYear           decimal.Decimal
	CarRegistration               decimal.Decimal
	OtherTaxes                    decimal.Decimal
	Gifts                         decimal.Decimal
	FederalEstimatedTaxPaid       decimal.Decimal
	StateEstimatedTaxPaidLastYear decimal.Decimal
	StateEstimatedTaxPaidThisYear decimal.Decimal
	Penalty                       decimal.Decimal

	// Derived
	CapitalGain        decimal.Decimal // short + long term gain less carryover, floored at CapitalLossLimit
	RentalIncomeOffset decimal.Decimal // rental income less carryover, floored at zero
	AGI                decimal.Decimal
}

// NewTaxProfile aggregates the documents and adjustments of cfg
func NewTaxProfile(cfg *domain.Configuration, logger Logger) *TaxProfile {
	if logger == nil {
		logger = NopLogger{}
	}

	p := &TaxProfile{Year: cfg.Year}
	for _, doc := range cfg.Documents() {
		doc.Contribute(&p.Totals)
	}

	adj := cfg.Adjustments
	p.CapitalLossCarryover = adj.CapitalLossCarryover
	p.RentalLossCarryover = adj.RentalLossCarryover
	p.InvestmentIncomeModification = adj.InvestmentIncomeModification
	p.TaxableStateRefund = decimal.Max(decimal.Zero, adj.StateTaxAdjustmentLastYear.Neg())
	p.StateTaxDueLastYear = decimal.Max(decimal.Zero, adj.StateTaxAdjustmentLastYear)
	p.CarRegistration = adj.CarRegistration
	p.OtherTaxes = adj.OtherTaxes
	p.Gifts = adj.Gifts
	p.FederalEstimatedTaxPaid = adj.FederalEstimatedTaxPaid
	p.StateEstimatedTaxPaidLastYear = adj.StateEstimatedTaxPaidLastYear
	p.StateEstimatedTaxPaidThisYear = adj.StateEstimatedTaxPaidThisYear
	p.Penalty = adj.Penalty

	p.CapitalGain = decimal.Max(CapitalLossLimit,
		p.ShortTermCapitalGain.Add(p.LongTermCapitalGain).Sub(p.CapitalLossCarryover))
	p.RentalIncomeOffset = decimal.Max(decimal.Zero, p.RentalIncome.Sub(p.RentalLossCarryover))
	p.AGI = decimal.Sum(
		p.Wages,
		p.Interest,
		p.Dividends,
		p.CapitalGain,
		p.MiscIncome,
		p.RentalIncomeOffset,
		p.TaxableStateRefund,
		p.RothConversionGain,
	)

	logger.Debugf("wages = %s", p.Wages.StringFixed(0))
	logger.Debugf("interest = %s, dividends = %s", p.Interest.StringFixed(0), p.Dividends.StringFixed(0))
	logger.Debugf("capital_gain = %s (short %s, long %s, carryover %s)",
		p.CapitalGain.StringFixed(0), p.ShortTermCapitalGain.StringFixed(0),
		p.LongTermCapitalGain.StringFixed(0), p.CapitalLossCarryover.StringFixed(0))
	for _, r := range p.RentalIncomes {
		logger.Debugf("rental %s net income = %s", r.ID, r.NetIncome.StringFixed(0))
	}
	logger.Debugf("rental_income_offset = %s", p.RentalIncomeOffset.StringFixed(0))
	logger.Debugf("taxable_state_refund = %s", p.TaxableStateRefund.StringFixed(0))
	logger.Debugf("agi = %s", p.AGI.StringFixed(0))

	return p
}

// Gains returns the inputs of the qualified dividends and capital gains computation
func (p *TaxProfile) Gains() QDCG {
	return QDCG{
		QualifiedDividends:   p.QualifiedDividends,
		CapitalGain:          p.CapitalGain,
		LongTermCapitalGain:  p.LongTermCapitalGain,
		Unrecaptured1250Gain: p.Unrecaptured1250Gain,
	}
}
