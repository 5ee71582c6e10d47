package calculation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/tax-calculator/internal/domain"
)

func TestNewTaxProfileDemo(t *testing.T) {
	p := NewTaxProfile(demoConfiguration(), nil)

	assertMoney(t, "1000", p.Wages)
	assertMoney(t, "5500", p.CapitalGain)
	assertMoney(t, "-4000", p.RentalIncome)
	assertMoney(t, "0", p.RentalIncomeOffset)
	assertMoney(t, "10000", p.PrimaryHomeTaxes)
	assertMoney(t, "5000", p.PrimaryHomeInterest)
	assertMoney(t, "6600", p.AGI)

	require.Len(t, p.RentalIncomes, 1)
	assert.Equal(t, "Rental", p.RentalIncomes[0].ID)
	assertMoney(t, "-4000", p.RentalIncomes[0].NetIncome)
}

func TestNewTaxProfileSums(t *testing.T) {
	p := NewTaxProfile(highIncomeConfiguration(), NopLogger{})

	assertMoney(t, "350000", p.Wages)
	assertMoney(t, "70100", p.FederalIncomeTaxWithheld)
	assertMoney(t, "51000", p.LongTermCapitalGain, "distributions count as long-term gain")
	assertMoney(t, "53000", p.CapitalGain)
	assertMoney(t, "7900", p.RentalIncome)
	assertMoney(t, "800", p.TaxableStateRefund)
	assertMoney(t, "0", p.StateTaxDueLastYear)
	assertMoney(t, "436700", p.AGI)
}

func TestNewTaxProfileStateAdjustment(t *testing.T) {
	cfg := &domain.Configuration{Year: 2019}
	cfg.StateTaxAdjustmentLastYear = d("1200")
	p := NewTaxProfile(cfg, nil)
	assertMoney(t, "0", p.TaxableStateRefund)
	assertMoney(t, "1200", p.StateTaxDueLastYear)
	assertMoney(t, "0", p.AGI)

	cfg.StateTaxAdjustmentLastYear = d("-1200")
	p = NewTaxProfile(cfg, nil)
	assertMoney(t, "1200", p.TaxableStateRefund)
	assertMoney(t, "0", p.StateTaxDueLastYear)
	assertMoney(t, "1200", p.AGI)
}

func TestCapitalLossFloor(t *testing.T) {
	tests := []struct {
		name      string
		short     string
		long      string
		carryover string
		want      string
	}{
		{"gain", "1000", "2000", "0", "3000"},
		{"small loss", "-1000", "-500", "0", "-1500"},
		{"carryover beyond floor", "-2000", "1000", "10000", "-3000"},
		{"loss exactly at floor", "-3000", "0", "0", "-3000"},
		{"carryover absorbed by gain", "0", "20000", "5000", "15000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.Configuration{
				Year: 2019,
				InvestmentRecords: []domain.InvestmentRecord{{
					ShortTermCapitalGain: d(tt.short),
					LongTermCapitalGain:  d(tt.long),
				}},
			}
			cfg.CapitalLossCarryover = d(tt.carryover)

			p := NewTaxProfile(cfg, nil)
			assertMoney(t, tt.want, p.CapitalGain)
			assert.True(t, p.CapitalGain.GreaterThanOrEqual(CapitalLossLimit))
		})
	}
}

func TestRentalLossCarryover(t *testing.T) {
	cfg := &domain.Configuration{
		Year: 2019,
		RealEstate: []domain.RealEstateRecord{
			{ID: "A", Rents: d("30000"), Taxes: d("5000")},
			{ID: "B", Rents: d("10000"), Repairs: d("12000")},
		},
	}
	cfg.RentalLossCarryover = d("4000")

	p := NewTaxProfile(cfg, nil)
	assertMoney(t, "23000", p.RentalIncome)
	assertMoney(t, "19000", p.RentalIncomeOffset)

	cfg.RentalLossCarryover = d("50000")
	p = NewTaxProfile(cfg, nil)
	assertMoney(t, "0", p.RentalIncomeOffset)
}

func TestAggregationIgnoresRecordOrder(t *testing.T) {
	base := highIncomeConfiguration()
	base.InvestmentRecords = append(base.InvestmentRecords,
		domain.InvestmentRecord{ID: "Bank", Interest: d("1200"), FederalIncomeTaxWithheld: d("12")},
		domain.InvestmentRecord{ID: "Bank", Dividends: d("300"), QualifiedDividends: d("300")},
	)
	want := NewTaxProfile(base, nil)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := base.Clone()
		rng.Shuffle(len(shuffled.WageRecords), func(a, b int) {
			shuffled.WageRecords[a], shuffled.WageRecords[b] = shuffled.WageRecords[b], shuffled.WageRecords[a]
		})
		rng.Shuffle(len(shuffled.InvestmentRecords), func(a, b int) {
			shuffled.InvestmentRecords[a], shuffled.InvestmentRecords[b] = shuffled.InvestmentRecords[b], shuffled.InvestmentRecords[a]
		})
		rng.Shuffle(len(shuffled.RealEstate), func(a, b int) {
			shuffled.RealEstate[a], shuffled.RealEstate[b] = shuffled.RealEstate[b], shuffled.RealEstate[a]
		})

		got := NewTaxProfile(shuffled, nil)
		assert.True(t, want.AGI.Equal(got.AGI))
		assert.True(t, want.Wages.Equal(got.Wages))
		assert.True(t, want.Interest.Equal(got.Interest))
		assert.True(t, want.FederalIncomeTaxWithheld.Equal(got.FederalIncomeTaxWithheld))
		assert.True(t, want.CapitalGain.Equal(got.CapitalGain))
		assert.True(t, want.RentalIncome.Equal(got.RentalIncome))
		assert.True(t, want.PrimaryHomeTaxes.Equal(got.PrimaryHomeTaxes))
	}
}

func TestEmptyRecordsContributeNothing(t *testing.T) {
	cfg := &domain.Configuration{
		Year:              2019,
		WageRecords:       []domain.WageRecord{{ID: "placeholder"}},
		InvestmentRecords: []domain.InvestmentRecord{{ID: "placeholder"}},
		RealEstate:        []domain.RealEstateRecord{{ID: "placeholder", IsPrimary: true}},
	}
	p := NewTaxProfile(cfg, nil)
	assert.True(t, p.AGI.IsZero())
	assert.True(t, p.CapitalGain.IsZero())
	assert.Empty(t, p.RentalIncomes)
}
