package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/tax-calculator/internal/config"
)

// TestFullYearFromFile runs the parser and the engine end to end on a YAML input
func TestFullYearFromFile(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../config/testdata/full.yaml")
	require.NoError(t, err)

	engine := NewCalculationEngine()
	fromFile, err := engine.Compute(context.Background(), cfg)
	require.NoError(t, err)

	t.Run("matches in-memory configuration", func(t *testing.T) {
		inMemory, err := engine.Compute(context.Background(), highIncomeConfiguration())
		require.NoError(t, err)
		assert.Equal(t, inMemory.AGI.String(), fromFile.AGI.String())
		assert.Equal(t, inMemory.Regular.Tax.String(), fromFile.Regular.Tax.String())
		assert.Equal(t, inMemory.AMT.Tax.String(), fromFile.AMT.Tax.String())
		assert.Equal(t, inMemory.State.Tax.String(), fromFile.State.Tax.String())
		assert.Equal(t, inMemory.FederalBalanceDue.String(), fromFile.FederalBalanceDue.String())
	})

	t.Run("regular", func(t *testing.T) {
		assertMoney(t, "436700", fromFile.AGI)
		assertMoney(t, "35200", fromFile.Regular.ItemizedDeduction)
		assertMoney(t, "1580", fromFile.Regular.QBIDeduction)
		assertMoney(t, "399920", fromFile.Regular.TaxableIncome)
		assertMoney(t, "101965.50", fromFile.Regular.Tax)
		assertMoney(t, "1440", fromFile.Regular.AdditionalMedicareTax)
		assertMoney(t, "3042.33", fromFile.Regular.NetInvestmentIncomeTax)
		assertMoney(t, "3100", fromFile.Regular.ExcessSocialSecurityTax)
	})

	t.Run("amt", func(t *testing.T) {
		assertMoney(t, "410900", fromFile.AMT.TaxableIncome)
		assertMoney(t, "82500", fromFile.AMT.Tax)
		assert.True(t, fromFile.AMT.Owed.IsZero())
	})

	t.Run("state", func(t *testing.T) {
		assertMoney(t, "439400", fromFile.State.AdjustedAGI)
		assertMoney(t, "416269.96", fromFile.State.TaxableIncome)
		assertMoney(t, "37708.60", fromFile.State.Tax)
		assertMoney(t, "500", fromFile.State.ExcessDisabilityTax)
	})

	t.Run("balances", func(t *testing.T) {
		assertMoney(t, "101965.50", fromFile.FederalTax)
		assertMoney(t, "30347.83", fromFile.FederalBalanceDue)
		assertMoney(t, "8208.60", fromFile.StateBalanceDue)
	})

	require.Len(t, fromFile.RentalIncomes, 1)
	assert.Equal(t, "Condo", fromFile.RentalIncomes[0].ID)
	assertMoney(t, "7900", fromFile.RentalIncomes[0].NetIncome)
}
