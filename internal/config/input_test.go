package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/tables"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Example(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("testdata/example.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2019, config.Year)
	require.Len(t, config.WageRecords, 1)
	assert.Equal(t, "Company", config.WageRecords[0].ID)
	assert.True(t, config.WageRecords[0].Wages.Equal(decimal.NewFromInt(1000)))
	require.Len(t, config.InvestmentRecords, 1)
	assert.True(t, config.InvestmentRecords[0].LongTermCapitalGain.Equal(decimal.NewFromInt(5000)))
	require.Len(t, config.RealEstate, 2)
	assert.True(t, config.RealEstate[0].IsPrimary)
	assert.False(t, config.RealEstate[1].IsPrimary)
	assert.True(t, config.RealEstate[1].Depreciation.Equal(decimal.NewFromInt(3000)))
}

func TestLoadFromFile_MatchesExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	loaded, err := parser.LoadFromFile("testdata/example.yaml")
	require.NoError(t, err)
	example := parser.CreateExampleConfiguration()

	assert.Equal(t, example.Year, loaded.Year)
	require.Len(t, loaded.RealEstate, len(example.RealEstate))
	for i := range example.RealEstate {
		assert.True(t, example.RealEstate[i].NetRentalIncome().Equal(loaded.RealEstate[i].NetRentalIncome()))
	}
}

func TestLoadFromFile_DecimalsAndAdjustments(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("testdata/full.yaml")
	require.NoError(t, err)

	require.Len(t, config.WageRecords, 2)
	assert.Equal(t, "8239.8", config.WageRecords[0].SocialSecurityTaxWithheld.String())
	assert.Equal(t, "1183.71", config.WageRecords[0].SDI.String())
	assert.True(t, config.Gifts.Equal(decimal.NewFromInt(5000)))
	assert.True(t, config.StateTaxAdjustmentLastYear.Equal(decimal.NewFromInt(-800)))
	assert.True(t, config.CarRegistration.Equal(decimal.NewFromInt(300)))
	assert.True(t, config.Penalty.IsZero())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	// tabs are not valid YAML indentation
	name := writeTempConfig(t, "year: 2019\nform_w2s:\n\t- id: Company\n\t  wages: 10\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(name)

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidAmount(t *testing.T) {
	name := writeTempConfig(t, "year: 2019\nform_w2s:\n  - id: Company\n    wages: lots\n")

	parser := NewInputParser()
	_, err := parser.LoadFromFile(name)
	assert.Error(t, err)
}

func TestParse_JSON(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte(`{"year": 2018, "form_w2s": [{"id": "A", "wages": 50000}], "gifts": 250}`))
	require.NoError(t, err)
	assert.Equal(t, 2018, config.Year)
	assert.True(t, config.Gifts.Equal(decimal.NewFromInt(250)))
}

func TestParse_ZeroIncomeIsValid(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte("year: 2020\n"))
	require.NoError(t, err)
	assert.Empty(t, config.WageRecords)
}

func TestValidateConfiguration_Example(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))
}

func TestValidateConfiguration_Year(t *testing.T) {
	parser := NewInputParser()

	config := parser.CreateExampleConfiguration()
	config.Year = 0
	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year is required")

	config.Year = 2009
	err = parser.ValidateConfiguration(config)
	assert.ErrorIs(t, err, tables.ErrYearNotConfigured)
	assert.Contains(t, err.Error(), "2009")
}

func TestValidateConfiguration_Negative(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Configuration)
		want   string
	}{
		{
			name:   "negative wages",
			mutate: func(c *domain.Configuration) { c.WageRecords[0].Wages = decimal.NewFromInt(-1) },
			want:   "wages cannot be negative",
		},
		{
			name:   "negative dividends",
			mutate: func(c *domain.Configuration) { c.InvestmentRecords[0].Dividends = decimal.NewFromInt(-5) },
			want:   "dividends cannot be negative",
		},
		{
			name:   "negative rental expense",
			mutate: func(c *domain.Configuration) { c.RealEstate[1].Repairs = decimal.NewFromInt(-5) },
			want:   "repairs cannot be negative",
		},
		{
			name:   "negative gifts",
			mutate: func(c *domain.Configuration) { c.Gifts = decimal.NewFromInt(-100) },
			want:   "gifts cannot be negative",
		},
		{
			name:   "negative carryover",
			mutate: func(c *domain.Configuration) { c.CapitalLossCarryover = decimal.NewFromInt(-100) },
			want:   "capital loss carryover cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfiguration_SignedValuesAllowed(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.InvestmentRecords[0].ShortTermCapitalGain = decimal.NewFromInt(-2500)
	config.InvestmentRecords[0].Misc = decimal.NewFromInt(-10)
	config.StateTaxAdjustmentLastYear = decimal.NewFromInt(-300)
	config.InvestmentIncomeModification = decimal.NewFromInt(-40)

	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestValidateConfiguration_OnePrimaryResidence(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.RealEstate[1].IsPrimary = true

	err := parser.ValidateConfiguration(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one primary residence")
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.Equal(t, 2019, config.Year)
	assert.Len(t, config.WageRecords, 1)
	assert.Len(t, config.InvestmentRecords, 1)
	assert.Len(t, config.RealEstate, 2)
	assert.Len(t, config.PrimaryResidences(), 1)
	assert.True(t, config.RealEstate[1].NetRentalIncome().Equal(decimal.NewFromInt(-4000)))
}
