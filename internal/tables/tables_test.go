package tables

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsConfiguredForEveryRegime(t *testing.T) {
	years := Years()
	require.NotEmpty(t, years)
	assert.Equal(t, 2012, years[0])
	assert.Equal(t, 2023, years[len(years)-1])

	for _, year := range years {
		_, err := Regular(year)
		assert.NoError(t, err, "regular %d", year)
		_, err = AMT(year)
		assert.NoError(t, err, "amt %d", year)
		_, err = State(year)
		assert.NoError(t, err, "state %d", year)
	}
}

func TestMissingYear(t *testing.T) {
	_, err := Regular(1999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrYearNotConfigured))
	assert.Contains(t, err.Error(), "1999")

	_, err = AMT(2050)
	assert.ErrorIs(t, err, ErrYearNotConfigured)

	_, err = State(2011)
	assert.ErrorIs(t, err, ErrYearNotConfigured)

	assert.False(t, Supports(2011))
	assert.True(t, Supports(2019))
}

func TestBracketsAscending(t *testing.T) {
	check := func(t *testing.T, name string, brackets []Bracket) {
		require.NotEmpty(t, brackets, name)
		assert.True(t, brackets[0].Boundary.IsZero() || name == "qdcg", "%s starts at zero", name)
		for i := 1; i < len(brackets); i++ {
			assert.True(t, brackets[i].Boundary.GreaterThan(brackets[i-1].Boundary),
				"%s boundary %d not ascending", name, i)
		}
	}

	for _, year := range Years() {
		regular, err := Regular(year)
		require.NoError(t, err)
		check(t, "regular", regular.Brackets)
		check(t, "qdcg", regular.QDCGThresholds)
		assert.True(t, regular.QDCGThresholds[len(regular.QDCGThresholds)-1].Boundary.Equal(decimal.NewFromInt(Unbounded)),
			"%d qdcg thresholds end unbounded", year)

		amt, err := AMT(year)
		require.NoError(t, err)
		check(t, "amt", amt.Brackets)
		assert.Equal(t, regular.QDCGThresholds, amt.QDCGThresholds)

		state, err := State(year)
		require.NoError(t, err)
		check(t, "state", state.Brackets)
	}
}

func TestLawChanges(t *testing.T) {
	p2017, err := Regular(2017)
	require.NoError(t, err)
	p2018, err := Regular(2018)
	require.NoError(t, err)

	assert.True(t, p2017.Exemption.Equal(decimal.NewFromInt(4050)))
	assert.True(t, p2018.Exemption.IsZero(), "personal exemption repealed")
	assert.True(t, p2018.StandardDeduction.Equal(decimal.NewFromInt(12000)))
	assert.True(t, p2018.LimitThreshold.Equal(decimal.NewFromInt(Unbounded)))

	p2012, err := Regular(2012)
	require.NoError(t, err)
	assert.True(t, p2012.LimitThreshold.Equal(decimal.NewFromInt(Unbounded)))
	assert.Equal(t, "0.052", p2012.SocialSecurityTaxRate.String())
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := Regular(2019)
	require.NoError(t, err)
	p.Brackets[0].Rate = decimal.NewFromInt(1)

	again, err := Regular(2019)
	require.NoError(t, err)
	assert.Equal(t, "0.1", again.Brackets[0].Rate.String())
}

func TestMarginal(t *testing.T) {
	p, err := State(2019)
	require.NoError(t, err)

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{1, "0.01"},
		{8809, "0.01"},
		{8810, "0.02"},
		{1000000, "0.123"},
	}
	for _, tt := range tests {
		got := Marginal(p.Brackets, decimal.NewFromInt(tt.amount))
		assert.Equal(t, tt.want, got.String(), "amount %d", tt.amount)
	}
}
