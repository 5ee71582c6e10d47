package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/domain"
)

var errNilExtrapolation = errors.New("extrapolation is required")

// ExtrapolationFormatter renders the taxes of a what-if series.
type ExtrapolationFormatter interface {
	FormatExtrapolation(e *domain.Extrapolation) ([]byte, error)
	Name() string
}

var builtInExtrapolationFormatters = []ExtrapolationFormatter{
	ChartFormatter{},
	TableFormatter{},
	ExtrapolationCSVFormatter{},
	ExtrapolationJSONFormatter{},
}

// GetExtrapolationFormatterByName fetches a registered extrapolation formatter.
func GetExtrapolationFormatterByName(name string) (ExtrapolationFormatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "console", "text":
		n = "chart"
	case "json-pretty":
		n = "json"
	}
	for _, f := range builtInExtrapolationFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	names := make([]string, 0, len(builtInExtrapolationFormatters))
	for _, f := range builtInExtrapolationFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, name, strings.Join(names, ", "))
}

// ChartFormatter draws the regular, AMT and state tax against the delta,
// followed by the table.
type ChartFormatter struct {
	Width  int
	Height int
}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) FormatExtrapolation(e *domain.Extrapolation) ([]byte, error) {
	if e == nil {
		return nil, errNilExtrapolation
	}
	var buf bytes.Buffer
	buf.WriteString(ExtrapolationChart(e, c.Width, c.Height).Render())
	buf.WriteString("\n\n")
	table, err := TableFormatter{}.FormatExtrapolation(e)
	if err != nil {
		return nil, err
	}
	buf.Write(table)
	return buf.Bytes(), nil
}

// ExtrapolationChart builds the chart of an extrapolation. Zero sizes keep the defaults.
func ExtrapolationChart(e *domain.Extrapolation, width, height int) *ASCIIChart {
	n := len(e.Points)
	regular := make([]float64, n)
	amt := make([]float64, n)
	state := make([]float64, n)
	labels := make([]string, n)
	for i, p := range e.Points {
		regular[i] = p.RegularTax.InexactFloat64()
		amt[i] = p.AMTTax.InexactFloat64()
		state[i] = p.StateTax.InexactFloat64()
		labels[i] = formatChartValue(p.Delta.InexactFloat64())
	}

	chart := NewASCIIChart(fmt.Sprintf("%d taxes vs. additional %s", e.Year, ItemLabel(e.Item))).
		AddSeries(domain.RegimeRegular.String(), regular, ColorRegular).
		AddSeries(domain.RegimeAMT.String(), amt, ColorAMT).
		AddSeries(domain.RegimeState.String(), state, ColorState).
		WithLabels(labels).
		WithSize(width, height)
	chart.XAxisLabel = "additional " + ItemLabel(e.Item)
	return chart
}

// ItemLabel turns an item identifier such as long_term_capital_gain into words
func ItemLabel(item string) string {
	return strings.ReplaceAll(item, "_", " ")
}

// MarginalRates returns, for every point after the first, the share of the
// last increment taken by federal and state tax together.
func MarginalRates(points []domain.ExtrapolationPoint) []decimal.Decimal {
	rates := make([]decimal.Decimal, len(points))
	for i := 1; i < len(points); i++ {
		step := points[i].Delta.Sub(points[i-1].Delta)
		if step.IsZero() {
			continue
		}
		total := points[i].FederalTax.Add(points[i].StateTax)
		prev := points[i-1].FederalTax.Add(points[i-1].StateTax)
		rates[i] = total.Sub(prev).DivRound(step, 4)
	}
	return rates
}

// TableFormatter prints one row per delta.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) FormatExtrapolation(e *domain.Extrapolation) ([]byte, error) {
	if e == nil {
		return nil, errNilExtrapolation
	}
	var buf bytes.Buffer
	header := fmt.Sprintf("%14s %14s %14s %14s %14s %10s", "Delta", "Regular", "AMT", "Federal", "State", "Marginal")
	fmt.Fprintln(&buf, TitleStyle.Render(header))

	rates := MarginalRates(e.Points)
	for i, p := range e.Points {
		marginal := ""
		if i > 0 {
			marginal = FormatPercentage(rates[i])
		}
		fmt.Fprintf(&buf, "%14s %s %s %14s %s %10s\n",
			FormatDollars(p.Delta),
			cell(RegularStyle, p.RegularTax, p.FederalTax.Equal(p.RegularTax)),
			cell(AMTStyle, p.AMTTax, p.AMTTax.GreaterThan(p.RegularTax)),
			FormatDollars(p.FederalTax),
			cell(StateStyle, p.StateTax, false),
			marginal,
		)
	}
	return buf.Bytes(), nil
}

// cell renders an amount in the regime color, bold when it is the binding tax
func cell(style lipgloss.Style, amount decimal.Decimal, binding bool) string {
	return style.Bold(binding).Render(fmt.Sprintf("%14s", FormatDollars(amount)))
}

// ExtrapolationCSVFormatter writes one CSV row per delta.
type ExtrapolationCSVFormatter struct{}

func (c ExtrapolationCSVFormatter) Name() string { return "csv" }

func (c ExtrapolationCSVFormatter) FormatExtrapolation(e *domain.Extrapolation) ([]byte, error) {
	if e == nil {
		return nil, errNilExtrapolation
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Item", "Delta", "RegularTax", "AMTTax", "FederalTax", "StateTax"}); err != nil {
		return nil, err
	}
	for _, p := range e.Points {
		row := []string{
			e.Item,
			p.Delta.StringFixed(2),
			p.RegularTax.StringFixed(2),
			p.AMTTax.StringFixed(2),
			p.FederalTax.StringFixed(2),
			p.StateTax.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExtrapolationJSONFormatter serializes the extrapolation as pretty-printed JSON.
type ExtrapolationJSONFormatter struct{}

func (j ExtrapolationJSONFormatter) Name() string { return "json" }

func (j ExtrapolationJSONFormatter) FormatExtrapolation(e *domain.Extrapolation) ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
