package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/tax-calculator/internal/calculation"
	"github.com/taxgo/tax-calculator/internal/config"
	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/output"
)

const exampleInput = "../../internal/config/testdata/example.yaml"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "taxgo dev (commit none, built unknown)")
}

func TestYearsCmd(t *testing.T) {
	out, err := execute(t, "", "years")
	require.NoError(t, err)
	lines := strings.Fields(out)
	assert.Equal(t, "2012", lines[0])
	assert.Equal(t, "2023", lines[len(lines)-1])
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "", "validate", exampleInput)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (tax year 2019, 1 W-2, 1 1099, 2 properties)")

	_, err = execute(t, "", "validate", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = execute(t, "year: 2019\nform_w2s:\n  - id: A\n    wages: -5\n", "validate", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wages cannot be negative")
}

func TestComputeCmd_Console(t *testing.T) {
	out, err := execute(t, "", "compute", exampleInput)
	require.NoError(t, err)
	assert.Contains(t, out, "TAX YEAR 2019")
	assert.Contains(t, out, "$6,600.00")
	assert.Contains(t, out, "Federal balance due")
}

func TestComputeCmd_JSONFromStdin(t *testing.T) {
	input, err := os.ReadFile(exampleInput)
	require.NoError(t, err)

	out, err := execute(t, string(input), "compute", "-", "--format", "json")
	require.NoError(t, err)

	var summary domain.TaxSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2019, summary.Year)
	assert.Equal(t, "6600", summary.AGI.String())
	assert.True(t, summary.FederalBalanceDue.IsZero())
}

func TestComputeCmd_FormatFromEnvironment(t *testing.T) {
	t.Setenv("TAXGO_OUTPUT_FORMAT", "csv")
	out, err := execute(t, "", "compute", exampleInput)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Section,Item,Amount"))
}

func TestComputeCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "compute", exampleInput, "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = execute(t, "", "compute")
	assert.Error(t, err)
}

func TestComputeCmd_DebugLogging(t *testing.T) {
	out, err := execute(t, "", "compute", exampleInput, "--format", "csv", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "agi = 6600")
}

func TestInvalidLogSettings(t *testing.T) {
	_, err := execute(t, "", "years", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = execute(t, "", "years", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestSettingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("output:\n  format: yaml\n"), 0644))

	out, err := execute(t, "", "compute", exampleInput, "--config", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "federal_balance_due:")
}

func TestExtrapolateCmd(t *testing.T) {
	out, err := execute(t, "", "extrapolate", exampleInput,
		"--item", calculation.ItemLongTermCapitalGain, "--to", "100000", "--step", "50000", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"long_term_capital_gain", "50000.00", "453.75", "0.00", "453.75", "1209.05"}, records[2])
	assert.Equal(t, "7953.75", records[3][2])
}

func TestExtrapolateCmd_Chart(t *testing.T) {
	out, err := execute(t, "", "extrapolate", exampleInput, "--to", "40000", "--step", "10000", "--width", "60", "--height", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "Marginal")
}

func TestExtrapolateCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "extrapolate", exampleInput, "--item", "lottery")
	assert.ErrorIs(t, err, calculation.ErrUnknownItem)

	_, err = execute(t, "", "extrapolate", exampleInput, "--step", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--step must be positive")

	_, err = execute(t, "", "extrapolate", exampleInput, "--from", "10", "--to", "5")
	assert.Error(t, err)

	_, err = execute(t, "", "extrapolate", exampleInput, "--to", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --to")

	_, err = execute(t, "", "extrapolate", exampleInput, "--format", "html")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestWhatifCmd_UnknownItem(t *testing.T) {
	_, err := execute(t, "", "whatif", exampleInput, "--item", "lottery")
	assert.ErrorIs(t, err, calculation.ErrUnknownItem)
}

func TestExampleCmd(t *testing.T) {
	out, err := execute(t, "", "example")
	require.NoError(t, err)
	assert.Contains(t, out, "form_w2s:")

	cfg, err := config.NewInputParser().Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 2019, cfg.Year)

	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err = execute(t, "", "example", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example input written to")

	out, err = execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slogLogger{l: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}

	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)
	logger.Warnf("careful %s", "now")
	logger.Errorf("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="shown 2"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}
