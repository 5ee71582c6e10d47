package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxgo/tax-calculator/internal/calculation"
	"github.com/taxgo/tax-calculator/internal/config"
	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/output"
	"github.com/taxgo/tax-calculator/internal/tables"
	"github.com/taxgo/tax-calculator/internal/tui"
)

// loadConfiguration reads the input file, or standard input when the name is "-"
func loadConfiguration(cmd *cobra.Command, name string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if name != "-" {
		return parser.LoadFromFile(name)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return parser.Parse(data)
}

func (c *cli) computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute [input-file]",
		Short: "Compute the regular, AMT and state taxes of a tax year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			summary, err := c.engine().Compute(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			format := c.v.GetString("output.format")
			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.GenerateReport(summary, format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}
			return output.WriteReport(cmd.OutOrStdout(), summary, format)
		},
	}
	cmd.Flags().StringP("format", "f", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file instead of standard output")
	_ = c.v.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid (tax year %d, %d W-2, %d 1099, %d properties)\n",
				args[0], cfg.Year, len(cfg.WageRecords), len(cfg.InvestmentRecords), len(cfg.RealEstate))
			return nil
		},
	}
}

func (c *cli) extrapolateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extrapolate [input-file]",
		Short: "Show how the taxes change as one input grows",
		Long: `Recomputes the tax year with one input increased by every amount from --from
to --to in steps of --step. Items: ` + strings.Join(calculation.ExtrapolationItems(), ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, _ := cmd.Flags().GetString("item")
			deltas, err := deltaFlags(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			formatter, err := output.GetExtrapolationFormatterByName(format)
			if err != nil {
				return err
			}
			if chart, ok := formatter.(output.ChartFormatter); ok {
				chart.Width, _ = cmd.Flags().GetInt("width")
				chart.Height, _ = cmd.Flags().GetInt("height")
				formatter = chart
			}

			cfg, err := loadConfiguration(cmd, args[0])
			if err != nil {
				return err
			}
			result, err := c.engine().Extrapolate(cmd.Context(), cfg, item, deltas)
			if err != nil {
				return err
			}

			data, err := formatter.FormatExtrapolation(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("item", "i", calculation.ItemLongTermCapitalGain, "input to increase")
	cmd.Flags().String("from", "0", "first amount added")
	cmd.Flags().String("to", "200000", "last amount added")
	cmd.Flags().String("step", "10000", "increment between amounts")
	cmd.Flags().StringP("format", "f", "chart", "output format (chart, table, csv, json)")
	cmd.Flags().Int("width", 0, "chart width in columns")
	cmd.Flags().Int("height", 0, "chart height in rows")
	cmd.Flags().Int("workers", 0, "concurrent computations (default: number of CPUs)")
	_ = c.v.BindPFlag("extrapolate.workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func deltaFlags(cmd *cobra.Command) ([]decimal.Decimal, error) {
	var values [3]decimal.Decimal
	for i, name := range []string{"from", "to", "step"} {
		raw, _ := cmd.Flags().GetString(name)
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
		}
		values[i] = v
	}
	if values[0].GreaterThan(values[1]) {
		return nil, fmt.Errorf("--from %s is greater than --to %s", values[0], values[1])
	}
	if !values[2].IsPositive() {
		return nil, errors.New("--step must be positive")
	}
	return calculation.Deltas(values[0], values[1], values[2]), nil
}

func (c *cli) whatifCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif [input-file]",
		Short: "Interactively vary one input and watch every tax change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, _ := cmd.Flags().GetString("item")
			if !isExtrapolationItem(item) {
				return fmt.Errorf("%w: %q", calculation.ErrUnknownItem, item)
			}
			cfg, err := loadConfiguration(cmd, args[0])
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), c.engine(), cfg, item)
		},
	}
	cmd.Flags().StringP("item", "i", calculation.ItemLongTermCapitalGain, "input to start with")
	return cmd
}

func isExtrapolationItem(item string) bool {
	for _, it := range calculation.ExtrapolationItems() {
		if it == item {
			return true
		}
	}
	return false
}

func (c *cli) yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the tax years with parameters for every regime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, year := range tables.Years() {
				fmt.Fprintln(cmd.OutOrStdout(), year)
			}
			return nil
		},
	}
}

func (c *cli) exampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				if err := output.SaveConfiguration(example, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", path)
				return nil
			}
			data, err := output.MarshalConfiguration(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "write the example to a file")
	return cmd
}
