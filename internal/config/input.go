package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/tax-calculator/internal/domain"
	"github.com/taxgo/tax-calculator/internal/tables"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if !tables.Supports(config.Year) {
		return fmt.Errorf("%w: %d (supported: %d-%d)", tables.ErrYearNotConfigured, config.Year,
			tables.Years()[0], tables.Years()[len(tables.Years())-1])
	}

	for i, w := range config.WageRecords {
		if err := ip.validateWageRecord(&w); err != nil {
			return fmt.Errorf("form_w2s[%d] %q validation failed: %w", i, w.ID, err)
		}
	}
	for i, r := range config.InvestmentRecords {
		if err := ip.validateInvestmentRecord(&r); err != nil {
			return fmt.Errorf("form_1099s[%d] %q validation failed: %w", i, r.ID, err)
		}
	}
	for i, r := range config.RealEstate {
		if err := ip.validateRealEstateRecord(&r); err != nil {
			return fmt.Errorf("real_estate[%d] %q validation failed: %w", i, r.ID, err)
		}
	}
	if primary := config.PrimaryResidences(); len(primary) > 1 {
		return fmt.Errorf("only one primary residence is allowed, got %d", len(primary))
	}

	if err := ip.validateAdjustments(&config.Adjustments); err != nil {
		return fmt.Errorf("adjustments validation failed: %w", err)
	}

	return nil
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}

func nonNegative(amounts ...namedAmount) error {
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.name)
		}
	}
	return nil
}

// validateWageRecord validates a single wage statement
func (ip *InputParser) validateWageRecord(w *domain.WageRecord) error {
	return nonNegative(
		namedAmount{"wages", w.Wages},
		namedAmount{"federal income tax withheld", w.FederalIncomeTaxWithheld},
		namedAmount{"social security wages", w.SocialSecurityWages},
		namedAmount{"social security tax withheld", w.SocialSecurityTaxWithheld},
		namedAmount{"medicare wages", w.MedicareWages},
		namedAmount{"medicare tax withheld", w.MedicareTaxWithheld},
		namedAmount{"HSA contribution", w.HSA},
		namedAmount{"SDI", w.SDI},
		namedAmount{"VPDI", w.VPDI},
		namedAmount{"state wages", w.StateWages},
		namedAmount{"state income tax withheld", w.StateIncomeTaxWithheld},
	)
}

// validateInvestmentRecord validates a single investment statement.
// Capital gains and miscellaneous income may be negative.
func (ip *InputParser) validateInvestmentRecord(r *domain.InvestmentRecord) error {
	return nonNegative(
		namedAmount{"interest", r.Interest},
		namedAmount{"dividends", r.Dividends},
		namedAmount{"qualified dividends", r.QualifiedDividends},
		namedAmount{"capital gain distributions", r.CapitalGainDistributions},
		namedAmount{"unrecaptured 1250 gain", r.Unrecaptured1250Gain},
		namedAmount{"federal income tax withheld", r.FederalIncomeTaxWithheld},
		namedAmount{"section 199A dividends", r.Section199ADividends},
		namedAmount{"foreign tax paid", r.ForeignTaxPaid},
		namedAmount{"private activity bond interest", r.PrivateActivityBondInterest},
		namedAmount{"roth conversion gain", r.RothConversionGain},
	)
}

// validateRealEstateRecord validates a single property
func (ip *InputParser) validateRealEstateRecord(r *domain.RealEstateRecord) error {
	return nonNegative(
		namedAmount{"rents", r.Rents},
		namedAmount{"taxes", r.Taxes},
		namedAmount{"interest", r.Interest},
		namedAmount{"hoa", r.HOA},
		namedAmount{"insurance", r.Insurance},
		namedAmount{"advertising", r.Advertising},
		namedAmount{"legal", r.Legal},
		namedAmount{"commissions", r.Commissions},
		namedAmount{"management", r.Management},
		namedAmount{"repairs", r.Repairs},
		namedAmount{"utilities", r.Utilities},
		namedAmount{"depreciation", r.Depreciation},
		namedAmount{"other", r.Other},
	)
}

// validateAdjustments validates the scalar inputs. The prior-year state tax
// adjustment and the investment income modification are signed.
func (ip *InputParser) validateAdjustments(a *domain.Adjustments) error {
	return nonNegative(
		namedAmount{"capital loss carryover", a.CapitalLossCarryover},
		namedAmount{"rental loss carryover", a.RentalLossCarryover},
		namedAmount{"car registration", a.CarRegistration},
		namedAmount{"other taxes", a.OtherTaxes},
		namedAmount{"gifts", a.Gifts},
		namedAmount{"federal estimated tax paid", a.FederalEstimatedTaxPaid},
		namedAmount{"state estimated tax paid last year", a.StateEstimatedTaxPaidLastYear},
		namedAmount{"state estimated tax paid this year", a.StateEstimatedTaxPaidThisYear},
		namedAmount{"penalty", a.Penalty},
	)
}

// CreateExampleConfiguration creates an example configuration for a single filer
// with one employer, one brokerage account, a home and a rental
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Year: 2019,
		WageRecords: []domain.WageRecord{
			{ID: "Company", Wages: decimal.NewFromInt(1000)},
		},
		InvestmentRecords: []domain.InvestmentRecord{
			{
				ID:                   "Bank",
				Dividends:            decimal.NewFromInt(100),
				ShortTermCapitalGain: decimal.NewFromInt(500),
				LongTermCapitalGain:  decimal.NewFromInt(5000),
			},
		},
		RealEstate: []domain.RealEstateRecord{
			{
				ID:        "Primary",
				IsPrimary: true,
				Taxes:     decimal.NewFromInt(10000),
				Interest:  decimal.NewFromInt(5000),
			},
			{
				ID:           "Rental",
				Rents:        decimal.NewFromInt(20000),
				Taxes:        decimal.NewFromInt(10000),
				Interest:     decimal.NewFromInt(10000),
				Insurance:    decimal.NewFromInt(1000),
				Depreciation: decimal.NewFromInt(3000),
			},
		},
	}
}
