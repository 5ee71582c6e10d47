package output

import (
	"encoding/json"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// JSONFormatter serializes the tax summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

// YAMLFormatter serializes the tax summary as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	return marshalYAML(summary)
}
