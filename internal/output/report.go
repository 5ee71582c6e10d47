package output

import (
	"io"
	"os"

	"github.com/taxgo/tax-calculator/internal/domain"
)

// extensions maps formatter names to report file extensions
var extensions = map[string]string{
	"console": "txt",
	"csv":     "csv",
	"json":    "json",
	"yaml":    "yaml",
}

// GenerateReport writes the summary in the named format to a timestamped file
// in the working directory and returns the file name.
func GenerateReport(summary *domain.TaxSummary, format string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, summary, extensions[f.Name()])
}

// WriteReport renders the summary in the named format to w.
func WriteReport(w io.Writer, summary *domain.TaxSummary, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes a configuration as YAML, e.g. the example inputs.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := MarshalConfiguration(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// MarshalConfiguration encodes a configuration as YAML.
func MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	return marshalYAML(config)
}
