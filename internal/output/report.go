package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// GenerateReport formats report with the named formatter and writes it to w.
// The pseudo-format "all" writes every registered formatter in turn, skipping
// those that need per-trial results when the report has none.
func GenerateReport(w io.Writer, report *domain.Report, format string) error {
	if NormalizeFormatName(format) == "all" {
		for _, name := range AvailableFormatterNames() {
			err := GenerateReport(w, report, name)
			if errors.Is(err, ErrNoTrialData) {
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		return nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteConfiguration encodes config as YAML.
func WriteConfiguration(w io.Writer, config *domain.Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
