package output

import (
	"fmt"
	"os"

	"github.com/ukpayroll/roi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats a report with the named formatter without touching the filesystem
func Render(report *domain.Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report to timestamped files in dir and returns their names.
// "all" writes the verbose console report plus both CSV exports.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVSummarizer{}, CSVDetailedExporter{}} {
			name, err := writeUnique(f, report, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	name, err := WriteFormatted(f, report, dir, Extension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// writeUnique keeps the two CSV exports of an "all" run from sharing a filename
func writeUnique(f Formatter, report *domain.Report, dir string) (string, error) {
	ext := Extension(f)
	if f.Name() == "detailed-csv" {
		ext = "projection." + ext
	}
	return WriteFormatted(f, report, dir, ext)
}

// SaveScenario writes a scenario as YAML, e.g. to seed a new scenario file
func SaveScenario(scenario *domain.Scenario, filename string) error {
	b, err := yaml.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
