package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// CSVDetailedExporter provides the year-by-year savings projection.
// Without a projection the single-year savings are exported as year 1.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "EmployeeCount", "AverageSalary", "AnnualSavings", "CumulativeSavings", "OriginalNI", "ReducedNI"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	years := projectionYears(report)
	for _, yr := range years {
		row := []string{
			report.ScenarioName,
			intToString(yr.Year),
			intToString(yr.EmployeeCount),
			yr.AverageSalary.StringFixed(2),
			yr.AnnualSavings.StringFixed(2),
			yr.CumulativeSavings.StringFixed(2),
			yr.OriginalNI.StringFixed(2),
			yr.ReducedNI.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func projectionYears(report *domain.Report) []domain.YearProjection {
	if report.Projection != nil {
		return report.Projection.Years
	}
	if s := report.Savings; s != nil {
		return []domain.YearProjection{{
			Year:              1,
			AnnualSavings:     s.AnnualSavings,
			CumulativeSavings: s.AnnualSavings,
			OriginalNI:        s.OriginalNI,
			ReducedNI:         s.ReducedNI,
		}}
	}
	return nil
}
