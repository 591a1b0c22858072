package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per compared metric,
// preceded by the benefit savings rows when present.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Item", "PayrollSystem", "ManagedPayroll", "Difference", "BetterOption"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if s := report.Savings; s != nil {
		for _, bt := range domain.AllBenefitTypes {
			b, ok := s.BenefitBreakdown[bt]
			if !ok {
				continue
			}
			if err := w.Write([]string{"benefit", string(bt), "", "", b.TotalSavings.StringFixed(2), ""}); err != nil {
				return nil, err
			}
		}
		if err := w.Write([]string{"benefit", "annual_savings", "", "", s.AnnualSavings.StringFixed(2), ""}); err != nil {
			return nil, err
		}
	}

	for _, r := range comparisonRows(report) {
		row := []string{
			"payroll",
			string(r.Metric),
			r.System.StringFixed(2),
			r.Managed.StringFixed(2),
			r.Diff.StringFixed(2),
			string(r.Better),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if report.Comparison != nil {
		if err := w.Write([]string{"payroll", "overall", "", "", "", string(report.Comparison.Overall)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
