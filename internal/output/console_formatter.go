package output

import (
	"bytes"
	"fmt"

	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PAYROLL ROI SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s (%s, %s)\n", report.ScenarioName, report.TaxYear, report.Region)
	fmt.Fprintln(&buf)

	if s := report.Savings; s != nil {
		fmt.Fprintf(&buf, "Benefits: AnnualSavings=%s PerEmployee=%s ReducedNI=%s\n",
			FormatCurrency(s.AnnualSavings), FormatCurrency(s.SavingsPerEmployee), FormatCurrency(s.ReducedNI))
	}
	if p := report.Projection; p != nil {
		fmt.Fprintf(&buf, "Projection: Years=%d TotalSavings=%s\n", len(p.Years), FormatCurrency(p.TotalSavings))
	}
	if ps, mp := report.PayrollSystem, report.ManagedPayroll; ps != nil && mp != nil {
		fmt.Fprintf(&buf, "Payroll System: Net=%s ROI5=%s Payback=%s TCO5=%s\n",
			FormatCurrency(ps.NetAnnualBenefit), FormatPercentage(ps.FiveYearROI), FormatMonths(ps.PaybackPeriodMonths), FormatCurrency(ps.TotalCostOfOwnership5Year))
		fmt.Fprintf(&buf, "Managed Payroll: Net=%s ROI5=%s Payback=%s TCO5=%s\n",
			FormatCurrency(mp.NetAnnualBenefit), FormatPercentage(mp.FiveYearROI), FormatMonths(mp.PaybackPeriodMonths), FormatCurrency(mp.TotalCostOfOwnership5Year))
	}
	if rec := AnalyzeComparison(report); rec.Option != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", OptionLabel(rec.Option), FormatCurrency(rec.AnnualSavingsAdvantage), FormatPercentage(rec.FiveYearROIAdvantage))
	}
	if n := len(report.Findings); n > 0 {
		fmt.Fprintf(&buf, "Findings: %d (run with --format console for details)\n", n)
	}
	return buf.Bytes(), nil
}
