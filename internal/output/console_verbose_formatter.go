package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 81)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "PAYROLL & BENEFITS ROI ANALYSIS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Scenario: %s\n", report.ScenarioName)
	fmt.Fprintf(&buf, "Tax year: %s (%s)\n", report.TaxYear, report.Region)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.Savings != nil {
		writeSavings(&buf, report.Savings)
	}
	if report.Projection != nil {
		writeProjection(&buf, report.Projection)
	}
	if report.Comparison != nil {
		writePayrollComparison(&buf, report)
	}
	writeFindings(&buf, report.Findings)

	return buf.Bytes(), nil
}

func writeSavings(w io.Writer, s *domain.CalculationResult) {
	fmt.Fprintln(w, "SALARY SACRIFICE SAVINGS")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, bt := range domain.AllBenefitTypes {
		b, ok := s.BenefitBreakdown[bt]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-20s NI %14s  Other %14s  Total %14s\n",
			bt.Label()+":", FormatCurrency(b.NISavings), FormatCurrency(b.AdditionalSavings), FormatCurrency(b.TotalSavings))
	}
	fmt.Fprintf(w, "  Employer NI before:   %s\n", FormatCurrency(s.OriginalNI))
	fmt.Fprintf(w, "  Employer NI after:    %s\n", FormatCurrency(s.ReducedNI))
	fmt.Fprintf(w, "  ANNUAL SAVINGS:       %s\n", FormatCurrency(s.AnnualSavings))
	fmt.Fprintf(w, "  Per employee:         %s\n", FormatCurrency(s.SavingsPerEmployee))
	fmt.Fprintln(w)
}

func writeProjection(w io.Writer, p *domain.MultiYearProjection) {
	fmt.Fprintln(w, "MULTI-YEAR PROJECTION")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  %-5s %10s %14s %14s %16s\n", "Year", "Employees", "Avg salary", "Savings", "Cumulative")
	for _, y := range p.Years {
		fmt.Fprintf(w, "  %-5d %10d %14s %14s %16s\n",
			y.Year, y.EmployeeCount, FormatCurrency(y.AverageSalary), FormatCurrency(y.AnnualSavings), FormatCurrency(y.CumulativeSavings))
	}
	fmt.Fprintf(w, "  TOTAL PROJECTED SAVINGS: %s\n", FormatCurrency(p.TotalSavings))
	fmt.Fprintln(w)
}

func writePayrollComparison(w io.Writer, report *domain.Report) {
	if report.Common != nil {
		c := report.Common
		fmt.Fprintln(w, "CURRENT PAYROLL")
		fmt.Fprintln(w, strings.Repeat("-", 50))
		fmt.Fprintf(w, "  Pay runs per year:    %s\n", c.TotalAnnualPayRuns.StringFixed(2))
		fmt.Fprintf(w, "  Payslips per year:    %s\n", c.TotalPayslipsPerYear.StringFixed(0))
		fmt.Fprintf(w, "  Current annual cost:  %s\n", FormatCurrency(c.CurrentAnnualPayrollCost))
		fmt.Fprintf(w, "  Cost per payslip:     %s\n", FormatCurrency(c.CurrentCostPerPayslip))
		fmt.Fprintln(w)
	}

	ps, mp := report.PayrollSystem, report.ManagedPayroll
	fmt.Fprintln(w, "ANNUAL BENEFITS BY CATEGORY")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  %-26s %16s %16s\n", "", "Payroll System", "Managed Payroll")
	categories := []struct {
		label   string
		system  string
		managed string
	}{
		{"Processing efficiency", FormatCurrency(ps.EfficiencySavings), FormatCurrency(mp.EfficiencySavings)},
		{"Year-end processing", FormatCurrency(ps.YearEndSavings), FormatCurrency(mp.YearEndSavings)},
		{"Query handling", FormatCurrency(ps.QueryHandlingSavings), FormatCurrency(mp.QueryHandlingSavings)},
		{"Errors & compliance", FormatCurrency(ps.ErrorReductionSavings), FormatCurrency(mp.ErrorReductionSavings)},
		{"Paper & postage", FormatCurrency(ps.PaperSavings), FormatCurrency(mp.PaperSavings)},
		{"Wage savings", FormatCurrency(ps.WageSavings), FormatCurrency(mp.WageSavings)},
		{"Eliminated running costs", FormatCurrency(decimal.Zero), FormatCurrency(mp.CostBreakdown.Total.Sub(mp.CostBreakdown.StaffSavings))},
		{"TOTAL BENEFITS", FormatCurrency(ps.TotalAnnualBenefits), FormatCurrency(mp.TotalAnnualBenefits)},
	}
	for _, c := range categories {
		fmt.Fprintf(w, "  %-26s %16s %16s\n", c.label, c.system, c.managed)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PAYROLL OPTION COMPARISON")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "  %-22s %16s %16s %16s  %s\n", "Metric", "Payroll System", "Managed Payroll", "Difference", "Better")
	for _, r := range comparisonRows(report) {
		fmt.Fprintf(w, "  %-22s %16s %16s %16s  %s\n",
			r.Label, formatValue(r.Metric, r.System), formatValue(r.Metric, r.Managed), formatDiff(r.Metric, r.Diff), OptionLabel(r.Better))
	}
	fmt.Fprintln(w)

	rec := AnalyzeComparison(report)
	fmt.Fprintf(w, "RECOMMENDATION: %s\n", OptionLabel(rec.Option))
	fmt.Fprintf(w, "  %s\n", rec.Reason)
	if rec.Option != domain.OptionEqual {
		fmt.Fprintf(w, "  Annual savings advantage: %s; five-year ROI advantage: %s\n",
			FormatCurrency(rec.AnnualSavingsAdvantage), FormatPercentage(rec.FiveYearROIAdvantage))
	}
	fmt.Fprintln(w)
}

func writeFindings(w io.Writer, findings []domain.ValidationWarning) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintln(w, "VALIDATION FINDINGS")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, f := range findings {
		fmt.Fprintf(w, "  [%s] %s: %s\n", f.Type, f.Field, f.Message)
	}
	fmt.Fprintln(w)
}
