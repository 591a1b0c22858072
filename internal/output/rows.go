package output

import (
	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// metricRow is one line of the side-by-side payroll comparison
type metricRow struct {
	Metric  domain.Metric
	Label   string
	System  decimal.Decimal
	Managed decimal.Decimal
	Diff    decimal.Decimal
	Better  domain.Option
}

func comparisonRows(report *domain.Report) []metricRow {
	if report.Comparison == nil || report.PayrollSystem == nil || report.ManagedPayroll == nil {
		return nil
	}
	rows := make([]metricRow, 0, len(domain.AllMetrics))
	for _, m := range domain.AllMetrics {
		rows = append(rows, metricRow{
			Metric:  m,
			Label:   m.Label(),
			System:  report.PayrollSystem.Metric(m),
			Managed: report.ManagedPayroll.Metric(m),
			Diff:    report.Comparison.Diff(m),
			Better:  report.Comparison.BetterOption[m],
		})
	}
	return rows
}

// formatValue renders a metric value in its display unit
func formatValue(m domain.Metric, v decimal.Decimal) string {
	switch m.Unit() {
	case domain.UnitPercent:
		return FormatPercentage(v)
	case domain.UnitMonths:
		return FormatMonths(v)
	default:
		return FormatCurrency(v)
	}
}

// formatDiff renders a difference; payback differences stay numeric since zero is meaningful
func formatDiff(m domain.Metric, v decimal.Decimal) string {
	if m.Unit() == domain.UnitMonths {
		return v.StringFixed(1) + " months"
	}
	return formatValue(m, v)
}

// assumptionsFor returns the report's assumptions or the defaults
func assumptionsFor(report *domain.Report) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
