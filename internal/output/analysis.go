package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// Recommendation summarises the payroll comparison verdict for display.
type Recommendation struct {
	Option                 domain.Option
	Reason                 string
	AnnualSavingsAdvantage decimal.Decimal
	FiveYearROIAdvantage   decimal.Decimal
}

// AnalyzeComparison explains the overall verdict of a payroll comparison.
// Advantages are expressed in favour of the recommended option.
func AnalyzeComparison(report *domain.Report) Recommendation {
	if report == nil || report.Comparison == nil || report.PayrollSystem == nil || report.ManagedPayroll == nil {
		return Recommendation{}
	}
	c := report.Comparison
	rec := Recommendation{
		Option:                 c.Overall,
		AnnualSavingsAdvantage: c.AnnualSavingsDiff,
		FiveYearROIAdvantage:   c.FiveYearROIDiff,
	}
	if c.Overall == domain.OptionPayrollSystem {
		rec.AnnualSavingsAdvantage = rec.AnnualSavingsAdvantage.Neg()
		rec.FiveYearROIAdvantage = rec.FiveYearROIAdvantage.Neg()
	}

	tcoWinner := c.BetterOption[domain.MetricTCO5Year]
	switch {
	case c.Overall == domain.OptionEqual:
		rec.Reason = "Both options return the same five-year ROI"
	case tcoWinner == c.Overall:
		rec.Reason = fmt.Sprintf("%s has the lower five-year cost of ownership and the higher five-year ROI", OptionLabel(c.Overall))
	case tcoWinner == domain.OptionEqual:
		rec.Reason = fmt.Sprintf("%s has the higher five-year ROI; both options cost the same over five years", OptionLabel(c.Overall))
	default:
		rec.Reason = fmt.Sprintf("%s has the higher five-year ROI, although %s is cheaper over five years",
			OptionLabel(c.Overall), OptionLabel(tcoWinner))
	}
	return rec
}
