package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// higherIsBetter reports the preferred direction for each compared metric
var higherIsBetter = map[domain.Metric]bool{
	domain.MetricFirstYearROI:       true,
	domain.MetricThreeYearROI:       true,
	domain.MetricFiveYearROI:        true,
	domain.MetricPaybackPeriod:      false,
	domain.MetricAnnualSavings:      true,
	domain.MetricFiveYearSavings:    true,
	domain.MetricSavingsPerEmployee: true,
	domain.MetricAnnualCost:         false,
	domain.MetricOneTimeCost:        false,
	domain.MetricCostPerPayslip:     false,
	domain.MetricTCO5Year:           false,
}

// better picks the winning option for one metric from the raw values
func better(m domain.Metric, system, managed decimal.Decimal) domain.Option {
	cmp := managed.Cmp(system)
	if !higherIsBetter[m] {
		cmp = -cmp
	}
	switch {
	case cmp > 0:
		return domain.OptionManagedPayroll
	case cmp < 0:
		return domain.OptionPayrollSystem
	default:
		return domain.OptionEqual
	}
}

// CompareROIResults compares two sets of option results metric by metric.
// Gains (ROI, savings) are reported as managed minus system and costs
// (payback, spend, TCO) as system minus managed, so a positive difference
// always favours the managed option.
func CompareROIResults(system, managed domain.ROIResults) domain.ComparisonMetrics {
	diff := func(m domain.Metric) decimal.Decimal {
		s, mg := system.Metric(m), managed.Metric(m)
		if higherIsBetter[m] {
			return mg.Sub(s)
		}
		return s.Sub(mg)
	}

	out := domain.ComparisonMetrics{
		FirstYearROIDiff:       diff(domain.MetricFirstYearROI),
		ThreeYearROIDiff:       diff(domain.MetricThreeYearROI),
		FiveYearROIDiff:        diff(domain.MetricFiveYearROI),
		PaybackMonthsDiff:      diff(domain.MetricPaybackPeriod),
		AnnualSavingsDiff:      diff(domain.MetricAnnualSavings),
		FiveYearSavingsDiff:    diff(domain.MetricFiveYearSavings),
		SavingsPerEmployeeDiff: diff(domain.MetricSavingsPerEmployee),
		AnnualCostDiff:         diff(domain.MetricAnnualCost),
		OneTimeCostDiff:        diff(domain.MetricOneTimeCost),
		CostPerPayslipDiff:     diff(domain.MetricCostPerPayslip),
		TCO5YearDiff:           diff(domain.MetricTCO5Year),
		BetterOption:           make(map[domain.Metric]domain.Option, len(domain.AllMetrics)),
	}
	for _, m := range domain.AllMetrics {
		out.BetterOption[m] = better(m, system.Metric(m), managed.Metric(m))
	}
	out.Overall = overallRecommendation(system, managed)
	return out
}

// overallRecommendation prefers the option that wins on both five-year TCO and
// five-year ROI, and otherwise falls back to the higher five-year ROI.
func overallRecommendation(system, managed domain.ROIResults) domain.Option {
	tco := managed.TotalCostOfOwnership5Year.Cmp(system.TotalCostOfOwnership5Year)
	roi := managed.FiveYearROI.Cmp(system.FiveYearROI)
	switch {
	case tco < 0 && roi > 0:
		return domain.OptionManagedPayroll
	case tco > 0 && roi < 0:
		return domain.OptionPayrollSystem
	case roi > 0:
		return domain.OptionManagedPayroll
	case roi < 0:
		return domain.OptionPayrollSystem
	default:
		return domain.OptionEqual
	}
}

// ComparePayrollOptions compares an in-house payroll system against a managed service
func ComparePayrollOptions(system domain.PayrollSystemResults, managed domain.ManagedPayrollResults) domain.ComparisonMetrics {
	return CompareROIResults(system.ROIResults, managed.ROIResults)
}
