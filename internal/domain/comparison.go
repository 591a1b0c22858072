package domain

import "github.com/shopspring/decimal"

// Option names the winning payroll strategy for a metric
type Option string

const (
	OptionPayrollSystem  Option = "payrollSystem"
	OptionManagedPayroll Option = "managedPayroll"
	OptionEqual          Option = "equal"
)

// Swap returns the opposite verdict; equal stays equal
func (o Option) Swap() Option {
	switch o {
	case OptionPayrollSystem:
		return OptionManagedPayroll
	case OptionManagedPayroll:
		return OptionPayrollSystem
	default:
		return o
	}
}

// Metric identifies a compared figure
type Metric string

const (
	MetricFirstYearROI       Metric = "first_year_roi"
	MetricThreeYearROI       Metric = "three_year_roi"
	MetricFiveYearROI        Metric = "five_year_roi"
	MetricPaybackPeriod      Metric = "payback_period"
	MetricAnnualSavings      Metric = "annual_savings"
	MetricFiveYearSavings    Metric = "five_year_savings"
	MetricSavingsPerEmployee Metric = "savings_per_employee"
	MetricAnnualCost         Metric = "annual_cost"
	MetricOneTimeCost        Metric = "one_time_cost"
	MetricCostPerPayslip     Metric = "cost_per_payslip"
	MetricTCO5Year           Metric = "tco_5_year"
)

// AllMetrics lists the compared metrics in display order
var AllMetrics = []Metric{
	MetricFirstYearROI,
	MetricThreeYearROI,
	MetricFiveYearROI,
	MetricPaybackPeriod,
	MetricAnnualSavings,
	MetricFiveYearSavings,
	MetricSavingsPerEmployee,
	MetricAnnualCost,
	MetricOneTimeCost,
	MetricCostPerPayslip,
	MetricTCO5Year,
}

// ComparisonMetrics holds the per-metric differences between the two options.
// ROI and savings differences are managed minus system; cost and payback
// differences are system minus managed.
type ComparisonMetrics struct {
	FirstYearROIDiff       decimal.Decimal   `json:"first_year_roi_diff"`
	ThreeYearROIDiff       decimal.Decimal   `json:"three_year_roi_diff"`
	FiveYearROIDiff        decimal.Decimal   `json:"five_year_roi_diff"`
	PaybackMonthsDiff      decimal.Decimal   `json:"payback_months_diff"`
	AnnualSavingsDiff      decimal.Decimal   `json:"annual_savings_diff"`
	FiveYearSavingsDiff    decimal.Decimal   `json:"five_year_savings_diff"`
	SavingsPerEmployeeDiff decimal.Decimal   `json:"savings_per_employee_diff"`
	AnnualCostDiff         decimal.Decimal   `json:"annual_cost_diff"`
	OneTimeCostDiff        decimal.Decimal   `json:"one_time_cost_diff"`
	CostPerPayslipDiff     decimal.Decimal   `json:"cost_per_payslip_diff"`
	TCO5YearDiff           decimal.Decimal   `json:"tco_5_year_diff"`
	BetterOption           map[Metric]Option `json:"better_option"`
	Overall                Option            `json:"overall"`
}

// Diff returns the difference recorded for a metric
func (c ComparisonMetrics) Diff(m Metric) decimal.Decimal {
	switch m {
	case MetricFirstYearROI:
		return c.FirstYearROIDiff
	case MetricThreeYearROI:
		return c.ThreeYearROIDiff
	case MetricFiveYearROI:
		return c.FiveYearROIDiff
	case MetricPaybackPeriod:
		return c.PaybackMonthsDiff
	case MetricAnnualSavings:
		return c.AnnualSavingsDiff
	case MetricFiveYearSavings:
		return c.FiveYearSavingsDiff
	case MetricSavingsPerEmployee:
		return c.SavingsPerEmployeeDiff
	case MetricAnnualCost:
		return c.AnnualCostDiff
	case MetricOneTimeCost:
		return c.OneTimeCostDiff
	case MetricCostPerPayslip:
		return c.CostPerPayslipDiff
	case MetricTCO5Year:
		return c.TCO5YearDiff
	}
	return decimal.Zero
}

// Label returns a human readable metric name
func (m Metric) Label() string {
	switch m {
	case MetricFirstYearROI:
		return "First-year ROI"
	case MetricThreeYearROI:
		return "Three-year ROI"
	case MetricFiveYearROI:
		return "Five-year ROI"
	case MetricPaybackPeriod:
		return "Payback period"
	case MetricAnnualSavings:
		return "Net annual savings"
	case MetricFiveYearSavings:
		return "Five-year net savings"
	case MetricSavingsPerEmployee:
		return "Savings per employee"
	case MetricAnnualCost:
		return "Annual cost"
	case MetricOneTimeCost:
		return "One-off cost"
	case MetricCostPerPayslip:
		return "Cost per payslip"
	case MetricTCO5Year:
		return "Five-year TCO"
	}
	return string(m)
}

// Unit classifies how a metric's values are displayed
type Unit int

const (
	UnitCurrency Unit = iota
	UnitPercent
	UnitMonths
)

// Unit returns the display unit of the metric
func (m Metric) Unit() Unit {
	switch m {
	case MetricFirstYearROI, MetricThreeYearROI, MetricFiveYearROI:
		return UnitPercent
	case MetricPaybackPeriod:
		return UnitMonths
	default:
		return UnitCurrency
	}
}

// Metric returns the value of a compared metric
func (r ROIResults) Metric(m Metric) decimal.Decimal {
	switch m {
	case MetricFirstYearROI:
		return r.FirstYearROI
	case MetricThreeYearROI:
		return r.ThreeYearROI
	case MetricFiveYearROI:
		return r.FiveYearROI
	case MetricPaybackPeriod:
		return r.PaybackPeriodMonths
	case MetricAnnualSavings:
		return r.NetAnnualBenefit
	case MetricFiveYearSavings:
		return r.FiveYearNetSavings
	case MetricSavingsPerEmployee:
		return r.SavingsPerEmployee
	case MetricAnnualCost:
		return r.AnnualCosts
	case MetricOneTimeCost:
		return r.OneOffCosts
	case MetricCostPerPayslip:
		return r.CostPerPayslip
	case MetricTCO5Year:
		return r.TotalCostOfOwnership5Year
	}
	return decimal.Zero
}
