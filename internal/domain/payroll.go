package domain

import "github.com/shopspring/decimal"

// CombinedPayrollInputs is the shared input snapshot for both payroll options.
// Reduction fields are percentages on the 0-100 scale.
type CombinedPayrollInputs struct {
	// Headcount and staff
	EmployeeCount     int             `yaml:"employee_count" json:"employee_count"`
	PayrollStaffCount decimal.Decimal `yaml:"payroll_staff_count" json:"payroll_staff_count"`
	AvgHourlyRate     decimal.Decimal `yaml:"avg_hourly_rate" json:"avg_hourly_rate"`

	// Number of payrolls run at each frequency
	MonthlyPayrolls     decimal.Decimal `yaml:"monthly_payrolls" json:"monthly_payrolls"`
	FourWeeklyPayrolls  decimal.Decimal `yaml:"four_weekly_payrolls" json:"four_weekly_payrolls"`
	WeeklyPayrolls      decimal.Decimal `yaml:"weekly_payrolls" json:"weekly_payrolls"`
	FortnightlyPayrolls decimal.Decimal `yaml:"fortnightly_payrolls" json:"fortnightly_payrolls"`
	LunarPayrolls       decimal.Decimal `yaml:"lunar_payrolls" json:"lunar_payrolls"`

	// Current annual costs
	CurrentStaffCosts          decimal.Decimal `yaml:"current_staff_costs" json:"current_staff_costs"`
	CurrentSoftwareCosts       decimal.Decimal `yaml:"current_software_costs" json:"current_software_costs"`
	CurrentTrainingCosts       decimal.Decimal `yaml:"current_training_costs" json:"current_training_costs"`
	CurrentInfrastructureCosts decimal.Decimal `yaml:"current_infrastructure_costs" json:"current_infrastructure_costs"`
	CurrentOtherCosts          decimal.Decimal `yaml:"current_other_costs" json:"current_other_costs"`

	// Time spent
	HoursPerPayRun     decimal.Decimal `yaml:"hours_per_pay_run" json:"hours_per_pay_run"`
	QueryHoursPerMonth decimal.Decimal `yaml:"query_hours_per_month" json:"query_hours_per_month"`
	YearEndHours       decimal.Decimal `yaml:"year_end_hours" json:"year_end_hours"`

	// Errors and compliance
	ErrorsPerYear           decimal.Decimal `yaml:"errors_per_year" json:"errors_per_year"`
	CostPerError            decimal.Decimal `yaml:"cost_per_error" json:"cost_per_error"`
	ComplianceIssuesPerYear decimal.Decimal `yaml:"compliance_issues_per_year" json:"compliance_issues_per_year"`
	CostPerComplianceIssue  decimal.Decimal `yaml:"cost_per_compliance_issue" json:"cost_per_compliance_issue"`

	// Paper
	AnnualPaperCosts   decimal.Decimal `yaml:"annual_paper_costs" json:"annual_paper_costs"`
	AnnualPostageCosts decimal.Decimal `yaml:"annual_postage_costs" json:"annual_postage_costs"`

	// New system or service costs
	MonthlyCost            decimal.Decimal `yaml:"monthly_cost" json:"monthly_cost"`
	AdditionalMonthlyCosts decimal.Decimal `yaml:"additional_monthly_costs" json:"additional_monthly_costs"`
	AdditionalAnnualCosts  decimal.Decimal `yaml:"additional_annual_costs" json:"additional_annual_costs"`
	AdditionalOneOffCosts  decimal.Decimal `yaml:"additional_one_off_costs" json:"additional_one_off_costs"`

	// Expected improvements with an in-house payroll system
	ProcessingTimeReduction decimal.Decimal `yaml:"processing_time_reduction" json:"processing_time_reduction"`
	QueryReduction          decimal.Decimal `yaml:"query_reduction" json:"query_reduction"`
	ErrorReduction          decimal.Decimal `yaml:"error_reduction" json:"error_reduction"`
	ComplianceReduction     decimal.Decimal `yaml:"compliance_reduction" json:"compliance_reduction"`

	WageSavings decimal.Decimal `yaml:"wage_savings" json:"wage_savings"`
}

// CommonPayrollValues are derived once and shared by both payroll options
type CommonPayrollValues struct {
	TotalAnnualPayRuns       decimal.Decimal `json:"total_annual_pay_runs"`
	CurrentAnnualPayrollCost decimal.Decimal `json:"current_annual_payroll_cost"`
	AnnualSystemCosts        decimal.Decimal `json:"annual_system_costs"`
	TotalPayslipsPerYear     decimal.Decimal `json:"total_payslips_per_year"`
	CurrentCostPerPayslip    decimal.Decimal `json:"current_cost_per_payslip"`
}

// ROIMetrics are the investment figures derived from a net annual benefit
type ROIMetrics struct {
	FirstYearROI              decimal.Decimal `json:"first_year_roi"`
	ThreeYearROI              decimal.Decimal `json:"three_year_roi"`
	FiveYearROI               decimal.Decimal `json:"five_year_roi"`
	PaybackPeriodMonths       decimal.Decimal `json:"payback_period_months"`
	TotalCostOfOwnership5Year decimal.Decimal `json:"total_cost_of_ownership_5_year"`
}

// ROIResults holds the fields shared by both payroll option results
type ROIResults struct {
	EfficiencySavings     decimal.Decimal `json:"efficiency_savings"`
	YearEndSavings        decimal.Decimal `json:"year_end_savings"`
	QueryHandlingSavings  decimal.Decimal `json:"query_handling_savings"`
	ErrorReductionSavings decimal.Decimal `json:"error_reduction_savings"`
	PaperSavings          decimal.Decimal `json:"paper_savings"`
	WageSavings           decimal.Decimal `json:"wage_savings"`
	TotalAnnualBenefits   decimal.Decimal `json:"total_annual_benefits"`
	OneOffCosts           decimal.Decimal `json:"one_off_costs"`
	AnnualCosts           decimal.Decimal `json:"annual_costs"`
	NetAnnualBenefit      decimal.Decimal `json:"net_annual_benefit"`
	SavingsPerEmployee    decimal.Decimal `json:"savings_per_employee"`
	CostPerPayslip        decimal.Decimal `json:"cost_per_payslip"`
	FiveYearNetSavings    decimal.Decimal `json:"five_year_net_savings"`
	ROIMetrics
}

// PayrollSystemResults is the in-house payroll software model
type PayrollSystemResults struct {
	ROIResults
	InitialInvestment decimal.Decimal `json:"initial_investment"`
}

// ManagedPayrollResults is the outsourced payroll service model
type ManagedPayrollResults struct {
	ROIResults
	TransitionCosts decimal.Decimal       `json:"transition_costs"`
	CostBreakdown   ManagedCostBreakdown `json:"cost_breakdown"`
}

// ManagedCostBreakdown lists the current cost categories outsourcing removes outright
type ManagedCostBreakdown struct {
	StaffSavings            decimal.Decimal `json:"staff_savings"`
	SoftwareSavings         decimal.Decimal `json:"software_savings"`
	InfrastructureSavings   decimal.Decimal `json:"infrastructure_savings"`
	TrainingAndOtherSavings decimal.Decimal `json:"training_and_other_savings"`
	Total                   decimal.Decimal `json:"total"`
}

// PayFrequency names a pay-run cadence
type PayFrequency string

const (
	FrequencyMonthly     PayFrequency = "monthly"
	FrequencyFourWeekly  PayFrequency = "four_weekly"
	FrequencyWeekly      PayFrequency = "weekly"
	FrequencyFortnightly PayFrequency = "fortnightly"
	FrequencyLunar       PayFrequency = "lunar"
)

// AllPayFrequencies lists the frequencies in display order
var AllPayFrequencies = []PayFrequency{
	FrequencyMonthly,
	FrequencyFourWeekly,
	FrequencyWeekly,
	FrequencyFortnightly,
	FrequencyLunar,
}

// RunsPerYear returns how many pay runs the frequency produces in a year
func (f PayFrequency) RunsPerYear() decimal.Decimal {
	switch f {
	case FrequencyMonthly:
		return decimal.NewFromInt(12)
	case FrequencyFourWeekly:
		return decimal.NewFromInt(13)
	case FrequencyWeekly:
		return decimal.NewFromInt(52)
	case FrequencyFortnightly:
		return decimal.NewFromInt(26)
	case FrequencyLunar:
		return decimal.RequireFromString("13.04")
	}
	return decimal.Zero
}

// PayrollCount returns the number of payrolls run at frequency f
func (in CombinedPayrollInputs) PayrollCount(f PayFrequency) decimal.Decimal {
	switch f {
	case FrequencyMonthly:
		return in.MonthlyPayrolls
	case FrequencyFourWeekly:
		return in.FourWeeklyPayrolls
	case FrequencyWeekly:
		return in.WeeklyPayrolls
	case FrequencyFortnightly:
		return in.FortnightlyPayrolls
	case FrequencyLunar:
		return in.LunarPayrolls
	}
	return decimal.Zero
}

// TotalAnnualPayRuns sums every frequency's payroll count times its runs per year
func (in CombinedPayrollInputs) TotalAnnualPayRuns() decimal.Decimal {
	total := decimal.Zero
	for _, f := range AllPayFrequencies {
		total = total.Add(in.PayrollCount(f).Mul(f.RunsPerYear()))
	}
	return total
}
