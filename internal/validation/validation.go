// Package validation inspects payroll and benefit inputs and reports findings.
// Error findings block calculation; warnings are advisory. Nothing here mutates
// its inputs or returns a Go error for bad data.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// UKMinimumHourlyWage is the National Living Wage for workers aged 21 and over (April 2025)
var UKMinimumHourlyWage = decimal.RequireFromString("12.21")

var (
	hundred              = decimal.NewFromInt(100)
	minusOne             = decimal.NewFromInt(-1)
	highReduction        = decimal.NewFromInt(80)
	annualHoursPerStaff  = decimal.NewFromInt(1800)
	hoursPerWeek         = decimal.RequireFromString("37.5")
	workingWeeksPerYear  = decimal.NewFromInt(48)
	monthsPerYear        = decimal.NewFromInt(12)
	minEmployeesPerStaff = decimal.NewFromInt(50)
	maxEmployeesPerStaff = decimal.NewFromInt(500)
)

// ValidationError carries the blocking findings that stopped a calculation
type ValidationError struct {
	Findings []domain.ValidationWarning
}

func (e *ValidationError) Error() string {
	errs := Errors(e.Findings)
	msgs := make([]string, 0, len(errs))
	for _, f := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// NewValidationError returns a *ValidationError if findings contain errors, nil otherwise
func NewValidationError(findings []domain.ValidationWarning) error {
	if !HasErrors(findings) {
		return nil
	}
	return &ValidationError{Findings: findings}
}

func errorf(field, format string, args ...any) domain.ValidationWarning {
	return domain.ValidationWarning{Field: field, Message: fmt.Sprintf(format, args...), Type: domain.SeverityError}
}

func warnf(field, format string, args ...any) domain.ValidationWarning {
	return domain.ValidationWarning{Field: field, Message: fmt.Sprintf(format, args...), Type: domain.SeverityWarning}
}

type namedValue struct {
	field string
	value decimal.Decimal
}

// Validate checks a payroll comparison input snapshot
func Validate(in domain.CombinedPayrollInputs) []domain.ValidationWarning {
	var findings []domain.ValidationWarning

	if !anyFrequencySet(in) {
		findings = append(findings, errorf("payroll_frequencies", "at least one payroll frequency must be greater than zero"))
	}

	if in.EmployeeCount <= 0 {
		findings = append(findings, errorf("employee_count", "employee count must be greater than zero"))
	}

	for _, nv := range nonNegativeFields(in) {
		if nv.value.IsNegative() {
			findings = append(findings, errorf(nv.field, "%s cannot be negative", nv.field))
		}
	}

	for _, nv := range reductionFields(in) {
		switch {
		case nv.value.IsNegative() || nv.value.GreaterThan(hundred):
			findings = append(findings, errorf(nv.field, "%s must be between 0 and 100", nv.field))
		case nv.field != "compliance_reduction" && nv.value.GreaterThan(highReduction):
			findings = append(findings, warnf(nv.field, "a %s%% reduction is optimistic; most organisations see less than 80%%", nv.value.String()))
		}
	}

	if in.AvgHourlyRate.IsPositive() && in.AvgHourlyRate.LessThan(UKMinimumHourlyWage) {
		findings = append(findings, errorf("avg_hourly_rate", "hourly rate £%s is below the UK minimum wage of £%s",
			in.AvgHourlyRate.StringFixed(2), UKMinimumHourlyWage.StringFixed(2)))
	}

	findings = append(findings, staffingWarnings(in)...)
	return findings
}

func anyFrequencySet(in domain.CombinedPayrollInputs) bool {
	for _, f := range domain.AllPayFrequencies {
		if in.PayrollCount(f).IsPositive() {
			return true
		}
	}
	return false
}

func nonNegativeFields(in domain.CombinedPayrollInputs) []namedValue {
	return []namedValue{
		{"payroll_staff_count", in.PayrollStaffCount},
		{"avg_hourly_rate", in.AvgHourlyRate},
		{"monthly_payrolls", in.MonthlyPayrolls},
		{"four_weekly_payrolls", in.FourWeeklyPayrolls},
		{"weekly_payrolls", in.WeeklyPayrolls},
		{"fortnightly_payrolls", in.FortnightlyPayrolls},
		{"lunar_payrolls", in.LunarPayrolls},
		{"current_staff_costs", in.CurrentStaffCosts},
		{"current_software_costs", in.CurrentSoftwareCosts},
		{"current_training_costs", in.CurrentTrainingCosts},
		{"current_infrastructure_costs", in.CurrentInfrastructureCosts},
		{"current_other_costs", in.CurrentOtherCosts},
		{"hours_per_pay_run", in.HoursPerPayRun},
		{"query_hours_per_month", in.QueryHoursPerMonth},
		{"year_end_hours", in.YearEndHours},
		{"errors_per_year", in.ErrorsPerYear},
		{"cost_per_error", in.CostPerError},
		{"compliance_issues_per_year", in.ComplianceIssuesPerYear},
		{"cost_per_compliance_issue", in.CostPerComplianceIssue},
		{"annual_paper_costs", in.AnnualPaperCosts},
		{"annual_postage_costs", in.AnnualPostageCosts},
		{"monthly_cost", in.MonthlyCost},
		{"additional_monthly_costs", in.AdditionalMonthlyCosts},
		{"additional_annual_costs", in.AdditionalAnnualCosts},
		{"additional_one_off_costs", in.AdditionalOneOffCosts},
		{"wage_savings", in.WageSavings},
	}
}

func reductionFields(in domain.CombinedPayrollInputs) []namedValue {
	return []namedValue{
		{"processing_time_reduction", in.ProcessingTimeReduction},
		{"query_reduction", in.QueryReduction},
		{"error_reduction", in.ErrorReduction},
		{"compliance_reduction", in.ComplianceReduction},
	}
}

// staffingWarnings applies the benchmark heuristics around payroll staff
func staffingWarnings(in domain.CombinedPayrollInputs) []domain.ValidationWarning {
	var findings []domain.ValidationWarning
	staff := in.PayrollStaffCount
	if !staff.IsPositive() {
		return nil
	}

	implied := staff.Mul(in.AvgHourlyRate).Mul(annualHoursPerStaff)
	if in.CurrentStaffCosts.IsPositive() && implied.GreaterThan(in.CurrentStaffCosts) {
		findings = append(findings, warnf("current_staff_costs",
			"%s payroll staff at £%s/hour cost about £%s a year, more than the £%s entered as current staff costs",
			staff.String(), in.AvgHourlyRate.StringFixed(2), implied.StringFixed(0), in.CurrentStaffCosts.StringFixed(0)))
	}

	totalHours := in.HoursPerPayRun.Mul(in.TotalAnnualPayRuns()).
		Add(in.QueryHoursPerMonth.Mul(monthsPerYear)).
		Add(in.YearEndHours)
	capacity := staff.Mul(hoursPerWeek).Mul(workingWeeksPerYear)
	if totalHours.GreaterThan(capacity) {
		findings = append(findings, warnf("hours_per_pay_run",
			"%s payroll hours a year exceeds the %s hours %s staff can work", totalHours.StringFixed(0), capacity.StringFixed(0), staff.String()))
	}

	employees := decimal.NewFromInt(int64(in.EmployeeCount))
	ratio := employees.Div(staff)
	switch {
	case in.EmployeeCount > 100 && ratio.LessThan(minEmployeesPerStaff):
		findings = append(findings, warnf("payroll_staff_count",
			"%s employees per payroll staff member is below the typical range of 50-500", ratio.StringFixed(0)))
	case in.EmployeeCount > 50 && ratio.GreaterThan(maxEmployeesPerStaff):
		findings = append(findings, warnf("payroll_staff_count",
			"%s employees per payroll staff member is above the typical range of 50-500", ratio.StringFixed(0)))
	}
	return findings
}

// ValidateBenefits checks a multi-benefit configuration
func ValidateBenefits(cfg domain.MultiBenefitConfig) []domain.ValidationWarning {
	var findings []domain.ValidationWarning
	var unknown []string
	for benefitType := range cfg {
		if !benefitType.IsKnown() {
			unknown = append(unknown, string(benefitType))
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		findings = append(findings, errorf("benefits", "unknown benefit type %q", name))
	}
	for _, benefitType := range domain.AllBenefitTypes {
		b, ok := cfg[benefitType]
		if !ok {
			continue
		}
		field := "benefits." + string(benefitType)
		if b.ParticipationRate.IsNegative() || b.ParticipationRate.GreaterThan(hundred) {
			findings = append(findings, errorf(field+".participation_rate", "participation rate must be between 0 and 100"))
		}
		if b.ContributionValue.IsNegative() {
			findings = append(findings, errorf(field+".contribution_value", "contribution value cannot be negative"))
		}
		if benefitType == domain.BenefitPension && b.ContributionValue.GreaterThan(hundred) {
			findings = append(findings, errorf(field+".contribution_value", "pension contribution is a percentage of salary and cannot exceed 100"))
		}
		if b.P11DValue != nil && b.P11DValue.IsNegative() {
			findings = append(findings, errorf(field+".p11d_value", "P11D value cannot be negative"))
		}
	}
	return findings
}

// ValidateSavingsInputs checks the organisation figures the benefit aggregator needs
func ValidateSavingsInputs(employeeCount int, avgSalary decimal.Decimal) []domain.ValidationWarning {
	var findings []domain.ValidationWarning
	if employeeCount <= 0 {
		findings = append(findings, errorf("employee_count", "employee count must be greater than zero"))
	}
	if avgSalary.IsNegative() {
		findings = append(findings, errorf("average_salary", "average salary cannot be negative"))
	}
	return findings
}

// ValidateProjection checks the growth rates of a multi-year projection. A rate of
// -1 or below would shrink headcount, salary or contributions to zero or less.
func ValidateProjection(settings domain.ProjectionSettings) []domain.ValidationWarning {
	var findings []domain.ValidationWarning
	g := settings.GrowthRates
	for _, nv := range []namedValue{
		{"employee_growth", g.EmployeeGrowth},
		{"salary_growth", g.SalaryGrowth},
		{"contribution_growth", g.ContributionGrowth},
	} {
		if nv.value.LessThanOrEqual(minusOne) {
			findings = append(findings, errorf("projection.growth_rates."+nv.field,
				"%s must be greater than -1, got %s", strings.ReplaceAll(nv.field, "_", " "), nv.value.String()))
		}
	}
	return findings
}

// HasErrors reports whether any finding blocks calculation
func HasErrors(findings []domain.ValidationWarning) bool {
	for _, f := range findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

// Errors returns only the blocking findings
func Errors(findings []domain.ValidationWarning) []domain.ValidationWarning {
	return filter(findings, domain.SeverityError)
}

// Warnings returns only the advisory findings
func Warnings(findings []domain.ValidationWarning) []domain.ValidationWarning {
	return filter(findings, domain.SeverityWarning)
}

func filter(findings []domain.ValidationWarning, severity domain.Severity) []domain.ValidationWarning {
	var out []domain.ValidationWarning
	for _, f := range findings {
		if f.Type == severity {
			out = append(out, f)
		}
	}
	return out
}
