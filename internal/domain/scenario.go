package domain

import "github.com/shopspring/decimal"

// Scenario is the complete input for one organisation, as read from a scenario file
type Scenario struct {
	Name          string                `yaml:"name" json:"name"`
	TaxYear       string                `yaml:"tax_year,omitempty" json:"tax_year,omitempty"`
	Region        TaxRegion             `yaml:"region,omitempty" json:"region,omitempty"`
	EmployeeCount int                   `yaml:"employee_count" json:"employee_count"`
	AverageSalary decimal.Decimal       `yaml:"average_salary" json:"average_salary"`
	Benefits      MultiBenefitConfig    `yaml:"benefits,omitempty" json:"benefits,omitempty"`
	Projection    ProjectionSettings    `yaml:"projection,omitempty" json:"projection,omitempty"`
	Payroll       CombinedPayrollInputs `yaml:"payroll" json:"payroll"`
}

// ProjectionSettings configures the multi-year savings projection
type ProjectionSettings struct {
	Years       int         `yaml:"years" json:"years"`
	GrowthRates GrowthRates `yaml:"growth_rates" json:"growth_rates"`
}

// HasBenefits reports whether any benefit is enabled
func (s *Scenario) HasBenefits() bool {
	return len(s.Benefits.EnabledTypes()) > 0
}

// HasPayroll reports whether the scenario carries payroll comparison inputs.
// Any non-zero payroll field counts, so a partial section still reaches validation.
func (s *Scenario) HasPayroll() bool {
	p := s.Payroll
	if p.EmployeeCount != 0 {
		return true
	}
	for _, v := range []decimal.Decimal{
		p.PayrollStaffCount, p.AvgHourlyRate,
		p.MonthlyPayrolls, p.FourWeeklyPayrolls, p.WeeklyPayrolls, p.FortnightlyPayrolls, p.LunarPayrolls,
		p.CurrentStaffCosts, p.CurrentSoftwareCosts, p.CurrentTrainingCosts, p.CurrentInfrastructureCosts, p.CurrentOtherCosts,
		p.HoursPerPayRun, p.QueryHoursPerMonth, p.YearEndHours,
		p.ErrorsPerYear, p.CostPerError, p.ComplianceIssuesPerYear, p.CostPerComplianceIssue,
		p.AnnualPaperCosts, p.AnnualPostageCosts,
		p.MonthlyCost, p.AdditionalMonthlyCosts, p.AdditionalAnnualCosts, p.AdditionalOneOffCosts,
		p.ProcessingTimeReduction, p.QueryReduction, p.ErrorReduction, p.ComplianceReduction,
		p.WageSavings,
	} {
		if !v.IsZero() {
			return true
		}
	}
	return false
}

// Report bundles every engine output for one scenario; formatters render it
type Report struct {
	ScenarioName   string                 `json:"scenario_name"`
	TaxYear        string                 `json:"tax_year"`
	Region         TaxRegion              `json:"region"`
	Savings        *CalculationResult     `json:"savings,omitempty"`
	Projection     *MultiYearProjection   `json:"projection,omitempty"`
	Common         *CommonPayrollValues   `json:"common,omitempty"`
	PayrollSystem  *PayrollSystemResults  `json:"payroll_system,omitempty"`
	ManagedPayroll *ManagedPayrollResults `json:"managed_payroll,omitempty"`
	Comparison     *ComparisonMetrics     `json:"comparison,omitempty"`
	Findings       []ValidationWarning    `json:"findings,omitempty"`
	Assumptions    []string               `json:"assumptions,omitempty"`
}

// PayrollInputs returns the payroll inputs, taking the headcount from the
// scenario when the payroll section leaves it unset
func (s *Scenario) PayrollInputs() CombinedPayrollInputs {
	in := s.Payroll
	if in.EmployeeCount == 0 {
		in.EmployeeCount = s.EmployeeCount
	}
	return in
}
