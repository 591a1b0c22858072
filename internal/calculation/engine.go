package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/internal/validation"
)

// CalculationEngine orchestrates the savings, projection and payroll calculations
// for a scenario. It holds no per-calculation state and is safe for concurrent use
// once configured.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) debugf(format string, args ...any) {
	if ce.Debug {
		ce.Logger.Debugf(format, args...)
	}
}

// PayrollComparison is the output of one payroll option comparison
type PayrollComparison struct {
	Common         domain.CommonPayrollValues
	PayrollSystem  domain.PayrollSystemResults
	ManagedPayroll domain.ManagedPayrollResults
	Comparison     domain.ComparisonMetrics
	Findings       []domain.ValidationWarning
}

// RunSavings validates the organisation figures and benefits, then aggregates the savings
func (ce *CalculationEngine) RunSavings(employeeCount int, avgSalary decimal.Decimal, benefits domain.MultiBenefitConfig, profile domain.TaxYearProfile) (*domain.CalculationResult, error) {
	findings := append(validation.ValidateSavingsInputs(employeeCount, avgSalary), validation.ValidateBenefits(benefits)...)
	if err := validation.NewValidationError(findings); err != nil {
		return nil, err
	}

	result, err := CalculateMultiBenefitSavings(employeeCount, avgSalary, benefits, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate benefit savings: %w", err)
	}
	ce.debugf("savings: %d employees, profile %s, annual savings %s, NI %s -> %s",
		employeeCount, profile.Key(), result.AnnualSavings.StringFixed(2),
		result.OriginalNI.StringFixed(2), result.ReducedNI.StringFixed(2))
	return &result, nil
}

// RunProjection validates the inputs and projects savings over several years
func (ce *CalculationEngine) RunProjection(ctx context.Context, employeeCount int, avgSalary decimal.Decimal, benefits domain.MultiBenefitConfig, profile domain.TaxYearProfile, settings domain.ProjectionSettings) (*domain.MultiYearProjection, error) {
	findings := append(validation.ValidateSavingsInputs(employeeCount, avgSalary), validation.ValidateBenefits(benefits)...)
	findings = append(findings, validation.ValidateProjection(settings)...)
	if err := validation.NewValidationError(findings); err != nil {
		return nil, err
	}

	projection, err := CalculateMultiYearProjection(ctx, employeeCount, avgSalary, benefits, profile, settings.Years, settings.GrowthRates)
	if err != nil {
		return nil, fmt.Errorf("failed to project savings: %w", err)
	}
	for _, y := range projection.Years {
		ce.debugf("projection year %d: %d employees, salary %s, savings %s",
			y.Year, y.EmployeeCount, y.AverageSalary.StringFixed(2), y.AnnualSavings.StringFixed(2))
	}
	return &projection, nil
}

// RunPayrollComparison validates the payroll inputs and compares both payroll options.
// Blocking findings return a *validation.ValidationError; warnings are carried in the result.
func (ce *CalculationEngine) RunPayrollComparison(inputs domain.CombinedPayrollInputs) (*PayrollComparison, error) {
	findings := validation.Validate(inputs)
	if err := validation.NewValidationError(findings); err != nil {
		return nil, err
	}
	for _, w := range findings {
		ce.Logger.Warnf("%s: %s", w.Field, w.Message)
	}

	system := CalculatePayrollSystemROI(inputs)
	managed := CalculateManagedPayrollROI(inputs)
	out := &PayrollComparison{
		Common:         CalculateCommonPayrollValues(inputs),
		PayrollSystem:  system,
		ManagedPayroll: managed,
		Comparison:     ComparePayrollOptions(system, managed),
		Findings:       findings,
	}
	ce.debugf("payroll: %s runs, system net %s (5y ROI %s%%), managed net %s (5y ROI %s%%), overall %s",
		out.Common.TotalAnnualPayRuns.String(),
		system.NetAnnualBenefit.StringFixed(2), system.FiveYearROI.StringFixed(1),
		managed.NetAnnualBenefit.StringFixed(2), managed.FiveYearROI.StringFixed(1),
		out.Comparison.Overall)
	return out, nil
}

// Run calculates every section a scenario asks for and bundles the results.
// Nothing is computed if any section has blocking findings.
func (ce *CalculationEngine) Run(ctx context.Context, scenario *domain.Scenario, profile domain.TaxYearProfile) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var findings []domain.ValidationWarning
	if scenario.HasBenefits() || scenario.Projection.Years > 0 {
		findings = append(findings, validation.ValidateSavingsInputs(scenario.EmployeeCount, scenario.AverageSalary)...)
		findings = append(findings, validation.ValidateBenefits(scenario.Benefits)...)
	}
	if scenario.Projection.Years > 0 {
		findings = append(findings, validation.ValidateProjection(scenario.Projection)...)
	}
	if scenario.HasPayroll() {
		findings = append(findings, validation.Validate(scenario.PayrollInputs())...)
	}
	if err := validation.NewValidationError(findings); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ScenarioName: scenario.Name,
		TaxYear:      profile.TaxYear,
		Region:       profile.Region,
		Findings:     findings,
	}
	ce.Logger.Infof("running scenario %q with tax profile %s", scenario.Name, profile.Key())

	if scenario.HasBenefits() {
		savings, err := ce.RunSavings(scenario.EmployeeCount, scenario.AverageSalary, scenario.Benefits, profile)
		if err != nil {
			return nil, err
		}
		report.Savings = savings
	}

	if scenario.Projection.Years > 0 {
		projection, err := ce.RunProjection(ctx, scenario.EmployeeCount, scenario.AverageSalary, scenario.Benefits, profile, scenario.Projection)
		if err != nil {
			return nil, err
		}
		report.Projection = projection
	}

	if scenario.HasPayroll() {
		payroll, err := ce.RunPayrollComparison(scenario.PayrollInputs())
		if err != nil {
			return nil, err
		}
		report.Common = &payroll.Common
		report.PayrollSystem = &payroll.PayrollSystem
		report.ManagedPayroll = &payroll.ManagedPayroll
		report.Comparison = &payroll.Comparison
	}

	return report, nil
}
