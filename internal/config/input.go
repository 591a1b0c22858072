package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/internal/validation"
	"github.com/ukpayroll/roi-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and checks a scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Scenario, error) {
	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario checks the structure of a scenario and normalises its tax year.
// Numeric business rules are left to the validation package, which reports
// them as findings rather than failing the load.
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if scenario.TaxYear != "" {
		taxYear, err := dateutil.NormalizeTaxYear(scenario.TaxYear)
		if err != nil {
			return fmt.Errorf("tax_year: %w", err)
		}
		scenario.TaxYear = taxYear
	}

	switch scenario.Region {
	case "", domain.RegionUK, domain.RegionScotland:
	default:
		return fmt.Errorf("region must be %q or %q, got %q", domain.RegionUK, domain.RegionScotland, scenario.Region)
	}

	if !scenario.HasBenefits() && !scenario.HasPayroll() {
		return fmt.Errorf("scenario must enable at least one benefit or provide payroll inputs")
	}

	for benefitType := range scenario.Benefits {
		if !benefitType.IsKnown() {
			return fmt.Errorf("unknown benefit type %q", benefitType)
		}
	}

	// Benefits left out of the file take the defaults, disabled.
	if scenario.Benefits == nil {
		scenario.Benefits = domain.DefaultMultiBenefitConfig()
	} else {
		for benefitType, cfg := range domain.DefaultMultiBenefitConfig() {
			if _, ok := scenario.Benefits[benefitType]; !ok {
				scenario.Benefits[benefitType] = cfg
			}
		}
	}

	if years := scenario.Projection.Years; years < 0 || years > calculation.MaxProjectionYears {
		return fmt.Errorf("projection years must be between 0 and %d", calculation.MaxProjectionYears)
	}
	if scenario.Projection.Years > 0 && scenario.EmployeeCount <= 0 {
		return fmt.Errorf("employee_count is required for a projection")
	}

	if errs := validation.Errors(validation.ValidateProjection(scenario.Projection)); len(errs) > 0 {
		return fmt.Errorf("%s: %s", errs[0].Field, errs[0].Message)
	}

	return nil
}

// CreateExampleScenario creates an example scenario for a mid-sized employer
func (ip *InputParser) CreateExampleScenario() *domain.Scenario {
	benefits := domain.DefaultMultiBenefitConfig()
	benefits[domain.BenefitPension] = domain.BenefitConfig{
		Enabled:           true,
		ParticipationRate: decimal.NewFromInt(80),
		ContributionValue: decimal.NewFromInt(5),
	}
	benefits[domain.BenefitCycleToWork] = domain.BenefitConfig{
		Enabled:           true,
		ParticipationRate: decimal.NewFromInt(5),
		ContributionValue: decimal.NewFromInt(1000),
	}
	p11d := decimal.NewFromInt(45000)
	benefits[domain.BenefitEVCarScheme] = domain.BenefitConfig{
		Enabled:           true,
		ParticipationRate: decimal.NewFromInt(3),
		ContributionValue: decimal.NewFromInt(550),
		P11DValue:         &p11d,
	}

	return &domain.Scenario{
		Name:          "Example Manufacturing Ltd",
		TaxYear:       "2025/26",
		Region:        domain.RegionUK,
		EmployeeCount: 250,
		AverageSalary: decimal.NewFromInt(32000),
		Benefits:      benefits,
		Projection: domain.ProjectionSettings{
			Years: 5,
			GrowthRates: domain.GrowthRates{
				EmployeeGrowth:     decimal.NewFromFloat(0.03),
				SalaryGrowth:       decimal.NewFromFloat(0.025),
				ContributionGrowth: decimal.NewFromFloat(0.02),
			},
		},
		Payroll: domain.CombinedPayrollInputs{
			EmployeeCount:              250,
			PayrollStaffCount:          decimal.NewFromInt(2),
			AvgHourlyRate:              decimal.NewFromInt(18),
			MonthlyPayrolls:            decimal.NewFromInt(1),
			WeeklyPayrolls:             decimal.NewFromInt(1),
			CurrentStaffCosts:          decimal.NewFromInt(68000),
			CurrentSoftwareCosts:       decimal.NewFromInt(6500),
			CurrentTrainingCosts:       decimal.NewFromInt(1500),
			CurrentInfrastructureCosts: decimal.NewFromInt(2500),
			CurrentOtherCosts:          decimal.NewFromInt(800),
			HoursPerPayRun:             decimal.NewFromInt(12),
			QueryHoursPerMonth:         decimal.NewFromInt(20),
			YearEndHours:               decimal.NewFromInt(40),
			ErrorsPerYear:              decimal.NewFromInt(24),
			CostPerError:               decimal.NewFromInt(150),
			ComplianceIssuesPerYear:    decimal.NewFromInt(2),
			CostPerComplianceIssue:     decimal.NewFromInt(1200),
			AnnualPaperCosts:           decimal.NewFromInt(900),
			AnnualPostageCosts:         decimal.NewFromInt(1400),
			MonthlyCost:                decimal.NewFromInt(750),
			AdditionalMonthlyCosts:     decimal.NewFromInt(50),
			AdditionalAnnualCosts:      decimal.NewFromInt(1200),
			AdditionalOneOffCosts:      decimal.NewFromInt(8000),
			ProcessingTimeReduction:    decimal.NewFromInt(60),
			QueryReduction:             decimal.NewFromInt(40),
			ErrorReduction:             decimal.NewFromInt(70),
			ComplianceReduction:        decimal.NewFromInt(80),
			WageSavings:                decimal.Zero,
		},
	}
}
