package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testScenario := "name: \"Acme Ltd\"\n" +
		"tax_year: \"2024-25\"\n" +
		"region: scotland\n" +
		"employee_count: 120\n" +
		"average_salary: 31000\n" +
		"benefits:\n" +
		"  pension:\n" +
		"    enabled: true\n" +
		"    participation_rate: 85\n" +
		"    contribution_value: 4.5\n" +
		"  ev_car_scheme:\n" +
		"    enabled: true\n" +
		"    participation_rate: 2\n" +
		"    contribution_value: 600\n" +
		"    p11d_value: 42000\n" +
		"projection:\n" +
		"  years: 5\n" +
		"  growth_rates:\n" +
		"    salary_growth: 0.03\n" +
		"payroll:\n" +
		"  monthly_payrolls: 1\n" +
		"  avg_hourly_rate: 17.5\n" +
		"  hours_per_pay_run: 10\n"

	tmpfile, err := os.CreateTemp("", "test_scenario_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testScenario))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	parser := NewInputParser()
	scenario, err := parser.LoadFromFile(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd", scenario.Name)
	assert.Equal(t, "2024/25", scenario.TaxYear)
	assert.Equal(t, domain.RegionScotland, scenario.Region)
	assert.Equal(t, 120, scenario.EmployeeCount)
	assert.True(t, scenario.AverageSalary.Equal(decimal.NewFromInt(31000)))

	pension := scenario.Benefits[domain.BenefitPension]
	assert.True(t, pension.Enabled)
	assert.True(t, pension.ContributionValue.Equal(decimal.NewFromFloat(4.5)))

	ev := scenario.Benefits[domain.BenefitEVCarScheme]
	require.NotNil(t, ev.P11DValue)
	assert.True(t, ev.P11DValue.Equal(decimal.NewFromInt(42000)))

	// Benefits missing from the file are filled in, disabled
	assert.Len(t, scenario.Benefits, len(domain.AllBenefitTypes))
	assert.False(t, scenario.Benefits[domain.BenefitHolidayTrading].Enabled)

	assert.Equal(t, 5, scenario.Projection.Years)
	assert.True(t, scenario.Projection.GrowthRates.SalaryGrowth.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, scenario.HasPayroll())
	assert.Equal(t, 120, scenario.PayrollInputs().EmployeeCount)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated"), 0o600))

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateScenario(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Scenario)
		wantErr string
	}{
		{"valid example", func(*domain.Scenario) {}, ""},
		{"missing name", func(s *domain.Scenario) { s.Name = "" }, "scenario name is required"},
		{"bad tax year", func(s *domain.Scenario) { s.TaxYear = "24/25" }, "tax_year"},
		{"bad region", func(s *domain.Scenario) { s.Region = "wales" }, "region must be"},
		{"unknown benefit", func(s *domain.Scenario) { s.Benefits["gym"] = domain.BenefitConfig{} }, "unknown benefit type"},
		{"too many years", func(s *domain.Scenario) { s.Projection.Years = 51 }, "projection years"},
		{"projection without employees", func(s *domain.Scenario) { s.EmployeeCount = 0 }, "employee_count is required"},
		{"collapsing growth", func(s *domain.Scenario) { s.Projection.GrowthRates.EmployeeGrowth = decimal.NewFromInt(-1) }, "employee_growth"},
		{"nothing to calculate", func(s *domain.Scenario) {
			s.Benefits = domain.DefaultMultiBenefitConfig()
			s.Payroll = domain.CombinedPayrollInputs{}
		}, "at least one benefit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			scenario := parser.CreateExampleScenario()
			tt.mutate(scenario)

			err := parser.ValidateScenario(scenario)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleScenario_RoundTrips(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleScenario()

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	parsed, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, example.Name, parsed.Name)
	assert.True(t, example.Payroll.CurrentStaffCosts.Equal(parsed.Payroll.CurrentStaffCosts))
	assert.True(t, example.Benefits[domain.BenefitEVCarScheme].P11DValue.Equal(*parsed.Benefits[domain.BenefitEVCarScheme].P11DValue))
}
