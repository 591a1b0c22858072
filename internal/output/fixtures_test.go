package output

import (
	"context"
	"testing"

	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/config"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// buildTestReport runs the example scenario through the engine
func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	scenario := config.NewInputParser().CreateExampleScenario()
	profile, err := config.NewTaxProfileRegistry().Lookup(scenario.TaxYear, scenario.Region)
	if err != nil {
		t.Fatalf("lookup profile: %v", err)
	}
	report, err := calculation.NewCalculationEngine().Run(context.Background(), scenario, profile)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
	report.Assumptions = GenerateAssumptions(profile)
	return report
}
