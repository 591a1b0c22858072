package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

func cycleOnly() domain.MultiBenefitConfig {
	benefits := domain.DefaultMultiBenefitConfig()
	benefits[domain.BenefitCycleToWork] = enabled("10", "1000")
	return benefits
}

func TestCalculateMultiYearProjection_NoGrowth(t *testing.T) {
	projection, err := CalculateMultiYearProjection(context.Background(), 100, d("30000"), cycleOnly(), flatProfile(), 3, domain.GrowthRates{})
	require.NoError(t, err)
	require.Len(t, projection.Years, 3)

	for i, y := range projection.Years {
		assert.Equal(t, i+1, y.Year)
		assert.Equal(t, 100, y.EmployeeCount)
		assertDecimalEqual(t, "1500", y.AnnualSavings)
	}
	assertDecimalEqual(t, "4500", projection.Years[2].CumulativeSavings)
	assertDecimalEqual(t, "4500", projection.TotalSavings)
}

func TestCalculateMultiYearProjection_CompoundGrowth(t *testing.T) {
	growth := domain.GrowthRates{
		EmployeeGrowth:     d("0.1"),
		SalaryGrowth:       d("0.05"),
		ContributionGrowth: d("0.1"),
	}
	projection, err := CalculateMultiYearProjection(context.Background(), 100, d("30000"), cycleOnly(), flatProfile(), 3, growth)
	require.NoError(t, err)

	counts := []int{100, 110, 121}
	salaries := []string{"30000", "31500", "33075"}
	// participants x grown spend x 15%
	savings := []string{"1500", "1815", "2196.15"}
	for i, y := range projection.Years {
		assert.Equal(t, counts[i], y.EmployeeCount)
		assertDecimalEqual(t, salaries[i], y.AverageSalary)
		assertDecimalEqual(t, savings[i], y.AnnualSavings)
	}
	assertDecimalEqual(t, "5511.15", projection.TotalSavings)
}

func TestCalculateMultiYearProjection_PensionIgnoresContributionGrowth(t *testing.T) {
	benefits := domain.DefaultMultiBenefitConfig()
	benefits[domain.BenefitPension] = enabled("90", "5")

	projection, err := CalculateMultiYearProjection(context.Background(), 100, d("30000"), benefits, flatProfile(), 2,
		domain.GrowthRates{ContributionGrowth: d("0.5")})
	require.NoError(t, err)
	assertDecimalEqual(t, "20250", projection.Years[1].AnnualSavings)
	assert.True(t, benefits[domain.BenefitPension].ContributionValue.Equal(d("5")), "input config must not change")
}

func TestCalculateMultiYearProjection_InvalidYears(t *testing.T) {
	for _, years := range []int{0, -1, MaxProjectionYears + 1} {
		_, err := CalculateMultiYearProjection(context.Background(), 100, d("30000"), cycleOnly(), flatProfile(), years, domain.GrowthRates{})
		assert.ErrorIs(t, err, ErrInvalidProjectionYears)
	}
}

func TestCalculateMultiYearProjection_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CalculateMultiYearProjection(ctx, 100, d("30000"), cycleOnly(), flatProfile(), 5, domain.GrowthRates{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateMultiYearProjection_ShrinkingWorkforce(t *testing.T) {
	_, err := CalculateMultiYearProjection(context.Background(), 1, d("30000"), cycleOnly(), flatProfile(), 2,
		domain.GrowthRates{EmployeeGrowth: d("-0.9")})
	assert.ErrorIs(t, err, ErrNoEmployees)
}
