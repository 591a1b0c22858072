package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

func TestCalculateMultiBenefitSavings_PensionOnly(t *testing.T) {
	benefits := domain.DefaultMultiBenefitConfig()
	benefits[domain.BenefitPension] = enabled("90", "5")

	result, err := CalculateMultiBenefitSavings(100, d("30000"), benefits, flatProfile())
	require.NoError(t, err)

	assertDecimalEqual(t, "375000", result.OriginalNI)
	assertDecimalEqual(t, "20250", result.AnnualSavings)
	assertDecimalEqual(t, "354750", result.ReducedNI)
	assertDecimalEqual(t, "202.5", result.SavingsPerEmployee)
	assert.Len(t, result.BenefitBreakdown, 1)
	assertDecimalEqual(t, "20250", result.BenefitBreakdown[domain.BenefitPension].NISavings)
}

func TestCalculateMultiBenefitSavings_Additive(t *testing.T) {
	p := flatProfile()
	benefits := domain.DefaultMultiBenefitConfig()
	benefits[domain.BenefitPension] = enabled("90", "5")

	one, err := CalculateMultiBenefitSavings(100, d("30000"), benefits, p)
	require.NoError(t, err)

	benefits[domain.BenefitHolidayTrading] = enabled("10", "3")
	two, err := CalculateMultiBenefitSavings(100, d("30000"), benefits, p)
	require.NoError(t, err)

	holiday := CalculateHolidayTradingSavings(100, d("10"), d("3"), d("30000"), p)
	assert.True(t, two.AnnualSavings.Sub(one.AnnualSavings).Equal(holiday.TotalSavings))
	// only the NI portion comes off the NI bill
	assert.True(t, one.ReducedNI.Sub(two.ReducedNI).Equal(holiday.NISavings))
}

func TestCalculateMultiBenefitSavings_AllDisabled(t *testing.T) {
	result, err := CalculateMultiBenefitSavings(10, d("30000"), domain.DefaultMultiBenefitConfig(), flatProfile())
	require.NoError(t, err)
	assert.True(t, result.AnnualSavings.IsZero())
	assert.True(t, result.ReducedNI.Equal(result.OriginalNI))
	assert.Empty(t, result.BenefitBreakdown)
}

func TestCalculateMultiBenefitSavings_NoEmployees(t *testing.T) {
	_, err := CalculateMultiBenefitSavings(0, d("30000"), domain.DefaultMultiBenefitConfig(), flatProfile())
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestCalculateOriginalNI_SalaryBelowThreshold(t *testing.T) {
	assertDecimalEqual(t, "0", CalculateOriginalNI(50, d("4000"), flatProfile()))
}

func TestCalculateMultiBenefitSavings_Idempotent(t *testing.T) {
	benefits := domain.DefaultMultiBenefitConfig()
	for _, bt := range domain.AllBenefitTypes {
		cfg := benefits[bt]
		cfg.Enabled = true
		benefits[bt] = cfg
	}

	first, err := CalculateMultiBenefitSavings(250, d("34000"), benefits, ukProfile2024())
	require.NoError(t, err)
	second, err := CalculateMultiBenefitSavings(250, d("34000"), benefits, ukProfile2024())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
