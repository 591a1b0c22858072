package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// CalculateOriginalNI returns the organisation's employer NI bill with no sacrifice in place
func CalculateOriginalNI(employeeCount int, avgSalary decimal.Decimal, profile domain.TaxYearProfile) decimal.Decimal {
	perEmployee := avgSalary.Sub(profile.NI.SecondaryThreshold).Mul(profile.NI.SecondaryRate)
	if perEmployee.IsNegative() {
		perEmployee = decimal.Zero
	}
	return decimal.NewFromInt(int64(employeeCount)).Mul(perEmployee)
}

// CalculateMultiBenefitSavings sums every enabled benefit into one organisation-wide result.
// Benefits are evaluated in domain.AllBenefitTypes order; only NI savings reduce the NI bill.
func CalculateMultiBenefitSavings(employeeCount int, avgSalary decimal.Decimal, benefits domain.MultiBenefitConfig, profile domain.TaxYearProfile) (domain.CalculationResult, error) {
	if employeeCount <= 0 {
		return domain.CalculationResult{}, ErrNoEmployees
	}

	originalNI := CalculateOriginalNI(employeeCount, avgSalary, profile)
	result := domain.CalculationResult{
		OriginalNI:       originalNI,
		ReducedNI:        originalNI,
		BenefitBreakdown: make(map[domain.BenefitType]domain.BenefitSavingsResult),
	}

	for _, benefitType := range benefits.EnabledTypes() {
		savings, err := CalculateBenefitSavings(benefitType, employeeCount, avgSalary, benefits[benefitType], profile)
		if err != nil {
			return domain.CalculationResult{}, fmt.Errorf("benefit %s: %w", benefitType, err)
		}
		result.AnnualSavings = result.AnnualSavings.Add(savings.TotalSavings)
		result.ReducedNI = result.ReducedNI.Sub(savings.NISavings)
		result.BenefitBreakdown[benefitType] = savings
	}

	result.SavingsPerEmployee = result.AnnualSavings.Div(decimal.NewFromInt(int64(employeeCount)))
	return result, nil
}
