package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// MaxProjectionYears bounds CalculateMultiYearProjection
const MaxProjectionYears = 50

// contributions that are absolute pound amounts and so follow contribution growth;
// pension is a salary percentage and holiday trading is counted in days.
var growsWithContributions = map[domain.BenefitType]bool{
	domain.BenefitCycleToWork:       true,
	domain.BenefitEVCarScheme:       true,
	domain.BenefitChildcareVouchers: true,
}

func onePlus(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate)
}

func growthFactor(rate decimal.Decimal, year int) decimal.Decimal {
	return onePlus(rate).Pow(decimal.NewFromInt(int64(year)))
}

// CalculateMultiYearProjection recomputes savings for each year with compound growth.
// Year 1 uses the inputs unchanged; year n applies (1+rate)^(n-1). Employee counts
// are rounded to whole people after growth.
func CalculateMultiYearProjection(ctx context.Context, employeeCount int, avgSalary decimal.Decimal, benefits domain.MultiBenefitConfig, profile domain.TaxYearProfile, years int, growth domain.GrowthRates) (domain.MultiYearProjection, error) {
	if years < 1 || years > MaxProjectionYears {
		return domain.MultiYearProjection{}, fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidProjectionYears, years, MaxProjectionYears)
	}

	projection := domain.MultiYearProjection{Years: make([]domain.YearProjection, 0, years)}
	for year := 0; year < years; year++ {
		if err := ctx.Err(); err != nil {
			return domain.MultiYearProjection{}, err
		}

		employees := int(decimal.NewFromInt(int64(employeeCount)).Mul(growthFactor(growth.EmployeeGrowth, year)).Round(0).IntPart())
		salary := avgSalary.Mul(growthFactor(growth.SalaryGrowth, year))
		yearBenefits := grownBenefits(benefits, growthFactor(growth.ContributionGrowth, year))

		result, err := CalculateMultiBenefitSavings(employees, salary, yearBenefits, profile)
		if err != nil {
			return domain.MultiYearProjection{}, fmt.Errorf("projection year %d: %w", year+1, err)
		}

		projection.TotalSavings = projection.TotalSavings.Add(result.AnnualSavings)
		projection.Years = append(projection.Years, domain.YearProjection{
			Year:              year + 1,
			EmployeeCount:     employees,
			AverageSalary:     salary,
			AnnualSavings:     result.AnnualSavings,
			CumulativeSavings: projection.TotalSavings,
			OriginalNI:        result.OriginalNI,
			ReducedNI:         result.ReducedNI,
		})
	}
	return projection, nil
}

func grownBenefits(benefits domain.MultiBenefitConfig, factor decimal.Decimal) domain.MultiBenefitConfig {
	out := benefits.Clone()
	for benefitType, cfg := range out {
		if growsWithContributions[benefitType] {
			cfg.ContributionValue = cfg.ContributionValue.Mul(factor)
			out[benefitType] = cfg
		}
	}
	return out
}
