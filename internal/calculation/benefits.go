package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	pct "github.com/ukpayroll/roi-calculator/pkg/decimal"
)

// Salary sacrifice calculators. Each one assumes non-negative inputs and a
// positive employee count; the aggregator guards the divisions.

var (
	monthsPerYear      = decimal.NewFromInt(12)
	weeksPerYear       = decimal.NewFromInt(52)
	workingDaysPerWeek = decimal.NewFromInt(5)
	evBenefitInKind    = decimal.NewFromFloat(0.02) // 2% BIK band for zero-emission cars
)

func participants(employeeCount int, participationRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(employeeCount)).Mul(pct.FromPercent(participationRate))
}

func savingsResult(niSavings, additional decimal.Decimal) domain.BenefitSavingsResult {
	return domain.BenefitSavingsResult{
		NISavings:         niSavings,
		AdditionalSavings: additional,
		TotalSavings:      niSavings.Add(additional),
	}
}

// CalculatePensionSavings models a percentage-of-salary pension sacrifice
func CalculatePensionSavings(employeeCount int, participationRate, contributionPercent, avgSalary decimal.Decimal, profile domain.TaxYearProfile) domain.BenefitSavingsResult {
	sacrifice := avgSalary.Mul(pct.FromPercent(contributionPercent))
	ni := participants(employeeCount, participationRate).Mul(sacrifice).Mul(profile.NI.SecondaryRate)
	return savingsResult(ni, decimal.Zero)
}

// CalculateCycleToWorkSavings models an annual cycle-to-work spend per participant
func CalculateCycleToWorkSavings(employeeCount int, participationRate, averageSpend decimal.Decimal, profile domain.TaxYearProfile) domain.BenefitSavingsResult {
	ni := participants(employeeCount, participationRate).Mul(averageSpend).Mul(profile.NI.SecondaryRate)
	return savingsResult(ni, decimal.Zero)
}

// CalculateEVCarSchemeSavings models an electric car lease paid by monthly sacrifice.
// NI relief only applies to the sacrifice net of the benefit in kind; when no
// P11D value is given the BIK falls back to 2% of the annual sacrifice.
func CalculateEVCarSchemeSavings(employeeCount int, participationRate, monthlyGross decimal.Decimal, p11dValue *decimal.Decimal, profile domain.TaxYearProfile) domain.BenefitSavingsResult {
	grossAnnual := monthlyGross.Mul(monthsPerYear)
	benefitInKind := grossAnnual.Mul(evBenefitInKind)
	if p11dValue != nil {
		benefitInKind = p11dValue.Mul(evBenefitInKind)
	}
	ni := participants(employeeCount, participationRate).Mul(grossAnnual.Sub(benefitInKind)).Mul(profile.NI.SecondaryRate)
	return savingsResult(ni, decimal.Zero)
}

// CalculateChildcareVoucherSavings models a monthly childcare voucher sacrifice
func CalculateChildcareVoucherSavings(employeeCount int, participationRate, monthlyAmount decimal.Decimal, profile domain.TaxYearProfile) domain.BenefitSavingsResult {
	annual := monthlyAmount.Mul(monthsPerYear)
	ni := participants(employeeCount, participationRate).Mul(annual).Mul(profile.NI.SecondaryRate)
	return savingsResult(ni, decimal.Zero)
}

// CalculateHolidayTradingSavings models employees selling back leave.
// Besides the NI relief, the organisation banks the wages for the days traded.
func CalculateHolidayTradingSavings(employeeCount int, participationRate, avgDaysTraded, avgSalary decimal.Decimal, profile domain.TaxYearProfile) domain.BenefitSavingsResult {
	dailyRate := avgSalary.Div(weeksPerYear).Div(workingDaysPerWeek)
	annualAmount := dailyRate.Mul(avgDaysTraded)
	people := participants(employeeCount, participationRate)
	ni := people.Mul(annualAmount).Mul(profile.NI.SecondaryRate)
	return savingsResult(ni, people.Mul(annualAmount))
}

// CalculateBenefitSavings dispatches to the calculator for benefitType
func CalculateBenefitSavings(benefitType domain.BenefitType, employeeCount int, avgSalary decimal.Decimal, cfg domain.BenefitConfig, profile domain.TaxYearProfile) (domain.BenefitSavingsResult, error) {
	rate, value := cfg.ParticipationRate, cfg.ContributionValue
	switch benefitType {
	case domain.BenefitPension:
		return CalculatePensionSavings(employeeCount, rate, value, avgSalary, profile), nil
	case domain.BenefitCycleToWork:
		return CalculateCycleToWorkSavings(employeeCount, rate, value, profile), nil
	case domain.BenefitEVCarScheme:
		return CalculateEVCarSchemeSavings(employeeCount, rate, value, cfg.P11DValue, profile), nil
	case domain.BenefitChildcareVouchers:
		return CalculateChildcareVoucherSavings(employeeCount, rate, value, profile), nil
	case domain.BenefitHolidayTrading:
		return CalculateHolidayTradingSavings(employeeCount, rate, value, avgSalary, profile), nil
	default:
		return domain.BenefitSavingsResult{}, fmt.Errorf("%w: %q", ErrUnknownBenefitType, benefitType)
	}
}
