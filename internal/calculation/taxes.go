package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax: marginal banding over the profile's bands. Personal
//    Allowance tapering above £100,000 is not modelled.
//
// 2. Employee NI: Class 1 primary contributions on annual salary, main rate
//    between the primary threshold and the upper earnings limit, upper rate
//    above it (2% when the profile leaves it unset).
//
// 3. Employer NI: Class 1 secondary contributions above the secondary
//    threshold, uncapped. Employment Allowance is not deducted.

// CalculateIncomeTax returns the annual income tax due on salary
func CalculateIncomeTax(salary decimal.Decimal, profile domain.TaxYearProfile) decimal.Decimal {
	if salary.LessThanOrEqual(profile.PersonalAllowance) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, band := range profile.IncomeTaxBands() {
		if salary.LessThanOrEqual(band.Lower) {
			break
		}
		top := salary
		if band.Upper != nil {
			top = decimal.Min(*band.Upper, salary)
		}
		incomeInBand := top.Sub(band.Lower)
		if incomeInBand.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBand.Mul(band.Rate))
		}
	}

	return totalTax
}

// CalculateEmployeeNI returns the employee's annual Class 1 primary NI
func CalculateEmployeeNI(salary decimal.Decimal, profile domain.TaxYearProfile) decimal.Decimal {
	ni := profile.NI
	if salary.LessThanOrEqual(ni.PrimaryThreshold) {
		return decimal.Zero
	}
	if salary.LessThanOrEqual(ni.UpperEarningsLimit) {
		return salary.Sub(ni.PrimaryThreshold).Mul(ni.PrimaryRate)
	}

	mainBand := ni.UpperEarningsLimit.Sub(ni.PrimaryThreshold).Mul(ni.PrimaryRate)
	return mainBand.Add(salary.Sub(ni.UpperEarningsLimit).Mul(ni.UpperRate()))
}

// CalculateEmployerNI returns the employer's annual Class 1 secondary NI for one employee
func CalculateEmployerNI(salary decimal.Decimal, profile domain.TaxYearProfile) decimal.Decimal {
	ni := profile.NI
	if salary.LessThanOrEqual(ni.SecondaryThreshold) {
		return decimal.Zero
	}
	return salary.Sub(ni.SecondaryThreshold).Mul(ni.SecondaryRate)
}

// CalculateTakeHome combines income tax and both NI classes for a single salary
func CalculateTakeHome(salary decimal.Decimal, profile domain.TaxYearProfile) domain.TakeHomeBreakdown {
	tax := CalculateIncomeTax(salary, profile)
	employeeNI := CalculateEmployeeNI(salary, profile)
	return domain.TakeHomeBreakdown{
		Gross:      salary,
		IncomeTax:  tax,
		EmployeeNI: employeeNI,
		EmployerNI: CalculateEmployerNI(salary, profile),
		Net:        salary.Sub(tax).Sub(employeeNI),
	}
}
