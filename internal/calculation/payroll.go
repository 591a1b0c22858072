package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	pct "github.com/ukpayroll/roi-calculator/pkg/decimal"
)

var fullReduction = decimal.NewFromInt(100)

// CalculateCommonPayrollValues derives the figures shared by both payroll options
func CalculateCommonPayrollValues(inputs domain.CombinedPayrollInputs) domain.CommonPayrollValues {
	employees := decimal.NewFromInt(int64(inputs.EmployeeCount))

	payRuns := inputs.TotalAnnualPayRuns()
	payslips := payRuns.Mul(employees)

	currentCost := inputs.CurrentStaffCosts.
		Add(inputs.CurrentSoftwareCosts).
		Add(inputs.CurrentTrainingCosts).
		Add(inputs.CurrentInfrastructureCosts).
		Add(inputs.CurrentOtherCosts)

	systemCosts := inputs.MonthlyCost.Mul(monthsPerYear).
		Add(inputs.AdditionalMonthlyCosts.Mul(monthsPerYear)).
		Add(inputs.AdditionalAnnualCosts)

	return domain.CommonPayrollValues{
		TotalAnnualPayRuns:       payRuns,
		CurrentAnnualPayrollCost: currentCost,
		AnnualSystemCosts:        systemCosts,
		TotalPayslipsPerYear:     payslips,
		CurrentCostPerPayslip:    pct.SafeDiv(currentCost, payslips),
	}
}

// reductions are the percentage improvements applied to the current baseline
type reductions struct {
	processing decimal.Decimal
	query      decimal.Decimal
	errors     decimal.Decimal
	compliance decimal.Decimal
}

// operationalSavings computes the savings categories both options share
func operationalSavings(inputs domain.CombinedPayrollInputs, common domain.CommonPayrollValues, r reductions) domain.ROIResults {
	rate := inputs.AvgHourlyRate
	processingHours := inputs.HoursPerPayRun.Mul(common.TotalAnnualPayRuns)
	queryHours := inputs.QueryHoursPerMonth.Mul(monthsPerYear)

	errorCost := inputs.ErrorsPerYear.Mul(inputs.CostPerError).Mul(pct.FromPercent(r.errors))
	complianceCost := inputs.ComplianceIssuesPerYear.Mul(inputs.CostPerComplianceIssue).Mul(pct.FromPercent(r.compliance))

	return domain.ROIResults{
		EfficiencySavings:     processingHours.Mul(rate).Mul(pct.FromPercent(r.processing)),
		YearEndSavings:        inputs.YearEndHours.Mul(rate).Mul(pct.FromPercent(r.processing)),
		QueryHandlingSavings:  queryHours.Mul(rate).Mul(pct.FromPercent(r.query)),
		ErrorReductionSavings: errorCost.Add(complianceCost),
		PaperSavings:          inputs.AnnualPaperCosts.Add(inputs.AnnualPostageCosts),
		WageSavings:           inputs.WageSavings,
	}
}

// finish totals the benefits and fills in the ROI and per-unit figures
func finish(res domain.ROIResults, extraBenefits decimal.Decimal, inputs domain.CombinedPayrollInputs, common domain.CommonPayrollValues) domain.ROIResults {
	res.TotalAnnualBenefits = res.EfficiencySavings.
		Add(res.YearEndSavings).
		Add(res.QueryHandlingSavings).
		Add(res.ErrorReductionSavings).
		Add(res.PaperSavings).
		Add(res.WageSavings).
		Add(extraBenefits)
	res.OneOffCosts = inputs.AdditionalOneOffCosts
	res.AnnualCosts = common.AnnualSystemCosts
	res.NetAnnualBenefit = res.TotalAnnualBenefits.Sub(res.AnnualCosts)
	res.ROIMetrics = CalculateROIMetrics(res.NetAnnualBenefit, res.OneOffCosts, res.AnnualCosts)
	res.SavingsPerEmployee = pct.SafeDiv(res.NetAnnualBenefit, decimal.NewFromInt(int64(inputs.EmployeeCount)))
	res.CostPerPayslip = pct.SafeDiv(res.AnnualCosts, common.TotalPayslipsPerYear)
	res.FiveYearNetSavings = res.NetAnnualBenefit.Mul(five).Sub(res.OneOffCosts)
	return res
}

// CalculatePayrollSystemROI models an in-house payroll system: the user's
// expected reductions are applied to the current time and error baseline.
func CalculatePayrollSystemROI(inputs domain.CombinedPayrollInputs) domain.PayrollSystemResults {
	common := CalculateCommonPayrollValues(inputs)
	res := operationalSavings(inputs, common, reductions{
		processing: inputs.ProcessingTimeReduction,
		query:      inputs.QueryReduction,
		errors:     inputs.ErrorReduction,
		compliance: inputs.ComplianceReduction,
	})
	res = finish(res, decimal.Zero, inputs, common)
	return domain.PayrollSystemResults{
		ROIResults:        res,
		InitialInvestment: inputs.AdditionalOneOffCosts,
	}
}

// CalculateManagedPayrollROI models an outsourced payroll service. The provider
// takes on all processing effort and error/compliance risk, so every reduction is
// 100% regardless of the in-house sliders, and the software, infrastructure,
// training and other cost lines disappear entirely.
func CalculateManagedPayrollROI(inputs domain.CombinedPayrollInputs) domain.ManagedPayrollResults {
	common := CalculateCommonPayrollValues(inputs)
	res := operationalSavings(inputs, common, reductions{
		processing: fullReduction,
		query:      fullReduction,
		errors:     fullReduction,
		compliance: fullReduction,
	})

	breakdown := domain.ManagedCostBreakdown{
		StaffSavings:            inputs.CurrentStaffCosts,
		SoftwareSavings:         inputs.CurrentSoftwareCosts,
		InfrastructureSavings:   inputs.CurrentInfrastructureCosts,
		TrainingAndOtherSavings: inputs.CurrentTrainingCosts.Add(inputs.CurrentOtherCosts),
	}
	breakdown.Total = breakdown.StaffSavings.
		Add(breakdown.SoftwareSavings).
		Add(breakdown.InfrastructureSavings).
		Add(breakdown.TrainingAndOtherSavings)

	// Staff labour is already valued through efficiency, year-end and query savings.
	eliminated := breakdown.SoftwareSavings.
		Add(breakdown.InfrastructureSavings).
		Add(breakdown.TrainingAndOtherSavings)

	res = finish(res, eliminated, inputs, common)
	return domain.ManagedPayrollResults{
		ROIResults:      res,
		TransitionCosts: inputs.AdditionalOneOffCosts,
		CostBreakdown:   breakdown,
	}
}
