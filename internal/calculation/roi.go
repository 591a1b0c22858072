package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	pct "github.com/ukpayroll/roi-calculator/pkg/decimal"
)

var (
	three = decimal.NewFromInt(3)
	five  = decimal.NewFromInt(5)
)

// CalculateROIMetrics derives ROI, payback and five-year TCO for one payroll option.
//
// netAnnualBenefit already has one year of running cost deducted, so the
// five-year investment counts the one-off cost plus four further years of
// running cost. Any ratio whose investment is not positive is reported as 0.
// A non-positive net benefit reports a payback of 0 months, which reads the
// same as an instant payback; callers should check NetAnnualBenefit before
// presenting it.
func CalculateROIMetrics(netAnnualBenefit, oneOffCost, annualSystemCosts decimal.Decimal) domain.ROIMetrics {
	firstYearInvestment := oneOffCost.Add(annualSystemCosts)
	threeYearInvestment := oneOffCost.Add(annualSystemCosts.Mul(three))
	fiveYearInvestment := oneOffCost.Add(annualSystemCosts.Mul(five)).Sub(annualSystemCosts)

	metrics := domain.ROIMetrics{
		FirstYearROI: pct.ToPercent(pct.SafeDiv(netAnnualBenefit.Sub(oneOffCost), firstYearInvestment)),
		ThreeYearROI: pct.ToPercent(pct.SafeDiv(netAnnualBenefit.Mul(three).Sub(oneOffCost), threeYearInvestment)),
		FiveYearROI:  pct.ToPercent(pct.SafeDiv(netAnnualBenefit.Mul(five).Sub(oneOffCost), fiveYearInvestment)),
		TotalCostOfOwnership5Year: oneOffCost.
			Add(annualSystemCosts.Mul(five)).
			Sub(netAnnualBenefit.Mul(five)),
	}

	if netAnnualBenefit.IsPositive() {
		metrics.PaybackPeriodMonths = oneOffCost.Div(netAnnualBenefit.Div(monthsPerYear))
	}
	return metrics
}
