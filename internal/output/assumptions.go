package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when the report carries none of its own.
var DefaultAssumptions = []string{
	"Savings are employer National Insurance on salary sacrificed, plus wages banked from traded holiday",
	"Managed payroll removes all processing time, query handling, errors and compliance issues",
	"Payroll staff work 37.5 hours a week for 48 weeks a year",
	"Payback of 0 months is shown when an option never pays back",
}

// GenerateAssumptions creates the assumptions list for a tax year profile
func GenerateAssumptions(profile domain.TaxYearProfile) []string {
	region := "rest of UK"
	if profile.Region == domain.RegionScotland {
		region = "Scotland"
	}
	return append([]string{
		fmt.Sprintf("Tax year %s, %s income tax bands", profile.TaxYear, region),
		fmt.Sprintf("Employer NI: %s above %s a year, uncapped",
			FormatPercentage(profile.NI.SecondaryRate.Mul(decimalHundred)), FormatCurrency(profile.NI.SecondaryThreshold)),
		fmt.Sprintf("Employee NI: %s between %s and %s, %s above",
			FormatPercentage(profile.NI.PrimaryRate.Mul(decimalHundred)), FormatCurrency(profile.NI.PrimaryThreshold),
			FormatCurrency(profile.NI.UpperEarningsLimit), FormatPercentage(profile.NI.UpperRate().Mul(decimalHundred))),
	}, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
