package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

// assertDecimalEqual compares decimals by value so 1.50 equals 1.5
func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !d(expected).Equal(actual) {
		assert.Fail(t, fmt.Sprintf("expected %s, got %s", expected, actual.String()), msgAndArgs...)
	}
}

func ukProfile2024() domain.TaxYearProfile {
	return domain.TaxYearProfile{
		TaxYear:           "2024/25",
		Region:            domain.RegionUK,
		PersonalAllowance: d("12570"),
		UK: domain.UKBands{
			BasicRateThreshold:      d("12570"),
			HigherRateThreshold:     d("50270"),
			AdditionalRateThreshold: d("125140"),
			BasicRate:               d("0.20"),
			HigherRate:              d("0.40"),
			AdditionalRate:          d("0.45"),
		},
		NI: domain.NIRates{
			PrimaryThreshold:   d("12570"),
			PrimaryRate:        d("0.08"),
			UpperEarningsLimit: d("50270"),
			PrimaryUpperRate:   ptr(d("0.02")),
			SecondaryThreshold: d("9100"),
			SecondaryRate:      d("0.138"),
		},
	}
}

func scottishProfile2024() domain.TaxYearProfile {
	p := ukProfile2024()
	p.Region = domain.RegionScotland
	p.Scottish = domain.ScottishBands{
		StarterThreshold:      d("12570"),
		BasicThreshold:        d("14876"),
		IntermediateThreshold: d("26561"),
		HigherThreshold:       d("43662"),
		TopThreshold:          d("125140"),
		StarterRate:           d("0.19"),
		BasicRate:             d("0.20"),
		IntermediateRate:      d("0.21"),
		HigherRate:            d("0.42"),
		TopRate:               d("0.48"),
	}
	return p
}

// flatProfile has the round employer NI figures used in the worked examples
func flatProfile() domain.TaxYearProfile {
	p := ukProfile2024()
	p.NI.SecondaryThreshold = d("5000")
	p.NI.SecondaryRate = d("0.15")
	return p
}

func enabled(participation, contribution string) domain.BenefitConfig {
	return domain.BenefitConfig{Enabled: true, ParticipationRate: d(participation), ContributionValue: d(contribution)}
}
