package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateROIMetrics(t *testing.T) {
	t.Run("no running cost", func(t *testing.T) {
		m := CalculateROIMetrics(d("12000"), d("10000"), d("0"))
		assertDecimalEqual(t, "10", m.PaybackPeriodMonths)
		assertDecimalEqual(t, "20", m.FirstYearROI)
		assertDecimalEqual(t, "260", m.ThreeYearROI)
		assertDecimalEqual(t, "500", m.FiveYearROI)
		assertDecimalEqual(t, "-50000", m.TotalCostOfOwnership5Year)
	})

	t.Run("with running cost", func(t *testing.T) {
		m := CalculateROIMetrics(d("12000"), d("10000"), d("2000"))
		assert.InDelta(t, 16.6667, m.FirstYearROI.InexactFloat64(), 0.001)
		assertDecimalEqual(t, "162.5", m.ThreeYearROI)
		// five-year investment is one-off plus four further years of running cost
		assert.InDelta(t, 277.7778, m.FiveYearROI.InexactFloat64(), 0.001)
		assertDecimalEqual(t, "-40000", m.TotalCostOfOwnership5Year)
	})

	t.Run("non-positive benefit reports zero payback", func(t *testing.T) {
		for _, net := range []string{"0", "-500"} {
			m := CalculateROIMetrics(d(net), d("10000"), d("2000"))
			assert.True(t, m.PaybackPeriodMonths.IsZero(), net)
		}
	})

	t.Run("zero investment reports zero ROI", func(t *testing.T) {
		m := CalculateROIMetrics(d("5000"), d("0"), d("0"))
		assert.True(t, m.FirstYearROI.IsZero())
		assert.True(t, m.ThreeYearROI.IsZero())
		assert.True(t, m.FiveYearROI.IsZero())
		assert.True(t, m.PaybackPeriodMonths.IsZero())
		assertDecimalEqual(t, "-25000", m.TotalCostOfOwnership5Year)
	})
}
