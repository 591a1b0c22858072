package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxYearStart(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"before 6 April", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)},
		{"on 6 April", time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)},
		{"late in year", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)},
		{"January", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaxYearStart(tt.date))
		})
	}
}

func TestTaxYearLabel(t *testing.T) {
	assert.Equal(t, "2024/25", TaxYearLabel(time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025/26", TaxYearLabel(time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1999/00", FormatTaxYear(1999))
}

func TestParseTaxYear(t *testing.T) {
	valid := map[string]int{
		"2024/25":   2024,
		"2024-25":   2024,
		" 2025/26 ": 2025,
		"2023":      2023,
		"2024/2025": 2024,
	}
	for label, want := range valid {
		got, err := ParseTaxYear(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	for _, label := range []string{"", "abc", "2024/27", "2024/25/26", "24/25"} {
		_, err := ParseTaxYear(label)
		assert.Error(t, err, label)
	}
}

func TestNormalizeTaxYear(t *testing.T) {
	got, err := NormalizeTaxYear("2025-26")
	require.NoError(t, err)
	assert.Equal(t, "2025/26", got)
}
