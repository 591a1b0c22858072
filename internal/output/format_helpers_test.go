//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "£1,234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(decimal.Zero); got != "n/a" {
		t.Errorf("FormatMonths(0) = %q, want n/a", got)
	}
	if got := FormatMonths(decimal.NewFromFloat(10.04)); got != "10.0 months" {
		t.Errorf("FormatMonths(10.04) = %q", got)
	}
}

func TestOptionLabel(t *testing.T) {
	if got := OptionLabel(domain.OptionManagedPayroll); got != "Managed Payroll" {
		t.Errorf("OptionLabel = %q", got)
	}
	if got := OptionLabel(domain.OptionEqual); got != "Equal" {
		t.Errorf("OptionLabel = %q", got)
	}
}

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}
