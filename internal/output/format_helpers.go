package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	pct "github.com/ukpayroll/roi-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as sterling with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return pct.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths formats a payback period; zero reads as "n/a" because it also
// covers options that never pay back.
func FormatMonths(months decimal.Decimal) string {
	if months.IsZero() {
		return "n/a"
	}
	return months.StringFixed(1) + " months"
}

// OptionLabel returns the display name of a comparison verdict
func OptionLabel(o domain.Option) string {
	switch o {
	case domain.OptionPayrollSystem:
		return "Payroll System"
	case domain.OptionManagedPayroll:
		return "Managed Payroll"
	default:
		return "Equal"
	}
}

func intToString(i int) string { return strconv.Itoa(i) }
