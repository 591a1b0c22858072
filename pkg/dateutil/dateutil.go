package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UK tax years run from 6 April to 5 April the following year.
const (
	taxYearStartMonth = time.April
	taxYearStartDay   = 6
)

// TaxYearStart returns the first day of the UK tax year that contains date
func TaxYearStart(date time.Time) time.Time {
	year := date.Year()
	start := time.Date(year, taxYearStartMonth, taxYearStartDay, 0, 0, 0, 0, date.Location())
	if date.Before(start) {
		start = start.AddDate(-1, 0, 0)
	}
	return start
}

// TaxYearLabel formats the tax year containing date as "2024/25"
func TaxYearLabel(date time.Time) string {
	start := TaxYearStart(date).Year()
	return FormatTaxYear(start)
}

// FormatTaxYear formats a tax year by its starting calendar year
func FormatTaxYear(startYear int) string {
	return fmt.Sprintf("%d/%02d", startYear, (startYear+1)%100)
}

// ParseTaxYear parses labels such as "2024/25", "2024-25" or "2024" and
// returns the starting calendar year.
func ParseTaxYear(label string) (int, error) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, fmt.Errorf("empty tax year")
	}
	s = strings.ReplaceAll(s, "-", "/")
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid tax year %q", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil || start < 1900 || start > 2999 {
		return 0, fmt.Errorf("invalid tax year %q", label)
	}
	if len(parts) == 2 {
		end, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid tax year %q", label)
		}
		if end != (start+1)%100 && end != start+1 {
			return 0, fmt.Errorf("tax year %q does not span consecutive years", label)
		}
	}
	return start, nil
}

// NormalizeTaxYear rewrites any accepted label into the canonical "2024/25" form
func NormalizeTaxYear(label string) (string, error) {
	start, err := ParseTaxYear(label)
	if err != nil {
		return "", err
	}
	return FormatTaxYear(start), nil
}
