package domain

import "github.com/shopspring/decimal"

// BenefitType tags one of the salary sacrifice schemes
type BenefitType string

const (
	BenefitPension           BenefitType = "pension"
	BenefitCycleToWork       BenefitType = "cycle_to_work"
	BenefitEVCarScheme       BenefitType = "ev_car_scheme"
	BenefitChildcareVouchers BenefitType = "childcare_vouchers"
	BenefitHolidayTrading    BenefitType = "holiday_trading"
)

// AllBenefitTypes lists every benefit in evaluation order
var AllBenefitTypes = []BenefitType{
	BenefitPension,
	BenefitCycleToWork,
	BenefitEVCarScheme,
	BenefitChildcareVouchers,
	BenefitHolidayTrading,
}

// Label returns a human readable benefit name
func (b BenefitType) Label() string {
	switch b {
	case BenefitPension:
		return "Pension"
	case BenefitCycleToWork:
		return "Cycle to Work"
	case BenefitEVCarScheme:
		return "EV Car Scheme"
	case BenefitChildcareVouchers:
		return "Childcare Vouchers"
	case BenefitHolidayTrading:
		return "Holiday Trading"
	default:
		return string(b)
	}
}

// IsKnown reports whether b is one of AllBenefitTypes
func (b BenefitType) IsKnown() bool {
	for _, t := range AllBenefitTypes {
		if t == b {
			return true
		}
	}
	return false
}

// BenefitConfig configures one benefit.
//
// ContributionValue depends on the benefit:
//   - pension: percent of salary sacrificed
//   - cycle_to_work: average annual spend (£)
//   - ev_car_scheme: monthly gross sacrifice (£)
//   - childcare_vouchers: monthly voucher amount (£)
//   - holiday_trading: average days traded per year
type BenefitConfig struct {
	Enabled           bool             `yaml:"enabled" json:"enabled"`
	ParticipationRate decimal.Decimal  `yaml:"participation_rate" json:"participation_rate"`
	ContributionValue decimal.Decimal  `yaml:"contribution_value" json:"contribution_value"`
	P11DValue         *decimal.Decimal `yaml:"p11d_value,omitempty" json:"p11d_value,omitempty"`
}

// MultiBenefitConfig maps each benefit type to its configuration
type MultiBenefitConfig map[BenefitType]BenefitConfig

// DefaultMultiBenefitConfig returns a fresh configuration with every benefit disabled
// and typical participation and contribution values pre-filled.
func DefaultMultiBenefitConfig() MultiBenefitConfig {
	return MultiBenefitConfig{
		BenefitPension:           {ParticipationRate: decimal.NewFromInt(80), ContributionValue: decimal.NewFromInt(5)},
		BenefitCycleToWork:       {ParticipationRate: decimal.NewFromInt(5), ContributionValue: decimal.NewFromInt(1000)},
		BenefitEVCarScheme:       {ParticipationRate: decimal.NewFromInt(3), ContributionValue: decimal.NewFromInt(500)},
		BenefitChildcareVouchers: {ParticipationRate: decimal.NewFromInt(5), ContributionValue: decimal.NewFromInt(243)},
		BenefitHolidayTrading:    {ParticipationRate: decimal.NewFromInt(10), ContributionValue: decimal.NewFromInt(3)},
	}
}

// Clone returns a copy that can be modified without touching the receiver
func (c MultiBenefitConfig) Clone() MultiBenefitConfig {
	out := make(MultiBenefitConfig, len(c))
	for k, v := range c {
		if v.P11DValue != nil {
			p := *v.P11DValue
			v.P11DValue = &p
		}
		out[k] = v
	}
	return out
}

// EnabledTypes returns the enabled benefits in evaluation order
func (c MultiBenefitConfig) EnabledTypes() []BenefitType {
	var out []BenefitType
	for _, t := range AllBenefitTypes {
		if cfg, ok := c[t]; ok && cfg.Enabled {
			out = append(out, t)
		}
	}
	return out
}

// BenefitSavingsResult is the output of a single benefit calculator
type BenefitSavingsResult struct {
	NISavings         decimal.Decimal `json:"ni_savings"`
	AdditionalSavings decimal.Decimal `json:"additional_savings"`
	TotalSavings      decimal.Decimal `json:"total_savings"`
}

// CalculationResult aggregates the savings of all enabled benefits
type CalculationResult struct {
	AnnualSavings      decimal.Decimal                      `json:"annual_savings"`
	SavingsPerEmployee decimal.Decimal                      `json:"savings_per_employee"`
	OriginalNI         decimal.Decimal                      `json:"original_ni"`
	ReducedNI          decimal.Decimal                      `json:"reduced_ni"`
	BenefitBreakdown   map[BenefitType]BenefitSavingsResult `json:"benefit_breakdown"`
}

// GrowthRates drives the multi-year projection; values are annual fractions (0.03 = 3%)
type GrowthRates struct {
	EmployeeGrowth     decimal.Decimal `yaml:"employee_growth" json:"employee_growth"`
	SalaryGrowth       decimal.Decimal `yaml:"salary_growth" json:"salary_growth"`
	ContributionGrowth decimal.Decimal `yaml:"contribution_growth" json:"contribution_growth"`
}

// YearProjection is one year of a multi-year savings projection
type YearProjection struct {
	Year              int             `json:"year"`
	EmployeeCount     int             `json:"employee_count"`
	AverageSalary     decimal.Decimal `json:"average_salary"`
	AnnualSavings     decimal.Decimal `json:"annual_savings"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`
	OriginalNI        decimal.Decimal `json:"original_ni"`
	ReducedNI         decimal.Decimal `json:"reduced_ni"`
}

// MultiYearProjection holds every projected year and the running total
type MultiYearProjection struct {
	Years        []YearProjection `json:"years"`
	TotalSavings decimal.Decimal  `json:"total_savings"`
}

// TakeHomeBreakdown summarises tax and NI for a single salary
type TakeHomeBreakdown struct {
	Gross      decimal.Decimal `json:"gross"`
	IncomeTax  decimal.Decimal `json:"income_tax"`
	EmployeeNI decimal.Decimal `json:"employee_ni"`
	EmployerNI decimal.Decimal `json:"employer_ni"`
	Net        decimal.Decimal `json:"net"`
}
