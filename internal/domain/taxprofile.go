package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRegion discriminates the income tax band structure of a profile
type TaxRegion string

const (
	RegionUK       TaxRegion = "uk"
	RegionScotland TaxRegion = "scotland"
)

// TaxYearProfile is the immutable reference data for one tax year and region
type TaxYearProfile struct {
	TaxYear           string          `yaml:"tax_year" json:"tax_year"`
	Region            TaxRegion       `yaml:"region" json:"region"`
	PersonalAllowance decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	UK                UKBands         `yaml:"uk" json:"uk"`
	Scottish          ScottishBands   `yaml:"scottish,omitempty" json:"scottish,omitempty"`
	NI                NIRates         `yaml:"ni" json:"ni"`
}

// UKBands holds the rest-of-UK income tax thresholds (band lower bounds) and rates
type UKBands struct {
	BasicRateThreshold      decimal.Decimal `yaml:"basic_rate_threshold" json:"basic_rate_threshold"`
	HigherRateThreshold     decimal.Decimal `yaml:"higher_rate_threshold" json:"higher_rate_threshold"`
	AdditionalRateThreshold decimal.Decimal `yaml:"additional_rate_threshold" json:"additional_rate_threshold"`
	BasicRate               decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate              decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate          decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`
}

// ScottishBands holds the five Scottish income tax bands.
// Fields left out of a profile decode as zero.
type ScottishBands struct {
	StarterThreshold      decimal.Decimal `yaml:"starter_threshold" json:"starter_threshold"`
	BasicThreshold        decimal.Decimal `yaml:"basic_threshold" json:"basic_threshold"`
	IntermediateThreshold decimal.Decimal `yaml:"intermediate_threshold" json:"intermediate_threshold"`
	HigherThreshold       decimal.Decimal `yaml:"higher_threshold" json:"higher_threshold"`
	TopThreshold          decimal.Decimal `yaml:"top_threshold" json:"top_threshold"`
	StarterRate           decimal.Decimal `yaml:"starter_rate" json:"starter_rate"`
	BasicRate             decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	IntermediateRate      decimal.Decimal `yaml:"intermediate_rate" json:"intermediate_rate"`
	HigherRate            decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	TopRate               decimal.Decimal `yaml:"top_rate" json:"top_rate"`
}

// NIRates holds employee (primary) and employer (secondary) Class 1 NI parameters
type NIRates struct {
	PrimaryThreshold   decimal.Decimal `yaml:"primary_threshold" json:"primary_threshold"`
	PrimaryRate        decimal.Decimal `yaml:"primary_rate" json:"primary_rate"`
	UpperEarningsLimit decimal.Decimal `yaml:"upper_earnings_limit" json:"upper_earnings_limit"`
	PrimaryUpperRate   *decimal.Decimal `yaml:"primary_upper_rate,omitempty" json:"primary_upper_rate,omitempty"`
	SecondaryThreshold decimal.Decimal `yaml:"secondary_threshold" json:"secondary_threshold"`
	SecondaryRate      decimal.Decimal `yaml:"secondary_rate" json:"secondary_rate"`
}

var defaultPrimaryUpperRate = decimal.NewFromFloat(0.02)

// UpperRate is the employee NI rate above the upper earnings limit, 2% when unset
func (n NIRates) UpperRate() decimal.Decimal {
	if n.PrimaryUpperRate == nil {
		return defaultPrimaryUpperRate
	}
	return *n.PrimaryUpperRate
}

// TaxBand is one contiguous income tax band. A nil Upper means unbounded.
type TaxBand struct {
	Name  string
	Lower decimal.Decimal
	Upper *decimal.Decimal
	Rate  decimal.Decimal
}

func bounded(d decimal.Decimal) *decimal.Decimal { return &d }

// IncomeTaxBands returns the band list for the profile's region
func (p TaxYearProfile) IncomeTaxBands() []TaxBand {
	switch p.Region {
	case RegionScotland:
		s := p.Scottish
		return []TaxBand{
			{Name: "starter", Lower: s.StarterThreshold, Upper: bounded(s.BasicThreshold), Rate: s.StarterRate},
			{Name: "basic", Lower: s.BasicThreshold, Upper: bounded(s.IntermediateThreshold), Rate: s.BasicRate},
			{Name: "intermediate", Lower: s.IntermediateThreshold, Upper: bounded(s.HigherThreshold), Rate: s.IntermediateRate},
			{Name: "higher", Lower: s.HigherThreshold, Upper: bounded(s.TopThreshold), Rate: s.HigherRate},
			{Name: "top", Lower: s.TopThreshold, Rate: s.TopRate},
		}
	default:
		u := p.UK
		return []TaxBand{
			{Name: "basic", Lower: u.BasicRateThreshold, Upper: bounded(u.HigherRateThreshold), Rate: u.BasicRate},
			{Name: "higher", Lower: u.HigherRateThreshold, Upper: bounded(u.AdditionalRateThreshold), Rate: u.HigherRate},
			{Name: "additional", Lower: u.AdditionalRateThreshold, Rate: u.AdditionalRate},
		}
	}
}

// Key identifies the profile in a registry, e.g. "2024/25:uk"
func (p TaxYearProfile) Key() string {
	return ProfileKey(p.TaxYear, p.Region)
}

// ProfileKey builds a registry key from a tax year label and region
func ProfileKey(taxYear string, region TaxRegion) string {
	return taxYear + ":" + string(region)
}

// Validate checks that thresholds strictly increase and every rate lies in [0,1]
func (p TaxYearProfile) Validate() error {
	if p.TaxYear == "" {
		return fmt.Errorf("tax year is required")
	}
	if p.Region != RegionUK && p.Region != RegionScotland {
		return fmt.Errorf("region must be %q or %q, got %q", RegionUK, RegionScotland, p.Region)
	}
	if p.PersonalAllowance.IsNegative() {
		return fmt.Errorf("personal allowance cannot be negative")
	}

	bands := p.IncomeTaxBands()
	for i, b := range bands {
		if err := checkRate(b.Name+" rate", b.Rate); err != nil {
			return err
		}
		if b.Upper != nil && !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%s band upper threshold %s must exceed lower threshold %s", b.Name, b.Upper.String(), b.Lower.String())
		}
		if i == 0 && b.Lower.LessThan(p.PersonalAllowance) {
			return fmt.Errorf("%s band cannot start below the personal allowance", b.Name)
		}
	}

	ni := p.NI
	niRates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"NI primary rate", ni.PrimaryRate},
		{"NI primary upper rate", ni.UpperRate()},
		{"NI secondary rate", ni.SecondaryRate},
	}
	for _, r := range niRates {
		if err := checkRate(r.name, r.rate); err != nil {
			return err
		}
	}
	if ni.PrimaryThreshold.IsNegative() || ni.SecondaryThreshold.IsNegative() {
		return fmt.Errorf("NI thresholds cannot be negative")
	}
	if !ni.UpperEarningsLimit.GreaterThan(ni.PrimaryThreshold) {
		return fmt.Errorf("NI upper earnings limit must exceed the primary threshold")
	}
	return nil
}

func checkRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate.String())
	}
	return nil
}
