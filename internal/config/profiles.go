package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTaxProfile is returned when no profile matches a tax year and region
var ErrUnknownTaxProfile = errors.New("unknown tax profile")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// TaxProfileRegistry holds the tax year profiles available for calculations.
// Profiles are values; callers receive copies and cannot change the registry.
type TaxProfileRegistry struct {
	profiles map[string]domain.TaxYearProfile
}

// profileFile is the on-disk layout read by LoadProfilesFromFile
type profileFile struct {
	Profiles []domain.TaxYearProfile `yaml:"profiles"`
}

// NewTaxProfileRegistry creates a registry seeded with the built-in HMRC tables
func NewTaxProfileRegistry() *TaxProfileRegistry {
	r := &TaxProfileRegistry{profiles: make(map[string]domain.TaxYearProfile)}
	for _, p := range builtInProfiles() {
		r.profiles[p.Key()] = p
	}
	return r
}

// Register validates a profile and adds it, replacing any profile with the same key
func (r *TaxProfileRegistry) Register(p domain.TaxYearProfile) error {
	taxYear, err := dateutil.NormalizeTaxYear(p.TaxYear)
	if err != nil {
		return fmt.Errorf("invalid tax year: %w", err)
	}
	p.TaxYear = taxYear
	if p.Region == "" {
		p.Region = domain.RegionUK
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.Key(), err)
	}
	r.profiles[p.Key()] = p
	return nil
}

// LoadProfilesFromFile reads additional or replacement profiles from a YAML file
func (r *TaxProfileRegistry) LoadProfilesFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", filename)
	}

	for i, p := range file.Profiles {
		if err := r.Register(p); err != nil {
			return fmt.Errorf("profile %d: %w", i, err)
		}
	}
	return nil
}

// Lookup returns the profile for a tax year and region. An empty tax year selects
// DefaultTaxYear and an empty region selects the rest of the UK.
func (r *TaxProfileRegistry) Lookup(taxYear string, region domain.TaxRegion) (domain.TaxYearProfile, error) {
	if strings.TrimSpace(taxYear) == "" {
		taxYear = r.DefaultTaxYear()
	}
	normalized, err := dateutil.NormalizeTaxYear(taxYear)
	if err != nil {
		return domain.TaxYearProfile{}, fmt.Errorf("%w: %v", ErrUnknownTaxProfile, err)
	}
	if region == "" {
		region = domain.RegionUK
	}

	p, ok := r.profiles[domain.ProfileKey(normalized, region)]
	if !ok {
		return domain.TaxYearProfile{}, fmt.Errorf("%w: %s %s", ErrUnknownTaxProfile, normalized, region)
	}
	return p, nil
}

// Profiles returns every registered profile ordered by tax year then region
func (r *TaxProfileRegistry) Profiles() []domain.TaxYearProfile {
	out := make([]domain.TaxYearProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TaxYear != out[j].TaxYear {
			return out[i].TaxYear < out[j].TaxYear
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// DefaultTaxYear returns the current tax year when it is registered, otherwise
// the latest registered tax year that has started
func (r *TaxProfileRegistry) DefaultTaxYear() string {
	current := dateutil.TaxYearLabel(nowFunc())
	latest := ""
	for _, p := range r.Profiles() {
		if p.TaxYear == current {
			return current
		}
		if p.TaxYear < current {
			latest = p.TaxYear
		}
	}
	if latest == "" {
		// Every registered profile is in the future; use the earliest.
		if profiles := r.Profiles(); len(profiles) > 0 {
			return profiles[0].TaxYear
		}
		return current
	}
	return latest
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rate(s string) *decimal.Decimal {
	r := d(s)
	return &r
}

// ukBands are the rest-of-UK income tax bands, frozen since 2023/24
func ukBands() domain.UKBands {
	return domain.UKBands{
		BasicRateThreshold:      d("12570"),
		HigherRateThreshold:     d("50270"),
		AdditionalRateThreshold: d("125140"),
		BasicRate:               d("0.20"),
		HigherRate:              d("0.40"),
		AdditionalRate:          d("0.45"),
	}
}

func niRates(primaryRate, secondaryThreshold, secondaryRate string) domain.NIRates {
	return domain.NIRates{
		PrimaryThreshold:   d("12570"),
		PrimaryRate:        d(primaryRate),
		UpperEarningsLimit: d("50270"),
		PrimaryUpperRate:   rate("0.02"),
		SecondaryThreshold: d(secondaryThreshold),
		SecondaryRate:      d(secondaryRate),
	}
}

// builtInProfiles are the HMRC and Revenue Scotland tables shipped with the tool.
// Scottish profiles model five bands; the 45% advanced band introduced in
// 2024/25 is folded into the higher band.
func builtInProfiles() []domain.TaxYearProfile {
	type year struct {
		label    string
		ni       domain.NIRates
		scottish domain.ScottishBands
	}
	years := []year{
		{
			label: "2023/24",
			ni:    niRates("0.12", "9100", "0.138"),
			scottish: domain.ScottishBands{
				StarterThreshold: d("12570"), BasicThreshold: d("14732"), IntermediateThreshold: d("25688"),
				HigherThreshold: d("43662"), TopThreshold: d("125140"),
				StarterRate: d("0.19"), BasicRate: d("0.20"), IntermediateRate: d("0.21"),
				HigherRate: d("0.42"), TopRate: d("0.47"),
			},
		},
		{
			label: "2024/25",
			ni:    niRates("0.08", "9100", "0.138"),
			scottish: domain.ScottishBands{
				StarterThreshold: d("12570"), BasicThreshold: d("14876"), IntermediateThreshold: d("26561"),
				HigherThreshold: d("43662"), TopThreshold: d("125140"),
				StarterRate: d("0.19"), BasicRate: d("0.20"), IntermediateRate: d("0.21"),
				HigherRate: d("0.42"), TopRate: d("0.48"),
			},
		},
		{
			label: "2025/26",
			ni:    niRates("0.08", "5000", "0.15"),
			scottish: domain.ScottishBands{
				StarterThreshold: d("12570"), BasicThreshold: d("15398"), IntermediateThreshold: d("27492"),
				HigherThreshold: d("43663"), TopThreshold: d("125140"),
				StarterRate: d("0.19"), BasicRate: d("0.20"), IntermediateRate: d("0.21"),
				HigherRate: d("0.42"), TopRate: d("0.48"),
			},
		},
	}

	profiles := make([]domain.TaxYearProfile, 0, len(years)*2)
	for _, y := range years {
		uk := domain.TaxYearProfile{
			TaxYear:           y.label,
			Region:            domain.RegionUK,
			PersonalAllowance: d("12570"),
			UK:                ukBands(),
			NI:                y.ni,
		}
		scotland := uk
		scotland.Region = domain.RegionScotland
		scotland.Scottish = y.scottish
		profiles = append(profiles, uk, scotland)
	}
	return profiles
}
