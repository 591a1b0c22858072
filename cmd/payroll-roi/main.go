package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/config"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/internal/logging"
)

// app carries the global flags shared by every command
type app struct {
	format      string
	outputDir   string
	profileFile string
	taxYear     string
	region      string
	verbose     bool

	logger *logging.SlogLogger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "payroll-roi",
		Short: "UK payroll and salary sacrifice ROI calculator",
		Long: `payroll-roi estimates employer National Insurance savings from salary
sacrifice benefits, projects them over several years, and compares the
return on an in-house payroll system against a managed payroll service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.New(cmd.ErrOrStderr(), a.verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.format, "format", "f", "console", "output format (console, console-lite, json, csv, detailed-csv, html, all)")
	flags.StringVarP(&a.outputDir, "output", "o", "", "write reports to this directory instead of stdout")
	flags.StringVar(&a.profileFile, "profiles", "", "YAML file with additional tax year profiles")
	flags.StringVar(&a.taxYear, "tax-year", "", "tax year, e.g. 2025/26 (overrides the scenario)")
	flags.StringVar(&a.region, "region", "", "tax region: uk or scotland (overrides the scenario)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newRunCmd(),
		a.newSavingsCmd(),
		a.newProjectCmd(),
		a.newCompareCmd(),
		a.newValidateCmd(),
		a.newTaxCmd(),
		a.newProfilesCmd(),
		a.newServeCmd(),
		a.newExampleCmd(),
	)
	return root
}

// registry builds the tax profile registry, extended from --profiles when set
func (a *app) registry() (*config.TaxProfileRegistry, error) {
	reg := config.NewTaxProfileRegistry()
	if a.profileFile != "" {
		if err := reg.LoadProfilesFromFile(a.profileFile); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// profileFor resolves the profile for a scenario; flags win over the scenario file
func (a *app) profileFor(reg *config.TaxProfileRegistry, scenario *domain.Scenario) (domain.TaxYearProfile, error) {
	taxYear, region := a.taxYear, domain.TaxRegion(a.region)
	if scenario != nil {
		if taxYear == "" {
			taxYear = scenario.TaxYear
		}
		if region == "" {
			region = scenario.Region
		}
	}
	return reg.Lookup(taxYear, region)
}

func (a *app) engine() *calculation.CalculationEngine {
	eng := calculation.NewCalculationEngine()
	eng.Debug = a.verbose
	if a.logger != nil {
		eng.SetLogger(a.logger)
	}
	return eng
}
