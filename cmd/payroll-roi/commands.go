package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/config"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/internal/handler"
	"github.com/ukpayroll/roi-calculator/internal/output"
	"github.com/ukpayroll/roi-calculator/internal/validation"
	pct "github.com/ukpayroll/roi-calculator/pkg/decimal"
)

// section selects which parts of a scenario a command calculates
type section int

const (
	sectionAll section = iota
	sectionSavings
	sectionProjection
	sectionPayroll
)

// scope drops the parts of a scenario the command does not report on
func scope(scenario *domain.Scenario, s section) error {
	switch s {
	case sectionSavings, sectionProjection:
		if !scenario.HasBenefits() {
			return errors.New("scenario has no enabled benefits")
		}
		scenario.Payroll = domain.CombinedPayrollInputs{}
		if s == sectionSavings {
			scenario.Projection.Years = 0
		} else if scenario.Projection.Years == 0 {
			return errors.New("scenario has no projection years")
		}
	case sectionPayroll:
		if !scenario.HasPayroll() {
			return errors.New("scenario has no payroll inputs")
		}
		scenario.Benefits = domain.DefaultMultiBenefitConfig()
		scenario.Projection.Years = 0
	}
	return nil
}

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Calculate every section of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenario(cmd, args[0], sectionAll)
		},
	}
}

func (a *app) newSavingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "savings [scenario-file]",
		Short: "Calculate annual employer NI savings from salary sacrifice benefits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenario(cmd, args[0], sectionSavings)
		},
	}
}

func (a *app) newProjectCmd() *cobra.Command {
	var years int
	cmd := &cobra.Command{
		Use:   "project [scenario-file]",
		Short: "Project benefit savings over several years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenarioWith(cmd, args[0], sectionProjection, func(s *domain.Scenario) {
				if years > 0 {
					s.Projection.Years = years
				}
			})
		},
	}
	cmd.Flags().IntVar(&years, "years", 0, "projection length in years (overrides the scenario)")
	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Compare a payroll system against a managed payroll service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenario(cmd, args[0], sectionPayroll)
		},
	}
}

func (a *app) runScenario(cmd *cobra.Command, path string, s section) error {
	return a.runScenarioWith(cmd, path, s, nil)
}

func (a *app) runScenarioWith(cmd *cobra.Command, path string, s section, adjust func(*domain.Scenario)) error {
	scenario, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return err
	}
	if adjust != nil {
		adjust(scenario)
	}
	if err := scope(scenario, s); err != nil {
		return err
	}
	if scenario.Projection.Years > calculation.MaxProjectionYears {
		return fmt.Errorf("projection years must be between 1 and %d", calculation.MaxProjectionYears)
	}

	reg, err := a.registry()
	if err != nil {
		return err
	}
	profile, err := a.profileFor(reg, scenario)
	if err != nil {
		return err
	}

	report, err := a.engine().Run(cmd.Context(), scenario, profile)
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			printFindings(cmd, verr.Findings)
		}
		return err
	}
	report.Assumptions = output.GenerateAssumptions(profile)
	return a.emit(cmd, report)
}

// emit writes the report to --output or stdout
func (a *app) emit(cmd *cobra.Command, report *domain.Report) error {
	if a.outputDir != "" {
		if err := os.MkdirAll(a.outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		files, err := output.GenerateReport(report, a.format, a.outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}

	if output.NormalizeFormatName(a.format) == "all" {
		return errors.New(`format "all" needs --output`)
	}
	b, err := output.Render(report, a.format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Check a scenario file and report validation findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			var findings []domain.ValidationWarning
			if scenario.HasBenefits() || scenario.Projection.Years > 0 {
				findings = append(findings, validation.ValidateSavingsInputs(scenario.EmployeeCount, scenario.AverageSalary)...)
				findings = append(findings, validation.ValidateBenefits(scenario.Benefits)...)
			}
			if scenario.HasPayroll() {
				findings = append(findings, validation.Validate(scenario.PayrollInputs())...)
			}

			if len(findings) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q is valid\n", scenario.Name)
				return nil
			}
			printFindings(cmd, findings)
			if validation.HasErrors(findings) {
				return fmt.Errorf("scenario %q has %d blocking finding(s)", scenario.Name, len(validation.Errors(findings)))
			}
			return nil
		},
	}
}

func printFindings(cmd *cobra.Command, findings []domain.ValidationWarning) {
	for _, f := range findings {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", f.Type, f.Field, f.Message)
	}
}

func (a *app) newTaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax [salary]",
		Short: "Show income tax and NI on an annual salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", args[0], err)
			}
			if salary.IsNegative() {
				return errors.New("salary cannot be negative")
			}
			reg, err := a.registry()
			if err != nil {
				return err
			}
			profile, err := a.profileFor(reg, nil)
			if err != nil {
				return err
			}

			th := calculation.CalculateTakeHome(salary, profile)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "Tax year\t%s (%s)\t\n", profile.TaxYear, profile.Region)
			fmt.Fprintf(w, "Gross salary\t%s\t\n", output.FormatCurrency(th.Gross))
			fmt.Fprintf(w, "Income tax\t%s\t\n", output.FormatCurrency(th.IncomeTax))
			fmt.Fprintf(w, "Employee NI\t%s\t\n", output.FormatCurrency(th.EmployeeNI))
			fmt.Fprintf(w, "Take-home pay\t%s\t\n", output.FormatCurrency(th.Net))
			fmt.Fprintf(w, "Employer NI\t%s\t\n", output.FormatCurrency(th.EmployerNI))
			return w.Flush()
		},
	}
}

func (a *app) newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available tax year profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAX YEAR\tREGION\tPERSONAL ALLOWANCE\tEMPLOYER NI\tEMPLOYEE NI")
			for _, p := range reg.Profiles() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s above %s\t%s\n",
					p.TaxYear, p.Region, output.FormatCurrency(p.PersonalAllowance),
					output.FormatPercentage(pct.ToPercent(p.NI.SecondaryRate)), output.FormatCurrency(p.NI.SecondaryThreshold),
					output.FormatPercentage(pct.ToPercent(p.NI.PrimaryRate)))
			}
			fmt.Fprintf(w, "\nDefault tax year: %s\n", reg.DefaultTaxYear())
			return w.Flush()
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			h := handler.New(reg, a.engine(), a.logger.Slog())
			server := &fasthttp.Server{
				Handler: h.HandleRequest,
				Name:    "payroll-roi",
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- server.ListenAndServe(addr) }()
			a.logger.Infof("listening on %s", addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				a.logger.Infof("shutting down")
				return server.ShutdownWithContext(context.Background())
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envOr("PORT", ":8080"), "listen address")
	return cmd
}

// envOr reads a port from the environment the way container platforms set it
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return ":" + v
	}
	return fallback
}

func (a *app) newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example scenario file to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := config.NewInputParser().CreateExampleScenario()
			if err := output.SaveScenario(scenario, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", args[0])
			return nil
		},
	}
}
