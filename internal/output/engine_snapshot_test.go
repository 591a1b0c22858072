package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestEngineSnapshot produces a deterministic snapshot of core report metrics.
func TestEngineSnapshot(t *testing.T) {
	report := buildTestReport(t)

	// Trim to stable summary fields only
	type option struct {
		Net     string `json:"net_annual_benefit"`
		ROI5    string `json:"five_year_roi"`
		Payback string `json:"payback_months"`
		TCO5    string `json:"tco_5_year"`
	}
	var out struct {
		AnnualSavings    string `json:"annual_savings"`
		ProjectionTotal  string `json:"projection_total"`
		PayslipsPerYear  string `json:"payslips_per_year"`
		PayrollSystem    option `json:"payroll_system"`
		ManagedPayroll   option `json:"managed_payroll"`
		Overall          string `json:"overall"`
		FindingsReported int    `json:"findings"`
	}
	out.AnnualSavings = report.Savings.AnnualSavings.StringFixed(2)
	out.ProjectionTotal = report.Projection.TotalSavings.StringFixed(2)
	out.PayslipsPerYear = report.Common.TotalPayslipsPerYear.StringFixed(0)
	ps, mp := report.PayrollSystem, report.ManagedPayroll
	out.PayrollSystem = option{ps.NetAnnualBenefit.StringFixed(2), ps.FiveYearROI.StringFixed(2), ps.PaybackPeriodMonths.StringFixed(2), ps.TotalCostOfOwnership5Year.StringFixed(2)}
	out.ManagedPayroll = option{mp.NetAnnualBenefit.StringFixed(2), mp.FiveYearROI.StringFixed(2), mp.PaybackPeriodMonths.StringFixed(2), mp.TotalCostOfOwnership5Year.StringFixed(2)}
	out.Overall = string(report.Comparison.Overall)
	out.FindingsReported = len(report.Findings)

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b = append(b, '\n')

	// A second run must produce identical figures
	again := buildTestReport(t)
	if !again.Projection.TotalSavings.Equal(report.Projection.TotalSavings) || again.Comparison.Overall != report.Comparison.Overall {
		t.Fatalf("engine output is not deterministic")
	}

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, b, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(want) == "(placeholder will be auto-updated with UPDATE_GOLDEN)\n" && !update {
		t.Skip("placeholder golden present; run with UPDATE_GOLDEN=1 to create initial snapshot")
	}
	if !bytes.Equal(bytes.TrimSpace(want), bytes.TrimSpace(b)) {
		t.Fatalf("snapshot mismatch\nwant:\n%s\n got:\n%s", string(want), string(b))
	}
}
