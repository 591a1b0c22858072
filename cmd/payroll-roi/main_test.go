package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example scenario written to")
	return path
}

func TestExampleScenarioValidates(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Scenario "Example Manufacturing Ltd" is valid`)
}

func TestRunConsoleReport(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PAYROLL & BENEFITS ROI ANALYSIS")
	assert.Contains(t, out, "MULTI-YEAR PROJECTION")
	assert.Contains(t, out, "RECOMMENDATION: Managed Payroll")
}

func TestSavingsOmitsPayroll(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "savings", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"savings"`)
	assert.NotContains(t, out, `"payroll_system"`)
	assert.NotContains(t, out, `"projection"`)
}

func TestProjectYearsFlag(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "project", path, "--years", "3", "--format", "detailed-csv")
	require.NoError(t, err)
	// header + three years
	assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")), 4)
}

func TestCompareWritesFiles(t *testing.T) {
	path := writeExample(t)
	dir := t.TempDir()
	out, err := execute(t, "compare", path, "--format", "csv", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTaxCommand(t *testing.T) {
	out, err := execute(t, "tax", "30000", "--tax-year", "2025/26")
	require.NoError(t, err)
	assert.Contains(t, out, "£3,486.00")
	assert.Contains(t, out, "£3,750.00")
}

func TestTaxCommandScotland(t *testing.T) {
	out, err := execute(t, "tax", "30000", "--tax-year", "2025/26", "--region", "scotland")
	require.NoError(t, err)
	assert.Contains(t, out, "2025/26 (scotland)")
}

func TestProfilesCommand(t *testing.T) {
	out, err := execute(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "2024/25")
	assert.Contains(t, out, "15.00% above £5,000.00")
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "tax", "lots")
	assert.Error(t, err)

	_, err = execute(t, "tax", "30000", "--tax-year", "1999/00")
	assert.Error(t, err)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeExample(t)
	_, err = execute(t, "run", path, "--format", "pdf")
	assert.Error(t, err)
}
