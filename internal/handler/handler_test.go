package handler

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/config"
)

type response struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Error    *Error          `json:"error"`
	Findings []struct {
		Field string `json:"field"`
		Type  string `json:"type"`
	} `json:"findings"`
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	config.SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { config.SetNowFunc(time.Now) })
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.NewTaxProfileRegistry(), calculation.NewCalculationEngine(), log)
}

func do(t *testing.T, h *Handler, method, path, body string) (int, response) {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}
	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)

	h.HandleRequest(&ctx)

	var resp response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp), "body: %s", ctx.Response.Body())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	return ctx.Response.StatusCode(), resp
}

func TestHealth(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.True(t, resp.Success)
}

func TestProfilesListed(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodGet, "/v1/profiles", "")
	require.Equal(t, fasthttp.StatusOK, status)

	var profiles []struct {
		TaxYear string `json:"tax_year"`
		Region  string `json:"region"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &profiles))
	assert.Len(t, profiles, 6)
	assert.Equal(t, "2023/24", profiles[0].TaxYear)
}

func TestTakeHome(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/tax",
		`{"salary": "30000", "tax_year": "2025/26"}`)
	require.Equal(t, fasthttp.StatusOK, status)

	var out map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	// (30000-12570) x 20%
	assert.Equal(t, "3486", out["income_tax"])
	// (30000-5000) x 15%
	assert.Equal(t, "3750", out["employer_ni"])
}

func TestSavings(t *testing.T) {
	body := `{
		"tax_year": "2025/26",
		"employee_count": 100,
		"average_salary": 30000,
		"benefits": {"pension": {"enabled": true, "participation_rate": 50, "contribution_value": 5}}
	}`
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/savings", body)
	require.Equal(t, fasthttp.StatusOK, status)

	var out struct {
		AnnualSavings string `json:"annual_savings"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	// 50 participants x 1500 sacrificed x 15%
	assert.Equal(t, "11250", out.AnnualSavings)
}

func TestSavingsValidationFailure(t *testing.T) {
	body := `{"employee_count": 0, "average_salary": 30000,
		"benefits": {"pension": {"enabled": true, "participation_rate": 150, "contribution_value": 5}}}`
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/savings", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_failed", resp.Error.Code)
	assert.NotEmpty(t, resp.Findings)
}

func TestProjection(t *testing.T) {
	body := `{
		"tax_year": "2025/26",
		"employee_count": 100,
		"average_salary": 30000,
		"benefits": {"pension": {"enabled": true, "participation_rate": 50, "contribution_value": 5}},
		"projection": {"years": 3, "growth_rates": {"employee_growth": 0, "salary_growth": 0, "contribution_growth": 0}}
	}`
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/projection", body)
	require.Equal(t, fasthttp.StatusOK, status)

	var out struct {
		Years        []json.RawMessage `json:"years"`
		TotalSavings string            `json:"total_savings"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Len(t, out.Years, 3)
	assert.Equal(t, "33750", out.TotalSavings)
}

func TestProjectionYearsOutOfRange(t *testing.T) {
	body := `{"employee_count": 10, "average_salary": 30000, "projection": {"years": 0}}`
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/projection", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_input", resp.Error.Code)
}

func TestProjectionRejectsCollapsingGrowth(t *testing.T) {
	body := `{
		"employee_count": 100,
		"average_salary": 30000,
		"benefits": {"pension": {"enabled": true, "participation_rate": 50, "contribution_value": 5}},
		"projection": {"years": 2, "growth_rates": {"salary_growth": -3}}
	}`
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/projection", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_failed", resp.Error.Code)
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "projection.growth_rates.salary_growth", resp.Findings[0].Field)
	assert.Equal(t, "error", resp.Findings[0].Type)
}

const payrollBody = `{
	"employee_count": 100,
	"payroll_staff_count": 1,
	"avg_hourly_rate": 20,
	"monthly_payrolls": 1,
	"current_staff_costs": 36000,
	"current_software_costs": 5000,
	"hours_per_pay_run": 10,
	"monthly_cost": 500,
	"additional_one_off_costs": 2000,
	"processing_time_reduction": 50
}`

func TestComparePayroll(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/payroll/compare", payrollBody)
	require.Equal(t, fasthttp.StatusOK, status)

	var out struct {
		Comparison struct {
			Overall string `json:"overall"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Equal(t, "managedPayroll", out.Comparison.Overall)
}

func TestComparePayrollRejectsBadInputs(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/payroll/compare",
		`{"employee_count": 0, "monthly_payrolls": 1, "avg_hourly_rate": 20}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, resp.Findings)
	for _, f := range resp.Findings {
		if f.Field == "employee_count" {
			return
		}
	}
	t.Fatalf("expected an employee_count finding, got %+v", resp.Findings)
}

func TestValidate(t *testing.T) {
	status, resp := do(t, newTestHandler(t), fasthttp.MethodPost, "/v1/validate",
		`{"employee_count": 10, "avg_hourly_rate": 5}`)
	require.Equal(t, fasthttp.StatusOK, status)

	var out validateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Errors)
}

func TestErrors(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed json", fasthttp.MethodPost, "/v1/tax", `{"salary":`, fasthttp.StatusBadRequest, "invalid_body"},
		{"unknown profile", fasthttp.MethodPost, "/v1/tax", `{"salary": 30000, "tax_year": "2010/11"}`, fasthttp.StatusNotFound, "unknown_tax_profile"},
		{"wrong method", fasthttp.MethodGet, "/v1/savings", "", fasthttp.StatusMethodNotAllowed, "method_not_allowed"},
		{"unknown route", fasthttp.MethodGet, "/v2/nothing", "", fasthttp.StatusNotFound, "not_found"},
		{"negative salary", fasthttp.MethodPost, "/v1/tax", `{"salary": -1}`, fasthttp.StatusUnprocessableEntity, "validation_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestRequestsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	h := New(config.NewTaxProfileRegistry(), calculation.NewCalculationEngine(), slog.New(slog.NewTextHandler(&buf, nil)))
	do(t, h, fasthttp.MethodGet, "/healthz", "")
	assert.Contains(t, buf.String(), "path=/healthz")
	assert.Contains(t, buf.String(), "status=200")
}
