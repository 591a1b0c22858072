// Package handler serves the calculators over a JSON HTTP API.
package handler

import (
	"errors"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/ukpayroll/roi-calculator/internal/calculation"
	"github.com/ukpayroll/roi-calculator/internal/config"
	"github.com/ukpayroll/roi-calculator/internal/domain"
	"github.com/ukpayroll/roi-calculator/internal/validation"
)

// Error is the error body of a failed request
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope wraps every response
type Envelope struct {
	Success  bool                       `json:"success"`
	Data     any                        `json:"data,omitempty"`
	Error    *Error                     `json:"error,omitempty"`
	Findings []domain.ValidationWarning `json:"findings,omitempty"`
}

// profileSelector picks a tax profile; empty fields take the registry defaults
type profileSelector struct {
	TaxYear string           `json:"tax_year"`
	Region  domain.TaxRegion `json:"region"`
}

type taxRequest struct {
	profileSelector
	Salary decimal.Decimal `json:"salary"`
}

type savingsRequest struct {
	profileSelector
	EmployeeCount int                       `json:"employee_count"`
	AverageSalary decimal.Decimal           `json:"average_salary"`
	Benefits      domain.MultiBenefitConfig `json:"benefits"`
}

type projectionRequest struct {
	savingsRequest
	Projection domain.ProjectionSettings `json:"projection"`
}

type validateResponse struct {
	Valid    bool                       `json:"valid"`
	Errors   []domain.ValidationWarning `json:"errors"`
	Warnings []domain.ValidationWarning `json:"warnings"`
}

// Handler routes API requests to the calculation engine
type Handler struct {
	profiles *config.TaxProfileRegistry
	engine   *calculation.CalculationEngine
	log      *slog.Logger
}

// New creates a handler. A nil logger uses slog.Default().
func New(profiles *config.TaxProfileRegistry, engine *calculation.CalculationEngine, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{profiles: profiles, engine: engine, log: log}
}

type route struct {
	method string
	handle func(*Handler, *fasthttp.RequestCtx)
}

var routes = map[string]route{
	"/healthz":            {fasthttp.MethodGet, (*Handler).health},
	"/v1/profiles":        {fasthttp.MethodGet, (*Handler).listProfiles},
	"/v1/tax":             {fasthttp.MethodPost, (*Handler).tax},
	"/v1/savings":         {fasthttp.MethodPost, (*Handler).savings},
	"/v1/projection":      {fasthttp.MethodPost, (*Handler).projection},
	"/v1/payroll/compare": {fasthttp.MethodPost, (*Handler).comparePayroll},
	"/v1/validate":        {fasthttp.MethodPost, (*Handler).validate},
}

// HandleRequest is the fasthttp.RequestHandler for the API
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	r, ok := routes[path]
	switch {
	case !ok:
		h.fail(ctx, fasthttp.StatusNotFound, "not_found", "no route for "+path)
	case string(ctx.Method()) != r.method:
		ctx.Response.Header.Set("Allow", r.method)
		h.fail(ctx, fasthttp.StatusMethodNotAllowed, "method_not_allowed", "use "+r.method)
	default:
		r.handle(h, ctx)
	}

	h.log.Info("request",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start))
}

func (h *Handler) health(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, Envelope{Success: true, Data: map[string]string{"status": "ok"}})
}

func (h *Handler) listProfiles(ctx *fasthttp.RequestCtx) {
	h.success(ctx, h.profiles.Profiles())
}

func (h *Handler) tax(ctx *fasthttp.RequestCtx) {
	var req taxRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Salary.IsNegative() {
		h.failFindings(ctx, []domain.ValidationWarning{{
			Field: "salary", Message: "must not be negative", Type: domain.SeverityError,
		}})
		return
	}
	profile, ok := h.profile(ctx, req.profileSelector)
	if !ok {
		return
	}
	h.success(ctx, calculation.CalculateTakeHome(req.Salary, profile))
}

func (h *Handler) savings(ctx *fasthttp.RequestCtx) {
	var req savingsRequest
	if !h.decode(ctx, &req) {
		return
	}
	profile, ok := h.profile(ctx, req.profileSelector)
	if !ok {
		return
	}
	result, err := h.engine.RunSavings(req.EmployeeCount, req.AverageSalary, withDefaults(req.Benefits), profile)
	if err != nil {
		h.failErr(ctx, err)
		return
	}
	h.success(ctx, result)
}

func (h *Handler) projection(ctx *fasthttp.RequestCtx) {
	var req projectionRequest
	if !h.decode(ctx, &req) {
		return
	}
	profile, ok := h.profile(ctx, req.profileSelector)
	if !ok {
		return
	}
	result, err := h.engine.RunProjection(ctx, req.EmployeeCount, req.AverageSalary, withDefaults(req.Benefits), profile, req.Projection)
	if err != nil {
		h.failErr(ctx, err)
		return
	}
	h.success(ctx, result)
}

func (h *Handler) comparePayroll(ctx *fasthttp.RequestCtx) {
	var inputs domain.CombinedPayrollInputs
	if !h.decode(ctx, &inputs) {
		return
	}
	result, err := h.engine.RunPayrollComparison(inputs)
	if err != nil {
		h.failErr(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, Envelope{
		Success: true,
		Data: map[string]any{
			"common":          result.Common,
			"payroll_system":  result.PayrollSystem,
			"managed_payroll": result.ManagedPayroll,
			"comparison":      result.Comparison,
		},
		Findings: result.Findings,
	})
}

// validate always answers 200; the verdict is in the body
func (h *Handler) validate(ctx *fasthttp.RequestCtx) {
	var inputs domain.CombinedPayrollInputs
	if !h.decode(ctx, &inputs) {
		return
	}
	findings := validation.Validate(inputs)
	h.success(ctx, validateResponse{
		Valid:    !validation.HasErrors(findings),
		Errors:   validation.Errors(findings),
		Warnings: validation.Warnings(findings),
	})
}

// withDefaults fills benefits missing from a request with disabled defaults
func withDefaults(benefits domain.MultiBenefitConfig) domain.MultiBenefitConfig {
	out := domain.DefaultMultiBenefitConfig()
	for benefitType, cfg := range benefits {
		out[benefitType] = cfg
	}
	return out
}

func (h *Handler) profile(ctx *fasthttp.RequestCtx, sel profileSelector) (domain.TaxYearProfile, bool) {
	p, err := h.profiles.Lookup(sel.TaxYear, sel.Region)
	if err != nil {
		h.failErr(ctx, err)
		return domain.TaxYearProfile{}, false
	}
	return p, true
}

func (h *Handler) decode(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		h.fail(ctx, fasthttp.StatusBadRequest, "invalid_body", "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) success(ctx *fasthttp.RequestCtx, data any) {
	h.writeJSON(ctx, fasthttp.StatusOK, Envelope{Success: true, Data: data})
}

func (h *Handler) fail(ctx *fasthttp.RequestCtx, status int, code, message string) {
	h.writeJSON(ctx, status, Envelope{Error: &Error{Code: code, Message: message}})
}

func (h *Handler) failFindings(ctx *fasthttp.RequestCtx, findings []domain.ValidationWarning) {
	h.writeJSON(ctx, fasthttp.StatusUnprocessableEntity, Envelope{
		Error:    &Error{Code: "validation_failed", Message: "inputs failed validation"},
		Findings: findings,
	})
}

// failErr maps engine and registry errors onto status codes
func (h *Handler) failErr(ctx *fasthttp.RequestCtx, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		h.failFindings(ctx, verr.Findings)
	case errors.Is(err, config.ErrUnknownTaxProfile):
		h.fail(ctx, fasthttp.StatusNotFound, "unknown_tax_profile", err.Error())
	case errors.Is(err, calculation.ErrInvalidProjectionYears),
		errors.Is(err, calculation.ErrUnknownBenefitType),
		errors.Is(err, calculation.ErrNoEmployees):
		h.fail(ctx, fasthttp.StatusUnprocessableEntity, "invalid_input", err.Error())
	default:
		h.log.Error("calculation failed", "path", string(ctx.Path()), "err", err)
		h.fail(ctx, fasthttp.StatusInternalServerError, "internal", "calculation failed")
	}
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, payload Envelope) {
	b, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("write json failed", "err", err)
		ctx.Error(`{"success":false}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
