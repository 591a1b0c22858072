package calculation

import "errors"

var (
	// ErrNoEmployees is returned when a per-employee figure would divide by zero
	ErrNoEmployees = errors.New("employee count must be positive")
	// ErrInvalidProjectionYears is returned for projections outside 1..MaxProjectionYears
	ErrInvalidProjectionYears = errors.New("projection years out of range")
	// ErrUnknownBenefitType is returned when dispatching an unrecognised benefit tag
	ErrUnknownBenefitType = errors.New("unknown benefit type")
)
