package domain

// Severity classifies a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationWarning is one finding produced by the validation layer.
// Error findings block calculation; warnings are advisory.
type ValidationWarning struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Type    Severity `json:"type"`
}

// IsError reports whether the finding blocks calculation
func (w ValidationWarning) IsError() bool { return w.Type == SeverityError }
