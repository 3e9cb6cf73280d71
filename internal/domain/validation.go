package domain

// ValidationError describes one invalid field with a stable machine-readable code.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidationError builds a ValidationError.
func NewValidationError(code, message string) ValidationError {
	return ValidationError{Code: code, Message: message}
}

// ValidationResult collects field errors in the order they were found.
type ValidationResult struct {
	errs []ValidationError
}

func (r *ValidationResult) Add(err ValidationError) {
	r.errs = append(r.errs, err)
}

// Errors returns a copy of the accumulated errors.
func (r ValidationResult) Errors() []ValidationError {
	out := make([]ValidationError, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r ValidationResult) IsValid() bool {
	return len(r.errs) == 0
}

func (r ValidationResult) HasErrors() bool {
	return !r.IsValid()
}
