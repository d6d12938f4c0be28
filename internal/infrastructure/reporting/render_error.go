package reporting

// RenderError represents a failure in the report rendering pipeline
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for pipeline failures
const (
	ErrCodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeEmitFailed       = "EMIT_FAILED"
	ErrCodeInvalidHTML      = "INVALID_HTML"
	ErrCodeArchiveFailed    = "ARCHIVE_FAILED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
