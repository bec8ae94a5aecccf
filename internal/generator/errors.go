package generator

// ErrorCode categorizes generation errors for clearer handling and messaging.
type ErrorCode string

const (
	// ConfigError marks a malformed documentation declaration, such as a
	// documented request body without requestModels.
	ConfigError ErrorCode = "ConfigError"
	// SchemaError marks a model whose schema could not be derived or
	// dereferenced.
	SchemaError ErrorCode = "SchemaError"
)

// Error is a structured generation error with optional source context.
type Error struct {
	Code     ErrorCode
	Message  string
	Function string // function name, when the error is scoped to one
	Model    string // model name, when relevant
	Cause    error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Cause }
