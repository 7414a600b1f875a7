package tool

import "fmt"

// ConfigError reports invalid generation settings (unknown dialect, missing
// or ambiguous source arguments). It is raised before any I/O happens.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// LoadError reports a failure to obtain or decode a schema source: HTTP
// failures, non-2xx responses, missing introspection payloads and file or
// descriptor parse errors. The underlying cause, when present, is available
// through errors.Unwrap.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *LoadError) Unwrap() error { return e.Cause }

// NewLoadError wraps cause with a formatted diagnostic message. A nil cause
// is allowed for failures that are fully described by the message itself.
func NewLoadError(cause error, format string, args ...interface{}) *LoadError {
	return &LoadError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
