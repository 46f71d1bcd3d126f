package errors

import "fmt"

// MetaKind is the metadata key holding the error kind.
const MetaKind = "error_kind"

// Error kinds for failures of an upstream collaborator.
const (
	KindFetch      = "fetch"
	KindGeneration = "generation"
)

// FetchFailed wraps a character-service failure. cause may be nil when the
// failure is a non-2xx response rather than a transport error.
func FetchFailed(cause error, code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Meta:    map[string]interface{}{MetaKind: KindFetch},
	}
}

// FetchFailedf is FetchFailed with a formatted message.
func FetchFailedf(cause error, code Code, format string, args ...interface{}) *Error {
	return FetchFailed(cause, code, fmt.Sprintf(format, args...))
}

// GenerationFailed wraps a generative-language API failure.
func GenerationFailed(cause error, message string) *Error {
	return &Error{
		Code:    CodeUnavailable,
		Message: message,
		Cause:   cause,
		Meta:    map[string]interface{}{MetaKind: KindGeneration},
	}
}

// GetKind returns the error kind recorded on err, or "".
func GetKind(err error) string {
	kind, _ := GetMeta(err)[MetaKind].(string)
	return kind
}

// IsFetchError checks if an error came from loading a character
func IsFetchError(err error) bool {
	return GetKind(err) == KindFetch
}

// IsGenerationError checks if an error came from the generative-language API
func IsGenerationError(err error) bool {
	return GetKind(err) == KindGeneration
}
