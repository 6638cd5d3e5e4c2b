package llm

import "fmt"

// ErrorType classifies a gateway failure so callers can decide whether to
// retry, re-authenticate or surface the error.
type ErrorType int

const (
	// ErrorTypeUnknown is the zero value for unclassified failures.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeProvider marks configuration failures before any request is
	// made, such as an unregistered provider name.
	ErrorTypeProvider
	// ErrorTypeRequest marks failures building or sending the HTTP request.
	ErrorTypeRequest
	// ErrorTypeResponse marks failures reading or parsing a response body.
	ErrorTypeResponse
	// ErrorTypeAPI marks non-200 statuses not covered by a more specific type.
	ErrorTypeAPI
	// ErrorTypeRateLimit marks 429 responses. These are retried.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication marks 401 and 403 responses. Retrying with the
	// same key will not help.
	ErrorTypeAuthentication
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeProvider:
		return "ProviderError"
	case ErrorTypeRequest:
		return "RequestError"
	case ErrorTypeResponse:
		return "ResponseError"
	case ErrorTypeAPI:
		return "APIError"
	case ErrorTypeRateLimit:
		return "RateLimitError"
	case ErrorTypeAuthentication:
		return "AuthenticationError"
	default:
		return "UnknownError"
	}
}

// LLMError is the error type returned by the gateway. Err, when non-nil,
// carries the underlying cause and is reachable through errors.Unwrap.
type LLMError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *LLMError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewLLMError builds an LLMError wrapping err, which may be nil.
func NewLLMError(errType ErrorType, message string, err error) *LLMError {
	return &LLMError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}
