package llm

import "errors"

var (
	// ErrAuth indicates missing or rejected provider credentials.
	ErrAuth = errors.New("llm provider rejected credentials")

	// ErrUnavailable indicates the provider endpoint is unreachable.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrSchemaViolation accompanies ErrInvalidOutput when the JSON parsed
	// but failed validation.
	ErrSchemaViolation = errors.New("llm output failed schema validation")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
