package llm

import "errors"

var (
	// ErrUnavailable indicates the completion endpoint is unreachable.
	ErrUnavailable = errors.New("completion endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyOutput indicates the model returned no usable text.
	ErrEmptyOutput = errors.New("empty llm output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
