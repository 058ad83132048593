package llm

import "errors"

var (
	// ErrUnavailable indicates the model server could not be reached.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrCanceled indicates the caller abandoned the request.
	ErrCanceled = errors.New("llm request canceled")

	// ErrQuotaExceeded indicates the provider rejected the call for rate or
	// billing limits.
	ErrQuotaExceeded = errors.New("llm quota exceeded")

	// ErrInvalidOutput indicates the provider response could not be decoded.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrEmptyResponse indicates the provider returned no text.
	ErrEmptyResponse = errors.New("llm returned an empty response")

	// ErrRequestFailed covers any other non-success provider response.
	ErrRequestFailed = errors.New("llm request failed")
)
