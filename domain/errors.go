package domain

import "fmt"

// Error categories surfaced to callers. Every failure of a facade operation
// belongs to exactly one of them:
//
//   - InvalidInputError: the caller-supplied parameter violates a documented
//     constraint; nothing was sent upstream.
//   - UpstreamError: the upstream provider was unreachable or answered with a
//     non-success status.
//   - UpstreamFormatError: the upstream answered successfully but its payload
//     could not be mapped to the documented shape.

// InvalidInputError reports a caller mistake in a request parameter
type InvalidInputError struct {
	Param  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Param, e.Reason)
}

// UpstreamError reports a failed call to the upstream provider.
// StatusCode is zero when the request never produced a response.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream request failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// UpstreamFormatError reports an upstream payload that does not match the
// documented shape (schema drift on the provider side)
type UpstreamFormatError struct {
	Op     string
	Reason string
}

func (e *UpstreamFormatError) Error() string {
	return fmt.Sprintf("%s: unexpected upstream response format: %s", e.Op, e.Reason)
}
