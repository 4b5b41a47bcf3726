package civitai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FailureCode identifies the origin of a Failure.
type FailureCode string

// Failure codes, one per origin in the error taxonomy.
const (
	// FailureInvalidQuery: builder state violated a documented constraint;
	// detected before any transport call.
	FailureInvalidQuery FailureCode = "invalid_query_parameter"
	// FailureUnmappedVariant: an enum filter value has no registered wire
	// string; detected before any transport call.
	FailureUnmappedVariant FailureCode = "unmapped_variant"
	// FailureTransport: network/timeout/connection fault from the transport.
	FailureTransport FailureCode = "transport_failure"
	// FailureRemote: the API returned a well-formed error payload.
	FailureRemote FailureCode = "remote_error"
	// FailureDecode: the response body did not match the expected shape.
	FailureDecode FailureCode = "decode_failure"
	// FailureUnknownWireValue: the response carried an enum wire string the
	// registry does not know.
	FailureUnknownWireValue FailureCode = "unknown_wire_value"
	// FailureCancelled: the call was cancelled or timed out via its context.
	FailureCancelled FailureCode = "cancelled"
)

// Static errors that can be wrapped with context.
var (
	ErrDuplicateMapping  = errors.New("duplicate enum mapping")
	ErrUnmappedVariant   = errors.New("unmapped enum variant")
	ErrUnknownWireValue  = errors.New("unknown wire value")
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrNoMoreItems       = errors.New("no more items")
	ErrNilFetcher        = errors.New("page fetch function is required")
)

// Failure is the structured error half of a Result.
type Failure struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
	// Detail carries raw diagnostic context (offending field, wire value,
	// HTTP status) when available.
	Detail string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", f.Code, f.Message, f.Detail)
	}

	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// APIError is an error payload returned by the Civitai API.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// ParseAPIError parses an error response body. The platform reports errors as
// {"error": "..."}; bodies that do not match still produce an APIError with
// the raw body as message so the status is never lost.
func ParseAPIError(status int, body []byte) *APIError {
	apiErr := APIError{Status: status}

	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(body)
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return &apiErr
}

// IsNotFound checks if the error is a not-found error from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized checks if the error is an authentication error from the API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsRateLimited checks if the error is a rate-limit rejection from the API.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests
}

// ClassifyTransportError normalizes an error from the transport collaborator
// into a Failure, distinguishing cancellation, remote-reported errors, and
// genuine transport faults.
func ClassifyTransportError(err error) *Failure {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Failure{Code: FailureCancelled, Message: "request cancelled", Detail: err.Error()}
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return &Failure{
			Code:    FailureRemote,
			Message: apiErr.Message,
			Detail:  fmt.Sprintf("status %d", apiErr.Status),
		}
	}

	return &Failure{Code: FailureTransport, Message: "transport request failed", Detail: err.Error()}
}

// ClassifyDecodeError normalizes an error from response decoding into a
// Failure, surfacing unknown wire values with their own code.
func ClassifyDecodeError(err error) *Failure {
	if errors.Is(err, ErrUnknownWireValue) {
		return &Failure{Code: FailureUnknownWireValue, Message: "response contains unknown enum value", Detail: err.Error()}
	}

	return &Failure{Code: FailureDecode, Message: "parsing response body", Detail: err.Error()}
}
