// Package errs defines the closed set of classified errors the API can
// surface. Each kind carries its HTTP status; errors are constructed at the
// failure site and forwarded untouched to the terminal error handler.
package errs

import (
	"net/http"
	"sort"
	"strings"
)

// GenericServerMessage is the only message 5xx responses ever carry.
const GenericServerMessage = "An error has occurred on the server"

// HTTPError is the classified error type for API responses.
//
// Fields holds per-field validation messages when the error came from input
// validation; it is logged server-side, the response body stays `{message}`.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Fields  map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func code(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func newError(status int, message string) *HTTPError {
	return &HTTPError{Code: code(status), Message: message, Status: status}
}

// NewBadRequest creates a 400 Bad Request error.
func NewBadRequest(message string) *HTTPError {
	return newError(http.StatusBadRequest, message)
}

// NewValidation aggregates all field violations into one 400 error. The
// message lists every failing field in a stable order.
func NewValidation(fields map[string]string) *HTTPError {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fields[k])
	}
	e := newError(http.StatusBadRequest, strings.Join(parts, "; "))
	e.Fields = fields
	return e
}

// NewUnauthorized creates a 401 Unauthorized error.
func NewUnauthorized(message string) *HTTPError {
	return newError(http.StatusUnauthorized, message)
}

// NewForbidden creates a 403 Forbidden error.
func NewForbidden(message string) *HTTPError {
	return newError(http.StatusForbidden, message)
}

// NewNotFound creates a 404 Not Found error.
func NewNotFound(message string) *HTTPError {
	return newError(http.StatusNotFound, message)
}

// NewConflict creates a 409 Conflict error.
func NewConflict(message string) *HTTPError {
	return newError(http.StatusConflict, message)
}

// NewInternalServer creates a 500 error. The message is the generic one;
// the underlying cause belongs in the server-side log, never the response.
func NewInternalServer() *HTTPError {
	return newError(http.StatusInternalServerError, GenericServerMessage)
}
