// Package cerr provides the categorized errors of the use cases layer.
// Each category carries the HTTP status code which the RESTful adapter
// should report, while the wrapped error keeps the human-readable
// details. Errors without a category are treated as internal server
// errors by the serialization helpers.
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest categorizes err as a validation failure or an illegal
// state transition, reported as HTTP 400.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

// NotFound categorizes err as a missing entity, reported as HTTP 404.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict categorizes err as a business invariant violation, such as
// assigning a vehicle which is already serving an active booking,
// reported as HTTP 409.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
