package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a workflow failure so callers can branch on the
// taxonomy without string-matching messages.
type Kind string

const (
	KindNotFound             Kind = "notFound"
	KindForbidden            Kind = "forbidden"
	KindInvalidTransition    Kind = "invalidTransition"
	KindDuplicateApplication Kind = "duplicateApplication"
	KindInvalidArgument      Kind = "invalidArgument"
	KindCapacityExceeded     Kind = "capacityExceeded"
	KindConflict             Kind = "conflict"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
