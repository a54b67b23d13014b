package errors

import "net/http"

func Forbidden(message string) *Exception {
	return &Exception{
		Kind:       KindForbidden,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}
