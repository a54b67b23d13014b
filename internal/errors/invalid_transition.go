package errors

import "net/http"

func InvalidTransition(message string) *Exception {
	return &Exception{
		Kind:       KindInvalidTransition,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}
