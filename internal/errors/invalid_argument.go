package errors

import "net/http"

func InvalidArgument(message string) *Exception {
	return &Exception{
		Kind:       KindInvalidArgument,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
