package errors

import "net/http"

func NotFound(entity string) *Exception {
	return &Exception{
		Kind:       KindNotFound,
		Message:    entity + " not found",
		StatusCode: http.StatusNotFound,
	}
}
