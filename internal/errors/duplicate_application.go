package errors

import "net/http"

var ErrDuplicateApplication = &Exception{
	Kind:       KindDuplicateApplication,
	Message:    "worker has already applied to this task",
	StatusCode: http.StatusConflict,
}
