package errors

import "net/http"

var ErrCapacityExceeded = &Exception{
	Kind:       KindCapacityExceeded,
	Message:    "task already has its required number of workers",
	StatusCode: http.StatusConflict,
}
