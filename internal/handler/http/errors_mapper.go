package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-newsletter/internal/app"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"github.com/MKhiriev/go-newsletter/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrAlreadySubscribed:   http.StatusConflict,
	service.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	store.ErrSubscriptionAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:         app.MsgInvalidDataProvided,
	http.StatusConflict:           app.MsgAlreadySubscribed,
	http.StatusServiceUnavailable: app.MsgDatabaseUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus never leaks error details to the caller.
func messageFromStatus(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}
