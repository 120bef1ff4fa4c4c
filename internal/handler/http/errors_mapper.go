package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lost-and-found/internal/service"
	"github.com/MKhiriev/lost-and-found/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,

	service.ErrResetTokenInvalid: http.StatusBadRequest,
	service.ErrResetTokenExpired: http.StatusGone,
	service.ErrResetTokenUsed:    http.StatusGone,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,

	store.ErrImageStorageDisabled: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing error text. Mapped sentinel
// errors expose their own message; anything unmapped is reported as a plain
// 500 so that internal details never leak into responses.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
