package http

import (
	"errors"
	"net/http"

	"github.com/giggi/basesetup/internal/service"
	"github.com/giggi/basesetup/internal/store"
	"github.com/giggi/basesetup/internal/utils"
)

// errorStatusMap relates domain errors to HTTP status codes. Errors not
// listed here fall through to 500.
var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrInvalidUserID:      http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUsernameTaken:       http.StatusBadRequest,
	service.ErrEmailTaken:          http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	// A missing seeded role is a deployment defect, not a client error.
	service.ErrRoleNotConfigured:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	utils.ErrTokenExpired:   http.StatusUnauthorized,
	utils.ErrTokenTampered:  http.StatusUnauthorized,
	utils.ErrTokenMalformed: http.StatusUnauthorized,

	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
}

// statusFromError resolves err to an HTTP status code via errorStatusMap,
// honouring wrapped errors.
func statusFromError(err error) int {
	for domainErr, status := range errorStatusMap {
		if errors.Is(err, domainErr) {
			return status
		}
	}

	return http.StatusInternalServerError
}
