package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/service"
	"github.com/MKhiriev/go-login-server/internal/utils"
	"github.com/MKhiriev/go-login-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrUsernameTaken:      http.StatusConflict,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrStorageUnavailable: http.StatusInternalServerError,
	service.ErrTimeout:            http.StatusGatewayTimeout,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidUserID:              http.StatusBadRequest,
	ErrForbidden:                  http.StatusForbidden,
	ErrNoUserInContext:            http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the text sent to the client for err. Validation and
// request errors are returned in full; every other error is reduced to the
// message of its kind so storage or token details do not leak.
func publicMessage(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	case errors.Is(err, service.ErrUsernameTaken):
		return service.ErrUsernameTaken.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrInvalidToken):
		return service.ErrInvalidToken.Error()
	case errors.Is(err, service.ErrNotFound):
		return service.ErrNotFound.Error()
	case errors.Is(err, service.ErrTimeout):
		return service.ErrTimeout.Error()
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	default:
		return err.Error()
	}
}

// writeError logs err and writes it as a JSON [models.ErrorResponse].
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	if writeErr := utils.WriteJSON(w, status, models.ErrorResponse{Error: publicMessage(err, status)}); writeErr != nil {
		log.Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}
