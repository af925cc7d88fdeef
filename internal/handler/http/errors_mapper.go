package http

import (
	"errors"
	"net/http"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/service"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
)

// errorStatusMap translates sentinel errors raised by the service and store
// layers into HTTP status codes. Errors not present in the map fall back to
// 500 Internal Server Error.
//
// Duplicate email intentionally maps to 400, not 409, matching the API's
// documented register behavior.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusBadRequest,
	service.ErrNoFileProvided:      http.StatusBadRequest,
	service.ErrAvatarUploadFailed:  http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrContactNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// writeServiceError logs err and writes the structured error body with the
// mapped status code.
//
// For known sentinels the response detail is the sentinel's message, so
// wrapped low-level causes never reach the client. The one exception is the
// avatar upload failure, whose underlying message is deliberately attached.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for sentinel, status := range errorStatusMap {
		if !errors.Is(err, sentinel) {
			continue
		}

		detail := sentinel.Error()
		if errors.Is(err, service.ErrAvatarUploadFailed) {
			detail = err.Error()
		}

		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, detail, status)
		return
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
