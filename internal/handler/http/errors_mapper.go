package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/utils"
	"github.com/MKhiriev/go-config-sets/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorageUnavailable:      http.StatusServiceUnavailable,

	validators.ErrUnsupportedType:   http.StatusBadRequest,
	validators.ErrUnknownField:      http.StatusBadRequest,
	validators.ErrEmptyName:         http.StatusBadRequest,
	validators.ErrInvalidPathFormat: http.StatusBadRequest,
	validators.ErrPathNotFound:      http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:  http.StatusBadRequest,
	validators.ErrInvalidTheme:      http.StatusBadRequest,
	validators.ErrInvalidPort:       http.StatusBadRequest,
	validators.ErrUnsafePort:        http.StatusBadRequest,

	validators.ErrNameExists:           http.StatusConflict,
	validators.ErrSerialNumberExists:   http.StatusConflict,
	validators.ErrAbsoluteSerialExists: http.StatusConflict,
	validators.ErrNicknameExists:       http.StatusConflict,

	store.ErrConfigSetNotFound: http.StatusNotFound,
	store.ErrConfigSetConflict: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the error envelope. Client errors carry the
// error text, server errors a generic message and are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status < http.StatusInternalServerError {
		utils.WriteResponse(w, err.Error(), status)
		return
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	msg := app.MsgInternalServerError
	if status == http.StatusServiceUnavailable {
		msg = app.MsgStorageUnavailable
	}
	utils.WriteResponse(w, msg, status)
}
