// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-conflicts/internal/app"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/internal/utils"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidOperation: http.StatusBadRequest,
	service.ErrStaleRecord:      http.StatusConflict,

	store.ErrRecordNotFound: http.StatusNotFound,

	context.Canceled:         http.StatusRequestTimeout,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with an error body in the same layout conflict
// responses use.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusInternalServerError {
		// internals stay in the log
		logger.FromRequest(r).Error().Str("func", "*Handler.writeError").Str("cause", message).Msg(app.MsgRequestFailed)
		message = app.MsgInternalServerError
	}

	h.writeJSON(w, r, models.ErrorResponse{Errors: []models.ResponseError{{Message: message}}}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("failed to write response")
	}
}
