// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-conflicts/internal/app"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/internal/utils"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.MutationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.mutate").Msg(app.MsgInvalidJSON)
		h.writeError(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}
	// the path decides the type
	req.ReturnType = chi.URLParam(r, "type")

	stored, err := h.services.MutationService.Apply(r.Context(), req)
	if err != nil {
		var stale *service.StaleRecordError
		if errors.As(err, &stale) {
			h.writeJSON(w, r, models.NewConflictResponse(err.Error(), stale.Info), http.StatusConflict)
			return
		}
		h.writeError(w, r, statusFromError(err), err.Error())
		return
	}

	h.writeJSON(w, r, models.MutationResponse{Data: stored}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	returnType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	rec, err := h.services.MutationService.GetRecord(r.Context(), returnType, id)
	if err != nil {
		h.writeError(w, r, statusFromError(err), err.Error())
		return
	}

	h.writeJSON(w, r, models.MutationResponse{Data: rec}, http.StatusOK)
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.build, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
}
