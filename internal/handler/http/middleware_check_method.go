// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/models"
)

// MsgNotFound is the message of 404 responses produced by the router.
const MsgNotFound = "Not Found"

// notFound answers unknown paths with the JSON error envelope.
//
// It is registered both as the router's NotFound and MethodNotAllowed
// handler: a known path requested with an unsupported method gets 404
// instead of chi's default 405, which keeps route existence hidden from
// callers probing with other methods. chi propagates both handlers to
// mounted sub-routers.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Message: MsgNotFound,
	}, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}
}
