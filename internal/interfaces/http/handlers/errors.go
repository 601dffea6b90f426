// Package handlers contains the chi HTTP handlers for the API surface.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindwell-backend/pkg/api"
	appErrors "mindwell-backend/pkg/errors"
)

// writeServiceError maps the error taxonomy onto HTTP statuses. Store,
// aggregation and persistence failures surface as 500 without leaking the
// underlying cause; the full error is logged server-side.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case appErrors.IsValidation(err):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case appErrors.IsUnauthorized(err):
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case appErrors.IsNotFound(err):
		api.WriteError(w, http.StatusNotFound, "not found")
	default:
		logger.Error("request failed",
			zap.String("group", appErrors.GroupOf(err)),
			zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
