package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-login-server/internal/logger"
)

// getServerVersion answers GET /api/version with the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("writing version response failed")
	}
}
