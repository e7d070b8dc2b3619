package handler

import (
	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/handler/http"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/service"
)

// Handlers holds one handler per enabled transport. Only HTTP exists today.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transports enabled by cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("http handler enabled")
	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
