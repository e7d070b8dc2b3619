package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/logger"
)

// staticAppInfo answers from values fixed at startup.
type staticAppInfo struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified for a blank version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service ready")
	return staticAppInfo{version: version}, nil
}

func (s staticAppInfo) GetAppVersion(context.Context) string {
	return s.version
}
