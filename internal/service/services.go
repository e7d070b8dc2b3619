// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/crypto"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/store"
	"github.com/MKhiriev/go-login-server/internal/token"
	"github.com/MKhiriev/go-login-server/internal/utils"
)

// Services groups the business services consumed by the transport layer.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService

	// Revocations is shared with the purge worker.
	Revocations *token.RevocationList
}

// NewServices builds the credential hasher, the token issuer and the
// revocation list from cfg and wires them with the user directory into the
// logged AuthService.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.Hasher)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	issuer, err := token.NewIssuer(cfg.App, utils.NewUUIDGenerator())
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	revocations := token.NewRevocationList(issuer.ClockSkew())

	authService, err := NewAuthService(storages.UserRepository, hasher, issuer, revocations, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthLoggingService(logger).Wrap(authService),
		AppInfoService: appInfoService,
		Revocations:    revocations,
	}, nil
}
