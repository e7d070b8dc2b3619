package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

// AuthLoggingService is an AuthService decorator that writes one structured
// event per call: operation, outcome kind, duration and the user id when it
// is known. Passwords, emails and raw tokens are never logged.
type AuthLoggingService struct {
	inner  AuthService
	logger *logger.Logger
}

// NewAuthLoggingService returns a wrapper that logs to the request logger
// found in the context, or to logger when the context carries none.
func NewAuthLoggingService(logger *logger.Logger) AuthServiceWrapper {
	return &AuthLoggingService{logger: logger}
}

func (s *AuthLoggingService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}

func (s *AuthLoggingService) Register(ctx context.Context, username, password, email string) (models.User, error) {
	started := time.Now()
	user, err := s.inner.Register(ctx, username, password, email)

	event := s.event(ctx, "register", started, err).Str("username", username)
	if err == nil {
		event = event.Int64("user_id", user.UserID)
	}
	event.Send()

	return user, err
}

func (s *AuthLoggingService) Login(ctx context.Context, username, password string) (models.SessionToken, error) {
	started := time.Now()
	token, err := s.inner.Login(ctx, username, password)

	event := s.event(ctx, "login", started, err).Str("username", username)
	if err == nil {
		event = event.Int64("user_id", token.UserID).Time("expires_at", token.ExpiresAt)
	}
	event.Send()

	return token, err
}

func (s *AuthLoggingService) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	started := time.Now()
	userID, err := s.inner.Authenticate(ctx, rawToken)

	event := s.event(ctx, "authenticate", started, err)
	if err == nil {
		event = event.Int64("user_id", userID)
	}
	event.Send()

	return userID, err
}

func (s *AuthLoggingService) Logout(ctx context.Context, rawToken string) error {
	started := time.Now()
	err := s.inner.Logout(ctx, rawToken)

	s.event(ctx, "logout", started, err).Send()

	return err
}

func (s *AuthLoggingService) GetProfile(ctx context.Context, id int64) (models.User, error) {
	started := time.Now()
	user, err := s.inner.GetProfile(ctx, id)

	s.event(ctx, "get_profile", started, err).Int64("user_id", id).Send()

	return user, err
}

func (s *AuthLoggingService) UpdateProfile(ctx context.Context, id int64, email string) (models.User, error) {
	started := time.Now()
	user, err := s.inner.UpdateProfile(ctx, id, email)

	s.event(ctx, "update_profile", started, err).Int64("user_id", id).Send()

	return user, err
}

func (s *AuthLoggingService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	started := time.Now()
	deleted, err := s.inner.DeleteAccount(ctx, id)

	s.event(ctx, "delete_account", started, err).Int64("user_id", id).Bool("deleted", deleted).Send()

	return deleted, err
}

// event starts a log entry whose level follows the outcome kind: info on
// success, error for server-side faults, warn for everything else.
func (s *AuthLoggingService) event(ctx context.Context, op string, started time.Time, err error) *zerolog.Event {
	log := s.loggerFor(ctx)
	kind := KindOf(err)

	var event *zerolog.Event
	switch kind {
	case KindOK:
		event = log.Info()
	case KindStorageUnavailable, KindInternal:
		event = log.Error().Err(err)
	default:
		event = log.Warn()
	}

	return event.
		Str("op", op).
		Str("outcome", kind.String()).
		Dur("duration", time.Since(started))
}

func (s *AuthLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		return s.logger
	}
	return log
}
