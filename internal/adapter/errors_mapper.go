package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-login-server/internal/service"
	"github.com/MKhiriev/go-login-server/models"
)

// mapHTTPError converts a non-2xx response into a [ResponseError]. A 401 is
// reported as unauthorized, which differs between login (bad credentials)
// and authenticated routes (bad token).
func mapHTTPError(resp *resty.Response, unauthorized error) error {
	if resp.IsSuccess() {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.kind = service.ErrValidation
	case http.StatusUnauthorized:
		respErr.kind = unauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = service.ErrNotFound
	case http.StatusConflict:
		respErr.kind = service.ErrUsernameTaken
	case http.StatusGatewayTimeout:
		respErr.kind = service.ErrTimeout
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		respErr.kind = service.ErrStorageUnavailable
	default:
		respErr.kind = ErrUnexpectedResponse
	}

	return respErr
}

// responseMessage extracts the "error" field of a JSON error body, falling
// back to the raw body or the status text.
func responseMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}

// transportError wraps a failed round trip. Expired deadlines and client
// timeouts are reported as service.ErrTimeout.
func transportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s request: %w: %w", op, service.ErrTimeout, err)
	}
	return fmt.Errorf("%s request: %w: %w", op, ErrServerUnavailable, err)
}
