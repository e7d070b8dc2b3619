package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/utils"
	"github.com/MKhiriev/go-login-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, request.Username, request.Password, request.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user registered")

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.UserID))
	respond(w, r, http.StatusCreated, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var request models.UpdateEmailRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID, request.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	deleted, err := h.services.AuthService.DeleteAccount(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		// the record vanished between authentication and deletion
		respond(w, r, http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respond writes v as JSON. A failed write only gets logged since the
// status line may already be on the wire.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := utils.WriteJSON(w, status, v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respond").Msg("error writing response")
	}
}

// decodeJSON reads a size-limited JSON body into dst. Unknown fields are
// rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
