package http

import (
	"net/http"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

// login answers with the token both in the body and in the "Authorization"
// header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", bearerScheme+" "+token.SignedString)
	respond(w, r, http.StatusOK, token)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), tokenString); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
