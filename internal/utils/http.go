package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes v as a JSON body with the given status. When v cannot be
// encoded the client receives a bare 500 and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("encoding %T response: %w", v, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("writing response body: %w", err)
	}
	return nil
}
