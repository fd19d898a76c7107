package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cstortz/developer-artifacts/pkg/apperrors"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    interface{}            `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, err error) {
	resp := APIResponse{Success: false, Error: err.Error()}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Details = appErr.Details
		writeJSON(w, appErr.StatusCode, resp)
		return
	}

	resp.Error = "internal server error"
	writeJSON(w, http.StatusInternalServerError, resp)
}
