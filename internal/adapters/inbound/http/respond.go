package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, gen.ErrorResp{Errors: []string{message}})
}

// respondError classifies err and writes the matching response. Server-side failures are logged.
func (api LibraryAppServer) respondError(w http.ResponseWriter, r *http.Request, err error) {
	resp := toErrorResponse(err)
	if resp.defect {
		api.Logger.Printf("LibraryAppServer: defect on %s %s: %v", r.Method, r.URL.Path, err)
	} else if resp.status >= http.StatusInternalServerError {
		api.Logger.Printf("LibraryAppServer: error on %s %s: %v", r.Method, r.URL.Path, err)
	}

	if resp.body == nil {
		w.WriteHeader(resp.status)
		return
	}
	respondJSON(w, resp.status, resp.body)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
