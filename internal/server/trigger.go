package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/and161185/canteen/internal/utils"
)

// RunAutoOrdersHandler triggers exactly one batch pass. Intended for
// operations and deterministic testing; the continuous scheduler is the
// normal invocation path.
func (s *Server) RunAutoOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if !s.triggerAuthorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	override := r.URL.Query().Get("time")
	if override != "" {
		if s.config.IsProduction() {
			http.Error(w, "time override is disabled in production", http.StatusBadRequest)
			return
		}
		if !utils.IsValidFireTime(override) {
			http.Error(w, "invalid time, expected HH:MM", http.StatusBadRequest)
			return
		}
	}

	var summary interface{}
	var err error
	if override != "" {
		summary, err = s.runner.RunAt(r.Context(), override)
	} else {
		summary, err = s.runner.Run(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		s.deps.Logger.Errorf("auto-order batch pass: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		s.deps.Logger.Errorf("encode summary: %v", err)
	}
}

// triggerAuthorized checks the shared trigger secret: a bearer header, or a
// query parameter outside production. With no secret configured the endpoint
// is open only outside production.
func (s *Server) triggerAuthorized(r *http.Request) bool {
	secret := s.config.TriggerSecret
	if secret == "" {
		return !s.config.IsProduction()
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") && strings.TrimPrefix(authHeader, "Bearer ") == secret {
		return true
	}

	if !s.config.IsProduction() && r.URL.Query().Get("secret") == secret {
		return true
	}

	return false
}
