// Package decisions exposes the decision log over HTTP.
package decisions

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/skystride/droneops/core/audit"
)

// NewLogHandler returns an HTTP handler exposing decision log records via
// GET /api/decisions. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty.
func NewLogHandler(store audit.Store, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" {
			auth := r.Header.Get("Authorization")
			if auth != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := audit.Query{}
		if s := r.URL.Query().Get("start"); s != "" {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				q.Start = t
			}
		}
		if s := r.URL.Query().Get("end"); s != "" {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				q.End = t
			}
		}
		q.Action = r.URL.Query().Get("action")
		q.EntityID = r.URL.Query().Get("entity_id")
		q.MissionID = r.URL.Query().Get("mission_id")

		records, err := store.Query(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
