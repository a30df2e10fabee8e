package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/burundanga/burundanga-api/internal/audit"
)

// ListEventsHandler pages through the event log. Admin-only; mounted behind
// rbac.Require("events:list").
func ListEventsHandler(events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after, _ := strconv.ParseInt(r.URL.Query().Get("after"), 10, 64)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		evs, err := events.Since(r.Context(), after, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		out := make([]map[string]any, 0, len(evs))
		for _, e := range evs {
			out = append(out, map[string]any{
				"offset":     e.Offset,
				"type":       e.Type,
				"key":        e.Key,
				"data":       json.RawMessage(e.DataJSON),
				"created_at": e.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
