package targets

import (
	"net/http"

	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// RegisterRoutes adds the target endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /set-target", h.Set)
	mux.HandleFunc("GET /month-achievements", h.MonthAchievements)
}
