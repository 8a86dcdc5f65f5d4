package summary

import (
	"net/http"

	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// RegisterRoutes adds the summary endpoint to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /summary", h.Get)
}
