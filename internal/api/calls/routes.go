package calls

import (
	"net/http"

	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// RegisterRoutes adds the call endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /add-call", h.Add)
	mux.HandleFunc("POST /update-call", h.Update)
	mux.HandleFunc("POST /delete-call", h.Delete)
	mux.HandleFunc("GET /calls", h.List)
	mux.HandleFunc("GET /stats", h.Stats)
}
