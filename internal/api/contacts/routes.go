package contacts

import (
	"net/http"

	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// RegisterRoutes adds the contact endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /add-contact", h.Add)
	mux.HandleFunc("POST /delete-contact", h.Delete)
	mux.HandleFunc("GET /contacts", h.List)
	mux.HandleFunc("GET /contacts-for-date", h.ForDate)
	mux.HandleFunc("GET /contact-history", h.History)
	mux.HandleFunc("POST /add-to-today", h.AddToToday)
	mux.HandleFunc("POST /add-multiple-to-today", h.AddMultipleToToday)
}
