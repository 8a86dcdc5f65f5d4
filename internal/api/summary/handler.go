package summary

import (
	"net/http"
	"sort"
	"strings"

	"github.com/Venkatasai-102/agenda-tracker/internal/api"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// Handler handles the cross-date summary endpoint.
type Handler struct {
	store *store.Store
}

// Get handles GET /summary. The filter query parameter is a comma-separated
// list of outcome tokens; "N/A" is accepted as an alias for "NA".
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r.URL.Query().Get("filter"))

	contacts, err := h.store.Summary.All(r.Context(), filters)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contacts == nil {
		contacts = []store.ContactSummary{}
	}

	names, err := h.store.Contacts.Names(r.Context(), store.Today())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	addedToToday := make([]string, 0, len(names))
	for name := range names {
		addedToToday = append(addedToToday, name)
	}
	sort.Strings(addedToToday)

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"contacts":       contacts,
		"active_filters": filters,
		"added_to_today": addedToToday,
	})
}

// parseFilters normalizes the comma-separated filter parameter: tokens are
// trimmed, upper-cased, and N/A maps to NA. Blank tokens are dropped.
func parseFilters(param string) []string {
	filters := []string{}
	for _, tok := range strings.Split(param, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if tok == "N/A" {
			tok = store.OutcomeNA
		}
		filters = append(filters, tok)
	}
	return filters
}
