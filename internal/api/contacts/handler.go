package contacts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Venkatasai-102/agenda-tracker/internal/api"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// Handler handles contact HTTP requests.
type Handler struct {
	store *store.Store
}

type addContactRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type deleteContactRequest struct {
	ContactID int64 `json:"contact_id"`
}

type addToTodayRequest struct {
	Name string `json:"name"`
}

type addMultipleRequest struct {
	Names []string `json:"names"`
}

// Add handles POST /add-contact. First-time entry: the any-date duplicate
// check is enforced.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addContactRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		api.WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	date := api.DateOrToday(req.Date)

	id, err := h.store.Contacts.Add(r.Context(), name, date, false)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"contact": map[string]any{"id": id, "name": name},
	})
}

// Delete handles POST /delete-contact.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteContactRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.ContactID == 0 {
		api.WriteError(w, http.StatusBadRequest, "Contact ID is required")
		return
	}

	if err := h.store.Contacts.Delete(r.Context(), req.ContactID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "Contact not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// List handles GET /contacts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.Contacts.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contacts == nil {
		contacts = []store.ContactRef{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// ForDate handles GET /contacts-for-date: the day's resolved call list with
// carry-forwards.
func (h *Handler) ForDate(w http.ResponseWriter, r *http.Request) {
	date := api.DateOrToday(r.URL.Query().Get("date"))

	contacts, err := h.store.Contacts.ForDate(r.Context(), date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contacts == nil {
		contacts = []store.DayContact{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// History handles GET /contact-history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		api.WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	calls, err := h.store.Summary.History(r.Context(), name)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if calls == nil {
		calls = []store.Call{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"calls": calls})
}

// AddToToday handles POST /add-to-today: re-adding a known contact to today's
// list from the summary view. The any-date check is skipped; a contact already
// in today's list is reported as already_exists rather than an error.
func (h *Handler) AddToToday(w http.ResponseWriter, r *http.Request) {
	var req addToTodayRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		api.WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	today := store.Today()
	id, err := h.store.Contacts.Add(r.Context(), name, today, true)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			api.WriteJSON(w, http.StatusOK, map[string]any{
				"success":        true,
				"already_exists": true,
				"contact":        map[string]any{"name": name},
			})
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"already_exists": false,
		"contact":        map[string]any{"id": id, "name": name},
	})
}

// AddMultipleToToday handles POST /add-multiple-to-today. Best effort: names
// that fail the per-date check land in skipped, the rest are added.
func (h *Handler) AddMultipleToToday(w http.ResponseWriter, r *http.Request) {
	var req addMultipleRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Names) == 0 {
		api.WriteError(w, http.StatusBadRequest, "Names are required")
		return
	}

	today := store.Today()
	added := []string{}
	skipped := []string{}
	for _, raw := range req.Names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, err := h.store.Contacts.Add(r.Context(), name, today, true); err != nil {
			skipped = append(skipped, name)
			continue
		}
		added = append(added, name)
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"added":         added,
		"skipped":       skipped,
		"added_count":   len(added),
		"skipped_count": len(skipped),
	})
}
