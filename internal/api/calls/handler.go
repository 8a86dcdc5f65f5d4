package calls

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Venkatasai-102/agenda-tracker/internal/api"
	"github.com/Venkatasai-102/agenda-tracker/internal/encourage"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// Handler handles call HTTP requests.
type Handler struct {
	store *store.Store
}

type addCallRequest struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Date    string `json:"date"`
}

type updateCallRequest struct {
	CallID  int64  `json:"call_id"`
	Outcome string `json:"outcome"`
	Date    string `json:"date"`
}

type deleteCallRequest struct {
	CallID int64  `json:"call_id"`
	Date   string `json:"date"`
}

// Add handles POST /add-call.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCallRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	outcome := strings.ToUpper(req.Outcome)
	date := api.DateOrToday(req.Date)

	if name == "" {
		api.WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !store.ValidOutcome(outcome) {
		api.WriteError(w, http.StatusBadRequest, "Invalid outcome type")
		return
	}

	callID, err := h.store.Calls.Add(r.Context(), name, outcome, date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats, target, err := h.statsAndTarget(r, date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"call_id": callID,
		"name":    name,
		"stats":   stats,
		"message": encourage.For(outcome, stats.Successful, target),
	})
}

// Update handles POST /update-call.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCallRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.CallID == 0 {
		api.WriteError(w, http.StatusBadRequest, "Call ID is required")
		return
	}
	outcome := strings.ToUpper(req.Outcome)
	if !store.ValidOutcome(outcome) {
		api.WriteError(w, http.StatusBadRequest, "Invalid outcome type")
		return
	}

	if err := h.store.Calls.UpdateOutcome(r.Context(), req.CallID, outcome); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "Call not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	date := api.DateOrToday(req.Date)
	stats, target, err := h.statsAndTarget(r, date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
		"message": encourage.For(outcome, stats.Successful, target),
	})
}

// Delete handles POST /delete-call.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteCallRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.CallID == 0 {
		api.WriteError(w, http.StatusBadRequest, "Call ID is required")
		return
	}

	if err := h.store.Calls.Delete(r.Context(), req.CallID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "Call not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	date := api.DateOrToday(req.Date)
	stats, target, err := h.statsAndTarget(r, date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
		"target":  target,
	})
}

// List handles GET /calls.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	date := api.DateOrToday(r.URL.Query().Get("date"))

	calls, err := h.store.Calls.ListForDate(r.Context(), date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if calls == nil {
		calls = []store.Call{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"calls": calls})
}

// Stats handles GET /stats. The target is null when none has been set for the
// date.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	date := api.DateOrToday(r.URL.Query().Get("date"))

	stats, err := h.store.Calls.StatsForDate(r.Context(), date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	target, ok, err := h.store.Targets.Get(r.Context(), date)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var targetField any
	if ok {
		targetField = target
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"stats":  stats,
		"target": targetField,
	})
}

// statsAndTarget fetches the date's stats and target, defaulting the target
// to zero when unset (so encouragement math still works).
func (h *Handler) statsAndTarget(r *http.Request, date string) (store.Stats, int, error) {
	stats, err := h.store.Calls.StatsForDate(r.Context(), date)
	if err != nil {
		return store.Stats{}, 0, err
	}
	target, _, err := h.store.Targets.Get(r.Context(), date)
	if err != nil {
		return store.Stats{}, 0, err
	}
	return stats, target, nil
}
