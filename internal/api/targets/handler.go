package targets

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Venkatasai-102/agenda-tracker/internal/api"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

// Handler handles daily target HTTP requests.
type Handler struct {
	store *store.Store
}

type setTargetRequest struct {
	Target int    `json:"target"`
	Date   string `json:"date"`
}

// Set handles POST /set-target.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var req setTargetRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Target < 1 {
		api.WriteError(w, http.StatusBadRequest, "Target must be at least 1")
		return
	}

	date := api.DateOrToday(req.Date)
	if err := h.store.Targets.Set(r.Context(), date, req.Target); err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"target":  req.Target,
	})
}

// MonthAchievements handles GET /month-achievements. Absent or invalid
// year/month parameters fall back to the current month.
func (h *Handler) MonthAchievements(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year < 1 || month < 1 || month > 12 {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}

	achievements, err := h.store.Calls.MonthAchievements(r.Context(), year, month)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"achievements": achievements,
	})
}
