package handler

import (
	"net/http"

	"github.com/mlavell/sproutlog/internal/calendar"
)

// HandleGetCalendar returns the user's annotated calendar view
// @Summary Get calendar
// @Description Returns per-day annotations for every day touched by a planting or harvest window. An optional selected date is highlighted.
// @Tags calendar
// @Produce json
// @Param user_id query string true "User ID"
// @Param selected query string false "Selected date (YYYY-MM-DD)"
// @Success 200 {object} domain.CalendarView
// @Router /api/v1/calendar [get]
func HandleGetCalendar(svc calendar.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		selected := GetOptionalQueryParam(r, "selected", "")

		view, err := svc.GetCalendar(r.Context(), userID, selected)
		if err != nil {
			respondServiceError(w, r, "Get calendar", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}
