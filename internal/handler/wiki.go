package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/wiki"
)

// WikiListResponse wraps the reference catalog listing
type WikiListResponse struct {
	Entries []domain.WikiEntry `json:"entries"`
}

// HandleListWiki returns reference entries sorted by name
// @Summary List wiki entries
// @Description Returns the merged fruit and vegetable reference catalog. Optional category filter and name search.
// @Tags wiki
// @Produce json
// @Param category query string false "Category filter (Fruit or Vegetable)"
// @Param q query string false "Name search query"
// @Success 200 {object} WikiListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wiki [get]
func HandleListWiki(svc wiki.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GetOptionalQueryParam(r, "q", "")
		category := GetOptionalQueryParam(r, "category", "")

		var entries []domain.WikiEntry
		var err error
		if query != "" {
			entries, err = svc.Search(r.Context(), query)
		} else {
			entries, err = svc.List(r.Context(), domain.SeedCategory(category))
		}
		if err != nil {
			respondServiceError(w, r, "List wiki entries", err)
			return
		}

		respondJSON(w, http.StatusOK, WikiListResponse{Entries: entries})
	}
}

// HandleGetWikiEntry returns one reference entry
// @Summary Get wiki entry
// @Tags wiki
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} domain.WikiEntry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wiki/{entryID} [get]
func HandleGetWikiEntry(svc wiki.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, "entryID")

		entry, err := svc.Get(r.Context(), entryID)
		if err != nil {
			respondServiceError(w, r, "Get wiki entry", err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}
