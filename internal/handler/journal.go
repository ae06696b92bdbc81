package handler

import (
	"net/http"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/journal"
)

// AppendJournalRequest is the request body for appending a journal entry
type AppendJournalRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Date    string `json:"date" validate:"required,calendardate"`
	SeedID  string `json:"seed_id,omitempty"`
	Message string `json:"message" validate:"required,max=2000"`
}

// JournalListResponse wraps the enriched journal listing
type JournalListResponse struct {
	Entries []domain.JournalView `json:"entries"`
}

// HandleAppendJournal stores a user-written journal entry
// @Summary Append journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param request body AppendJournalRequest true "Entry details"
// @Success 201 {object} domain.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/journal [post]
func HandleAppendJournal(svc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AppendJournalRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Append journal entry"); err != nil {
			return
		}

		entry, err := svc.Append(r.Context(), req.UserID, req.Date, req.SeedID, req.Message)
		if err != nil {
			respondServiceError(w, r, "Append journal entry", err)
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleListJournal returns the user's journal newest first, each entry
// enriched with its projected harvest window
// @Summary List journal entries
// @Tags journal
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} JournalListResponse
// @Router /api/v1/journal [get]
func HandleListJournal(svc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		entries, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List journal entries", err)
			return
		}

		respondJSON(w, http.StatusOK, JournalListResponse{Entries: entries})
	}
}
