package handler

import (
	"net/http"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/planting"
)

// PlantRequest is the request body for recording a planting
type PlantRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,calendardate"`
	SeedID string `json:"seed_id" validate:"required"`
}

// UnplantRequest is the request body for removing a planting
type UnplantRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,calendardate"`
	SeedID string `json:"seed_id" validate:"required"`
}

// PlantingListResponse wraps the user's planting snapshot
type PlantingListResponse struct {
	Plantings domain.PlantingSet `json:"plantings"`
}

// HandlePlant records that a seed was planted on a date
// @Summary Record planting
// @Description Records a planting. Planting the same seed on the same day twice is accepted and changes nothing.
// @Tags plantings
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Planting details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plantings [post]
func HandlePlant(svc planting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record planting"); err != nil {
			return
		}

		if err := svc.Plant(r.Context(), req.UserID, req.Date, req.SeedID); err != nil {
			respondServiceError(w, r, "Record planting", err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Planting recorded"})
	}
}

// HandleUnplant removes a planting record
// @Summary Remove planting
// @Tags plantings
// @Accept json
// @Produce json
// @Param request body UnplantRequest true "Planting to remove"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plantings/remove [post]
func HandleUnplant(svc planting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnplantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove planting"); err != nil {
			return
		}

		if err := svc.Unplant(r.Context(), req.UserID, req.Date, req.SeedID); err != nil {
			respondServiceError(w, r, "Remove planting", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Planting removed"})
	}
}

// HandleListPlantings returns the user's full planting snapshot
// @Summary List plantings
// @Tags plantings
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} PlantingListResponse
// @Router /api/v1/plantings [get]
func HandleListPlantings(svc planting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		set, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List plantings", err)
			return
		}

		respondJSON(w, http.StatusOK, PlantingListResponse{Plantings: set})
	}
}
