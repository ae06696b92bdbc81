package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/seed"
)

// CreateSeedRequest is the request body for creating a seed
type CreateSeedRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	Name             string `json:"name" validate:"required,max=100"`
	Category         string `json:"category" validate:"required,category"`
	Quantity         int    `json:"quantity" validate:"gte=0"`
	MinGrowthDays    int    `json:"min_growth_days" validate:"gte=0"`
	MaxGrowthDays    int    `json:"max_growth_days" validate:"gte=0"`
	GrowthTime       string `json:"growth_time,omitempty"`
	PreferredWeather string `json:"preferred_weather,omitempty"`
	Info             string `json:"info,omitempty" validate:"max=2000"`
}

// UpdateSeedRequest is the request body for updating a seed. Omitted fields
// keep their stored values.
type UpdateSeedRequest struct {
	UserID           string  `json:"user_id" validate:"required"`
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category         *string `json:"category,omitempty" validate:"omitempty,category"`
	Quantity         *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MinGrowthDays    *int    `json:"min_growth_days,omitempty" validate:"omitempty,gte=0"`
	MaxGrowthDays    *int    `json:"max_growth_days,omitempty" validate:"omitempty,gte=0"`
	GrowthTime       *string `json:"growth_time,omitempty"`
	PreferredWeather *string `json:"preferred_weather,omitempty"`
	Info             *string `json:"info,omitempty" validate:"omitempty,max=2000"`
}

// AdjustQuantityRequest is the request body for changing stored quantity
type AdjustQuantityRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Delta  int    `json:"delta" validate:"required"`
}

// AdjustQuantityResponse carries the quantity after adjustment
type AdjustQuantityResponse struct {
	SeedID   string `json:"seed_id"`
	Quantity int    `json:"quantity"`
}

// HandleCreateSeed creates a seed in the user's inventory
// @Summary Create seed
// @Description Adds a seed to the user's inventory. Growth duration is given as typed day counts or a legacy string like "60-90 days".
// @Tags seeds
// @Accept json
// @Produce json
// @Param request body CreateSeedRequest true "Seed details"
// @Success 201 {object} domain.Seed
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/seeds [post]
func HandleCreateSeed(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create seed"); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), req.UserID, seed.NewSeed{
			Name:             req.Name,
			Category:         domain.SeedCategory(req.Category),
			Quantity:         req.Quantity,
			MinGrowthDays:    req.MinGrowthDays,
			MaxGrowthDays:    req.MaxGrowthDays,
			GrowthTime:       req.GrowthTime,
			PreferredWeather: req.PreferredWeather,
			Info:             req.Info,
		})
		if err != nil {
			respondServiceError(w, r, "Create seed", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetSeed returns one seed from the user's inventory
// @Summary Get seed
// @Tags seeds
// @Produce json
// @Param seedID path string true "Seed ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Seed
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/seeds/{seedID} [get]
func HandleGetSeed(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		seedID := chi.URLParam(r, "seedID")

		result, err := svc.Get(r.Context(), userID, seedID)
		if err != nil {
			respondServiceError(w, r, "Get seed", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// SeedListResponse wraps the user's inventory listing
type SeedListResponse struct {
	Seeds []domain.Seed `json:"seeds"`
}

// HandleListSeeds returns the user's inventory sorted by name
// @Summary List seeds
// @Tags seeds
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} SeedListResponse
// @Router /api/v1/seeds [get]
func HandleListSeeds(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		seeds, err := svc.List(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List seeds", err)
			return
		}

		respondJSON(w, http.StatusOK, SeedListResponse{Seeds: seeds})
	}
}

// HandleUpdateSeed applies a partial update to a seed
// @Summary Update seed
// @Tags seeds
// @Accept json
// @Produce json
// @Param seedID path string true "Seed ID"
// @Param request body UpdateSeedRequest true "Fields to update"
// @Success 200 {object} domain.Seed
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/seeds/{seedID} [patch]
func HandleUpdateSeed(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update seed"); err != nil {
			return
		}
		seedID := chi.URLParam(r, "seedID")

		var category *domain.SeedCategory
		if req.Category != nil {
			c := domain.SeedCategory(*req.Category)
			category = &c
		}

		updated, err := svc.Update(r.Context(), req.UserID, seedID, seed.UpdateSeed{
			Name:             req.Name,
			Category:         category,
			Quantity:         req.Quantity,
			MinGrowthDays:    req.MinGrowthDays,
			MaxGrowthDays:    req.MaxGrowthDays,
			GrowthTime:       req.GrowthTime,
			PreferredWeather: req.PreferredWeather,
			Info:             req.Info,
		})
		if err != nil {
			respondServiceError(w, r, "Update seed", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleAdjustSeedQuantity changes the stored quantity by a delta
// @Summary Adjust seed quantity
// @Description Changes the stored quantity by delta. The result is clamped at zero.
// @Tags seeds
// @Accept json
// @Produce json
// @Param seedID path string true "Seed ID"
// @Param request body AdjustQuantityRequest true "Quantity delta"
// @Success 200 {object} AdjustQuantityResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/seeds/{seedID}/quantity [post]
func HandleAdjustSeedQuantity(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustQuantityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust seed quantity"); err != nil {
			return
		}
		seedID := chi.URLParam(r, "seedID")

		quantity, err := svc.AdjustQuantity(r.Context(), req.UserID, seedID, req.Delta)
		if err != nil {
			respondServiceError(w, r, "Adjust seed quantity", err)
			return
		}

		respondJSON(w, http.StatusOK, AdjustQuantityResponse{SeedID: seedID, Quantity: quantity})
	}
}

// HandleDeleteSeed removes a seed and its plantings
// @Summary Delete seed
// @Description Removes the seed and every planting that references it.
// @Tags seeds
// @Produce json
// @Param seedID path string true "Seed ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/seeds/{seedID} [delete]
func HandleDeleteSeed(svc seed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		seedID := chi.URLParam(r, "seedID")

		if err := svc.Delete(r.Context(), userID, seedID); err != nil {
			respondServiceError(w, r, "Delete seed", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Seed deleted"})
	}
}
