package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/career"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.RecommendationUsecase
}

type careerDetailRequest struct {
	Career string `json:"career"`
}

func NewCareerHandler(uc usecase.RecommendationUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/predict", h.Predict)
	r.Get("/history", h.History)
	r.Post("/career", h.Detail)
}

func (h *CareerHandler) Predict(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var profile career.Profile
	if err := c.Bind().Body(&profile); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	pred, err := h.uc.Predict(c.Context(), userID, profile)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewPredictionResponse(pred))
}

func (h *CareerHandler) History(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	items, err := h.uc.History(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewPredictionHistory(items))
}

func (h *CareerHandler) Detail(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req careerDetailRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	sug, err := h.uc.Detail(c.Context(), userID, req.Career)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewSuggestionResponse(sug))
}

// mapRecommendationError keeps the original propagation policy: invalid
// input is a 400, everything else in the recommendation path (upstream
// failure, extraction failure, persistence) is a 500 carrying the fault's
// message.
func mapRecommendationError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}
	if errors.Is(err, usecase.ErrExtractionFailed) {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to parse JSON from completion response.", err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), err)
}
