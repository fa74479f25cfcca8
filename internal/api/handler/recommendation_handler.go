package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	service service.RecommendationService
	logger  *zap.Logger
}

func NewRecommendationHandler(service service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{service: service, logger: logger}
}

// Generate handles POST /v1/users/{userId}/recommendations
// @Summary Generate sleep advice
// @Description Send the 7 most recent records to the language model and return its advice. Only one generation per user runs at a time.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.RecommendationState "Advice generated"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 409 {object} problem.Problem "Generation already in progress"
// @Failure 422 {object} problem.Problem "No sleep records yet"
// @Failure 502 {object} problem.Problem "Language model unavailable"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations [post]
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	state, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if state.Status == domain.RecommendationFailed {
		problem.BadGateway(state.Message).Write(w)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Latest handles GET /v1/users/{userId}/recommendations/latest
// @Summary Latest sleep advice
// @Description Return the user's last recommendation state, idle when nothing was generated yet.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.RecommendationState
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations/latest [get]
func (h *RecommendationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	state, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Feedback handles POST /v1/users/{userId}/recommendations/feedback
// @Summary Rate sleep advice
// @Description Submit a 1-5 rating and optional comment for the latest recommendation.
// @Tags recommendations
// @Accept json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.RecommendationFeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 404 {object} problem.Problem "Unknown trace"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations/feedback [post]
func (h *RecommendationHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	var req domain.RecommendationFeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
