package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-journal/internal/service"
	"go.uber.org/zap"
)

type StatsHandler struct {
	service service.StatsService
	logger  *zap.Logger
}

func NewStatsHandler(service service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

// Get handles GET /v1/users/{userId}/sleep-stats
// @Summary Sleep statistics
// @Description Average duration and quality over the 30 most recent records, a 7-entry chart series (oldest first) and the 5 latest records.
// @Tags sleep-stats
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.AggregateStats
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-stats [get]
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	result, err := h.service.Compute(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
