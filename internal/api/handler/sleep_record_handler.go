package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/internal/stats"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"go.uber.org/zap"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
	logger  *zap.Logger
}

func NewSleepRecordHandler(service service.SleepRecordService, logger *zap.Logger) *SleepRecordHandler {
	return &SleepRecordHandler{service: service, logger: logger}
}

// Create handles POST /v1/users/{userId}/sleep-records
// @Summary Record sleep
// @Description Save a sleep session. Quality defaults to 5 when omitted.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepRecordRequest true "Sleep session data"
// @Success 201 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	var req domain.CreateSleepRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, record.ToResponse(stats.RecordDuration(*record)))
}

// List handles GET /v1/users/{userId}/sleep-records
// @Summary List recent sleep records
// @Description Most recent records, newest first.
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Number of records (1-30)" default(30) minimum(1) maximum(30)
// @Success 200 {object} domain.SleepRecordListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem "Not your journal"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	limit := service.MaxListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > service.MaxListLimit {
			problem.BadRequest("limit must be between 1 and 30").Write(w)
			return
		}
		limit = parsed
	}

	records, err := h.service.ListRecent(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	response := domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, 0, len(records)),
	}
	for i := range records {
		response.Data = append(response.Data, records[i].ToResponse(stats.RecordDuration(records[i])))
	}

	writeJSON(w, http.StatusOK, response)
}
