package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/sleep-journal/internal/api/middleware"
	"github.com/blaisecz/sleep-journal/internal/api/validation"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// authorizedUser resolves the {userId} path parameter and checks it against
// the authenticated user. It writes the problem response itself and returns
// false when the request must stop.
func authorizedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return uuid.Nil, false
	}
	if callerID != userID {
		problem.Forbidden("You can only access your own sleep journal").Write(w)
		return uuid.Nil, false
	}

	return userID, true
}

// writeServiceError maps a domain sentinel to its problem response.
// Anything unrecognized is logged and reported as a generic failure.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Request contains invalid values").Write(w)
	case errors.Is(err, domain.ErrInvalidCredentials):
		problem.Unauthorized(domain.MsgInvalidCredentials).Write(w)
	case errors.Is(err, domain.ErrUnauthorized):
		problem.Unauthorized("Authentication required").Write(w)
	case errors.Is(err, domain.ErrForbidden):
		problem.Forbidden("You can only access your own sleep journal").Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Resource not found").Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict(domain.MsgUsernameTaken).Write(w)
	case errors.Is(err, domain.ErrNotEnoughData):
		problem.NotEnoughData(domain.MsgNotEnoughData).Write(w)
	case errors.Is(err, domain.ErrRecommendationInProgress):
		problem.Conflict(domain.MsgRecommendationInProgress).Write(w)
	default:
		logger.Error("request failed", zap.Error(err))
		problem.InternalError(domain.MsgSomethingWentWrong).Write(w)
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}
