package handler

import (
	"net/http"

	"github.com/blaisecz/sleep-journal/internal/api/middleware"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"go.uber.org/zap"
)

// @title Sleep Journal API
// @version 1.0
// @description Personal sleep journal: record sleep sessions, review statistics and get AI sleep advice.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type AuthHandler struct {
	service service.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(service service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register handles POST /v1/auth/register
// @Summary Create an account
// @Description Register a new username and password. Returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Registration payload"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 409 {object} problem.Problem "Username already taken"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Login handles POST /v1/auth/login
// @Summary Log in
// @Description Exchange a username and password for a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Login payload"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 401 {object} problem.Problem "Invalid credentials"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Session handles GET /v1/auth/session
// @Summary Current session
// @Description Return the user behind the bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserResponse
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}
