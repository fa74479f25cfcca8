package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/sleep-journal/internal/api/handler"
	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{UserID: uuid.New(), Username: req.Username}, nil
}

func (stubAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	return nil, domain.ErrInvalidCredentials
}

func (stubAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return &domain.User{ID: userID, Username: "minh"}, nil
}

type stubStatsService struct{}

func (stubStatsService) Compute(ctx context.Context, userID uuid.UUID) (*domain.AggregateStats, error) {
	return &domain.AggregateStats{Chart: []domain.ChartPoint{}, RecentRecords: []domain.SleepRecordResponse{}}, nil
}

type stubRecommendationService struct{}

func (stubRecommendationService) Generate(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	return nil, domain.ErrNotEnoughData
}

func (stubRecommendationService) Latest(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	return &domain.RecommendationState{Status: domain.RecommendationIdle}, nil
}

func (stubRecommendationService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.RecommendationFeedbackRequest) error {
	return nil
}

type stubSleepRecordService struct{}

func (stubSleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	return &domain.SleepRecord{ID: uuid.New(), UserID: userID, SleepTime: req.SleepTime, WakeTime: req.WakeTime, SleepQuality: domain.DefaultSleepQuality}, nil
}

func (stubSleepRecordService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	return []domain.SleepRecord{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, auth.TokenManager) {
	t.Helper()
	logger := zap.NewNop()
	tokens := auth.NewJWT("router-test-secret", time.Hour)
	rt := NewRouter(
		handler.NewAuthHandler(stubAuthService{}, logger),
		handler.NewSleepRecordHandler(stubSleepRecordService{}, logger),
		handler.NewStatsHandler(stubStatsService{}, logger),
		handler.NewRecommendationHandler(stubRecommendationService{}, logger),
		tokens,
		logger,
	)
	return rt.Setup(), tokens
}

func TestRouter_Routes(t *testing.T) {
	router, tokens := newTestRouter(t)
	userID := uuid.New()
	token, _, err := tokens.Issue(userID)
	require.NoError(t, err)

	base := "/v1/users/" + userID.String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"register is public", http.MethodPost, "/v1/auth/register", `{"username":"minh","password":"ngu-ngon-8h"}`, "", http.StatusCreated},
		{"login is public", http.MethodPost, "/v1/auth/login", `{"username":"minh","password":"wrong-pass"}`, "", http.StatusUnauthorized},
		{"session requires token", http.MethodGet, "/v1/auth/session", "", "", http.StatusUnauthorized},
		{"session with token", http.MethodGet, "/v1/auth/session", "", token, http.StatusOK},
		{"records require token", http.MethodGet, base + "/sleep-records", "", "", http.StatusUnauthorized},
		{"list records", http.MethodGet, base + "/sleep-records", "", token, http.StatusOK},
		{"create record", http.MethodPost, base + "/sleep-records", `{"sleep_time":"2024-01-01T22:00:00Z","wake_time":"2024-01-02T06:00:00Z"}`, token, http.StatusCreated},
		{"stats", http.MethodGet, base + "/sleep-stats", "", token, http.StatusOK},
		{"other user's stats", http.MethodGet, "/v1/users/" + uuid.New().String() + "/sleep-stats", "", token, http.StatusForbidden},
		{"generate without records", http.MethodPost, base + "/recommendations", "", token, http.StatusUnprocessableEntity},
		{"latest", http.MethodGet, base + "/recommendations/latest", "", token, http.StatusOK},
		{"feedback", http.MethodPost, base + "/recommendations/feedback", `{"trace_id":"t-1","score":5}`, token, http.StatusNoContent},
		{"unknown route", http.MethodGet, "/v1/unknown", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
