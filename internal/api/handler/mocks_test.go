package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/sleep-journal/internal/api/middleware"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MockAuthService struct {
	registerFunc    func(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	loginFunc       func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	currentUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &domain.AuthResponse{UserID: uuid.New(), Username: req.Username, Token: "token"}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.currentUserFunc != nil {
		return m.currentUserFunc(ctx, userID)
	}
	return &domain.User{ID: userID, Username: "minh"}, nil
}

type MockSleepRecordService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error)
}

func (m *MockSleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	quality := domain.DefaultSleepQuality
	if req.SleepQuality != nil {
		quality = *req.SleepQuality
	}
	return &domain.SleepRecord{
		ID:           uuid.New(),
		UserID:       userID,
		SleepTime:    req.SleepTime.UTC(),
		WakeTime:     req.WakeTime.UTC(),
		SleepQuality: quality,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}, nil
}

func (m *MockSleepRecordService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, limit)
	}
	return []domain.SleepRecord{}, nil
}

type MockStatsService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID) (*domain.AggregateStats, error)
}

func (m *MockStatsService) Compute(ctx context.Context, userID uuid.UUID) (*domain.AggregateStats, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID)
	}
	return &domain.AggregateStats{Chart: []domain.ChartPoint{}, RecentRecords: []domain.SleepRecordResponse{}}, nil
}

type MockRecommendationService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error)
	latestFunc   func(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.RecommendationFeedbackRequest) error
}

func (m *MockRecommendationService) Generate(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.RecommendationState{Status: domain.RecommendationSucceeded, Recommendation: "Ngủ trước 23:00", RecordsUsed: 7}, nil
}

func (m *MockRecommendationService) Latest(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return &domain.RecommendationState{Status: domain.RecommendationIdle}, nil
}

func (m *MockRecommendationService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.RecommendationFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// withUser attaches the {userId} route parameter and the authenticated caller.
func withUser(req *http.Request, pathUserID string, caller uuid.UUID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", pathUserID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if caller != uuid.Nil {
		ctx = middleware.WithUserID(ctx, caller)
	}
	return req.WithContext(ctx)
}
