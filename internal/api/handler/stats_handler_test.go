package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestStatsHandler_Get(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		mockService    *MockStatsService
		wantStatusCode int
	}{
		{
			name: "statistics computed",
			mockService: &MockStatsService{
				computeFunc: func(ctx context.Context, id uuid.UUID) (*domain.AggregateStats, error) {
					return &domain.AggregateStats{
						AverageDuration: domain.DurationResult{Hours: 7, Minutes: 30},
						AverageQuality:  6.9,
						TotalRecords:    7,
						Chart:           []domain.ChartPoint{{Date: "10/03", Duration: 7.5, Quality: 7}},
						RecentRecords:   []domain.SleepRecordResponse{},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "user not found",
			mockService: &MockStatsService{
				computeFunc: func(ctx context.Context, id uuid.UUID) (*domain.AggregateStats, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			mockService: &MockStatsService{
				computeFunc: func(ctx context.Context, id uuid.UUID) (*domain.AggregateStats, error) {
					return nil, errors.New("connection reset")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewStatsHandler(tt.mockService, zap.NewNop())

			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/sleep-stats", nil), userID.String(), userID)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Get() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestStatsHandler_Get_Body(t *testing.T) {
	userID := uuid.New()
	handler := NewStatsHandler(&MockStatsService{
		computeFunc: func(ctx context.Context, id uuid.UUID) (*domain.AggregateStats, error) {
			return &domain.AggregateStats{
				AverageDuration: domain.DurationResult{Hours: 7, Minutes: 60},
				AverageQuality:  6.9,
				TotalRecords:    2,
				Chart:           []domain.ChartPoint{},
				RecentRecords:   []domain.SleepRecordResponse{},
			}, nil
		},
	}, zap.NewNop())

	req := withUser(httptest.NewRequest(http.MethodGet, "/", nil), userID.String(), userID)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	var resp domain.AggregateStats
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.AverageDuration.Minutes != 60 {
		t.Errorf("average minutes = %d, want 60", resp.AverageDuration.Minutes)
	}
	if resp.AverageQuality != 6.9 {
		t.Errorf("average quality = %v, want 6.9", resp.AverageQuality)
	}
}
