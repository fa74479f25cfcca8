package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/blaisecz/sleep-journal/internal/stats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// StatsWindow is the number of most recent records statistics cover.
	StatsWindow = MaxListLimit
	// RecentRecordsShown is the number of records echoed in the statistics.
	RecentRecordsShown = 5
)

// StatsService aggregates a user's recent sleep records.
type StatsService interface {
	Compute(ctx context.Context, userID uuid.UUID) (*domain.AggregateStats, error)
}

type statsService struct {
	records repository.SleepRecordRepository
	users   repository.UserRepository
	loc     *time.Location
}

// NewStatsService renders chart labels in loc.
func NewStatsService(records repository.SleepRecordRepository, users repository.UserRepository, loc *time.Location) StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &statsService{records: records, users: users, loc: loc}
}

func (s *statsService) Compute(ctx context.Context, userID uuid.UUID) (*domain.AggregateStats, error) {
	tracer := otel.Tracer("sleep-journal-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.records", StatsWindow),
		),
	)
	defer span.End()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.records.ListRecent(ctx, userID, StatsWindow)
	if err != nil {
		return nil, err
	}

	recent := records
	if len(recent) > RecentRecordsShown {
		recent = recent[:RecentRecordsShown]
	}
	recentResponses := make([]domain.SleepRecordResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, recent[i].ToResponse(stats.RecordDuration(recent[i])))
	}

	result := &domain.AggregateStats{
		AverageDuration: stats.AverageDuration(records),
		AverageQuality:  stats.AverageQuality(records),
		TotalRecords:    len(records),
		Chart:           stats.ChartSeries(records, stats.ChartWindow, s.loc),
		RecentRecords:   recentResponses,
	}

	span.SetAttributes(attribute.Int("records.count", len(records)))
	if outputJSON, err := json.Marshal(map[string]any{
		"average_duration": result.AverageDuration,
		"average_quality":  result.AverageQuality,
		"total_records":    result.TotalRecords,
	}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}
