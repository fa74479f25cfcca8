package service

import (
	"context"
	"strings"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/google/uuid"
)

// MaxListLimit bounds history listings and the statistics window.
const MaxListLimit = 30

type SleepRecordService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error)
}

type sleepRecordService struct {
	records repository.SleepRecordRepository
	users   repository.UserRepository
}

func NewSleepRecordService(records repository.SleepRecordRepository, users repository.UserRepository) SleepRecordService {
	return &sleepRecordService{records: records, users: users}
}

func (s *sleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if !req.WakeTime.After(req.SleepTime) {
		return nil, domain.ErrInvalidInput
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	quality := domain.DefaultSleepQuality
	if req.SleepQuality != nil {
		quality = *req.SleepQuality
	}

	var notes *string
	if req.Notes != nil {
		if trimmed := strings.TrimSpace(*req.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	record := &domain.SleepRecord{
		ID:           uuid.New(),
		UserID:       userID,
		SleepTime:    req.SleepTime.UTC(),
		WakeTime:     req.WakeTime.UTC(),
		SleepQuality: quality,
		Notes:        notes,
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecent returns the newest records first. limit is clamped to
// [1, MaxListLimit]; zero means MaxListLimit.
func (s *sleepRecordService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.records.ListRecent(ctx, userID, limit)
}

func (s *sleepRecordService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
