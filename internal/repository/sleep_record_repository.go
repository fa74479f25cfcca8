package repository

import (
	"context"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	// ListRecent returns at most limit records of the user, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error)
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	return mapWriteError(r.db.WithContext(ctx).Omit("User").Create(record).Error)
}

func (r *sleepRecordRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	records := []domain.SleepRecord{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
