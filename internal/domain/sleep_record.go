package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSleepQuality is used when a record is submitted without a quality score.
const DefaultSleepQuality = 5

type SleepRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_records_user_created" json:"user_id"`
	SleepTime    time.Time `gorm:"not null" json:"sleep_time"`
	WakeTime     time.Time `gorm:"not null" json:"wake_time"`
	SleepQuality int       `gorm:"type:smallint;not null;default:5" json:"sleep_quality"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_sleep_records_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for recording a sleep session.
// @Description Request payload for recording a sleep session.
type CreateSleepRecordRequest struct {
	// Time the user went to sleep (RFC3339)
	SleepTime time.Time `json:"sleep_time" validate:"required" example:"2024-01-15T22:30:00+07:00"`
	// Time the user woke up (RFC3339, must be after sleep_time)
	WakeTime time.Time `json:"wake_time" validate:"required,gtfield=SleepTime" example:"2024-01-16T06:30:00+07:00"`
	// Subjective quality from 1 (poor) to 10 (excellent), defaults to 5
	SleepQuality *int `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Optional free-text note
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000" example:"Uống cà phê muộn"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description Sleep record with its computed duration.
type SleepRecordResponse struct {
	ID           uuid.UUID      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID       uuid.UUID      `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	SleepTime    time.Time      `json:"sleep_time" example:"2024-01-15T15:30:00Z"`
	WakeTime     time.Time      `json:"wake_time" example:"2024-01-15T23:30:00Z"`
	SleepQuality int            `json:"sleep_quality" example:"7"`
	Notes        *string        `json:"notes"`
	Duration     DurationResult `json:"duration"`
	CreatedAt    time.Time      `json:"created_at" example:"2024-01-16T00:05:00Z"`
}

// SleepRecordListResponse wraps a bounded list of records, newest first.
// @Description Most recent sleep records, newest first.
type SleepRecordListResponse struct {
	Data []SleepRecordResponse `json:"data"`
}

// ToResponse maps the record to its API shape. The duration is computed by the caller.
func (s *SleepRecord) ToResponse(duration DurationResult) SleepRecordResponse {
	return SleepRecordResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		SleepTime:    s.SleepTime,
		WakeTime:     s.WakeTime,
		SleepQuality: s.SleepQuality,
		Notes:        s.Notes,
		Duration:     duration,
		CreatedAt:    s.CreatedAt,
	}
}
