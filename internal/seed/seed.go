package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	seededDays = 14

	DemoUsername = "demo"
	DemoPassword = "demo1234"
)

// DemoUserID is fixed so repeated runs find the same account.
var DemoUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

var demoNotes = []string{
	"Uống cà phê sau 16h",
	"Tập thể dục buổi tối",
	"Xem điện thoại trước khi ngủ",
	"Ngủ rất ngon",
}

// Run creates the demo account and two weeks of sleep records. Safe to call
// multiple times: records are only added for a demo user that has none.
func Run(ctx context.Context, db *gorm.DB, hasher auth.PasswordHasher, logger *zap.Logger) error {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := domain.User{ID: DemoUserID, Username: DemoUsername, PasswordHash: hash}
	if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	var count int64
	if err := db.WithContext(ctx).Model(&domain.SleepRecord{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count demo records: %w", err)
	}
	if count > 0 {
		logger.Info("seed skipped, demo records present", zap.Int64("records", count))
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	records := demoRecords(user.ID, time.Now().UTC(), rng)
	if len(records) == 0 {
		return errors.New("no demo records generated")
	}
	if err := db.WithContext(ctx).Omit("User").Create(&records).Error; err != nil {
		return fmt.Errorf("failed to create demo records: %w", err)
	}

	logger.Info("seed completed",
		zap.String("username", DemoUsername),
		zap.Int("records", len(records)),
	)
	return nil
}

// demoRecords builds one night per day for the last seededDays days, newest first.
// CreatedAt is set to the morning after so charts spread across days.
func demoRecords(userID uuid.UUID, now time.Time, rng *rand.Rand) []domain.SleepRecord {
	records := make([]domain.SleepRecord, 0, seededDays)
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i-1)
		// 21:30-00:29 UTC+7 bedtimes, stored in UTC
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 14, 30, 0, 0, time.UTC).
			Add(time.Duration(rng.Intn(180)) * time.Minute)
		wake := bedtime.Add(5*time.Hour + time.Duration(rng.Intn(240))*time.Minute)

		record := domain.SleepRecord{
			ID:           uuid.New(),
			UserID:       userID,
			SleepTime:    bedtime,
			WakeTime:     wake,
			SleepQuality: 3 + rng.Intn(8),
			CreatedAt:    wake.Add(5 * time.Minute),
		}
		if rng.Intn(3) == 0 {
			note := demoNotes[rng.Intn(len(demoNotes))]
			record.Notes = &note
		}
		records = append(records, record)
	}
	return records
}
