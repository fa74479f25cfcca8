package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRecords(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	records := demoRecords(userID, now, rand.New(rand.NewSource(42)))

	require.Len(t, records, seededDays)
	for i, r := range records {
		assert.Equal(t, userID, r.UserID)
		assert.True(t, r.WakeTime.After(r.SleepTime), "record %d wakes before it sleeps", i)
		assert.GreaterOrEqual(t, r.SleepQuality, 1)
		assert.LessOrEqual(t, r.SleepQuality, 10)
		assert.True(t, r.CreatedAt.Before(now), "record %d created in the future", i)
		if i > 0 {
			assert.True(t, r.CreatedAt.Before(records[i-1].CreatedAt), "records must be newest first")
		}
	}
}

func TestDemoRecords_Deterministic(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	a := demoRecords(userID, now, rand.New(rand.NewSource(7)))
	b := demoRecords(userID, now, rand.New(rand.NewSource(7)))

	for i := range a {
		assert.Equal(t, a[i].SleepTime, b[i].SleepTime)
		assert.Equal(t, a[i].SleepQuality, b[i].SleepQuality)
	}
}
