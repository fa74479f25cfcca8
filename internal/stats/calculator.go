// Package stats turns sleep records into display values: durations, averages
// and the chart series. Every function is pure and independent of the clock.
package stats

import (
	"math"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
)

const (
	// ChartWindow is the number of records shown on the chart.
	ChartWindow = 7

	// ChartLabelLayout formats chart labels as day/month.
	ChartLabelLayout = "02/01"
)

// Duration returns the time between sleepStart and wakeEnd as whole hours plus
// the remaining minutes. Both parts are truncated toward zero, so a wake time
// before the sleep time yields negative values rather than an error.
func Duration(sleepStart, wakeEnd time.Time) domain.DurationResult {
	elapsed := wakeEnd.Sub(sleepStart)
	totalMinutes := int(elapsed / time.Minute)

	return domain.DurationResult{
		Hours:   int(elapsed / time.Hour),
		Minutes: totalMinutes % 60,
	}
}

// RecordDuration is Duration applied to a record's own timestamps.
func RecordDuration(record domain.SleepRecord) domain.DurationResult {
	return Duration(record.SleepTime, record.WakeTime)
}

// AverageDuration averages the record durations in minutes. An empty slice
// yields 0h 0m. Minutes are rounded half up and may reach 60.
func AverageDuration(records []domain.SleepRecord) domain.DurationResult {
	if len(records) == 0 {
		return domain.DurationResult{}
	}

	totalMinutes := 0
	for _, record := range records {
		d := RecordDuration(record)
		totalMinutes += d.Hours*60 + d.Minutes
	}

	averageMinutes := float64(totalMinutes) / float64(len(records))

	return domain.DurationResult{
		Hours:   int(math.Floor(averageMinutes / 60)),
		Minutes: int(roundHalfUp(math.Mod(averageMinutes, 60))),
	}
}

// AverageQuality returns the mean quality score rounded half up to one
// decimal place, or 0 for an empty slice.
func AverageQuality(records []domain.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	total := 0
	for _, record := range records {
		total += record.SleepQuality
	}

	mean := float64(total) / float64(len(records))
	return roundHalfUp(mean*10) / 10
}

// ChartSeries returns up to windowSize chart points in chronological order.
// records must be sorted newest first, as the store returns them; the input
// slice is not modified. A non-positive windowSize means ChartWindow. Labels
// come from the creation time rendered in loc (UTC when nil).
func ChartSeries(records []domain.SleepRecord, windowSize int, loc *time.Location) []domain.ChartPoint {
	if windowSize <= 0 {
		windowSize = ChartWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	if len(records) > windowSize {
		records = records[:windowSize]
	}

	points := make([]domain.ChartPoint, len(records))
	for i, record := range records {
		d := RecordDuration(record)
		// newest first in, oldest first out
		points[len(records)-1-i] = domain.ChartPoint{
			Date:     record.CreatedAt.In(loc).Format(ChartLabelLayout),
			Duration: float64(d.Hours) + float64(d.Minutes)/60,
			Quality:  record.SleepQuality,
		}
	}

	return points
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
