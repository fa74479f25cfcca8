package domain

// DurationResult is an elapsed time split into whole hours and remaining minutes.
// @Description Sleep duration as hours and minutes.
type DurationResult struct {
	Hours   int `json:"hours" example:"7"`
	Minutes int `json:"minutes" example:"45"`
}

// ChartPoint is a single bar of the sleep chart.
// @Description One chart entry, labelled by the day the record was created.
type ChartPoint struct {
	// Day the record was created (dd/MM)
	Date string `json:"date" example:"15/01"`
	// Duration in fractional hours
	Duration float64 `json:"duration" example:"7.5"`
	// Quality score (1-10)
	Quality int `json:"quality" example:"7"`
}

// AggregateStats summarizes the most recent sleep records of a user.
// @Description Aggregate sleep statistics over the most recent 30 records.
type AggregateStats struct {
	AverageDuration DurationResult `json:"average_duration"`
	// Mean quality rounded to one decimal
	AverageQuality float64 `json:"average_quality" example:"6.9"`
	// Number of records the statistics were computed from
	TotalRecords int `json:"total_records" example:"30"`
	// Up to 7 entries, oldest first
	Chart []ChartPoint `json:"chart"`
	// Up to 5 most recent records, newest first
	RecentRecords []SleepRecordResponse `json:"recent_records"`
}
