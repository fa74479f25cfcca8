package domain

import "time"

// RecommendationStatus is the lifecycle state of a user's recommendation request.
// @Description idle, generating, succeeded or failed.
type RecommendationStatus string

const (
	RecommendationIdle       RecommendationStatus = "idle"
	RecommendationGenerating RecommendationStatus = "generating"
	RecommendationSucceeded  RecommendationStatus = "succeeded"
	RecommendationFailed     RecommendationStatus = "failed"
)

// RecommendationState is the latest recommendation outcome for a user.
// @Description Current recommendation state.
type RecommendationState struct {
	Status RecommendationStatus `json:"status" example:"succeeded"`
	// Generated advice (only when succeeded)
	Recommendation string `json:"recommendation,omitempty"`
	// User-facing failure message (only when failed)
	Message string `json:"message,omitempty"`
	// Number of records sent to the model
	RecordsUsed int `json:"records_used" example:"7"`
	// Langfuse trace ID for feedback (only when tracing is enabled)
	TraceID   string    `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// RecommendationFeedbackRequest rates a previously generated recommendation.
// @Description Request body for submitting feedback on a recommendation.
type RecommendationFeedbackRequest struct {
	// Trace ID from the recommendation response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"Gợi ý rất hữu ích"`
}
