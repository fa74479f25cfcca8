package service

import (
	"context"
	"sync"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/langfuse"
	"github.com/blaisecz/sleep-journal/internal/llm"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultRecommendationTimeout bounds a single generator call.
const DefaultRecommendationTimeout = 30 * time.Second

// RecommendationService produces sleep advice from the most recent records.
// Each user has at most one generation in flight.
type RecommendationService interface {
	// Generate runs one idle -> generating -> succeeded|failed cycle.
	// Generator failures are not errors: they end in the failed state with
	// a fixed user-facing message.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error)
	// Latest returns the last known state, idle when none.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error)
	// Feedback rates the user's latest recommendation.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.RecommendationFeedbackRequest) error
}

// RecommendationConfig tunes the recommendation service.
type RecommendationConfig struct {
	Timeout time.Duration
	Model   string
}

type recommendationService struct {
	records   repository.SleepRecordRepository
	users     repository.UserRepository
	prompts   *llm.PromptBuilder
	generator llm.TextGenerator
	langfuse  langfuse.Client
	logger    *zap.Logger
	cfg       RecommendationConfig
	now       func() time.Time

	mu     sync.Mutex
	states map[uuid.UUID]domain.RecommendationState
}

func NewRecommendationService(
	records repository.SleepRecordRepository,
	users repository.UserRepository,
	prompts *llm.PromptBuilder,
	generator llm.TextGenerator,
	langfuseClient langfuse.Client,
	logger *zap.Logger,
	cfg RecommendationConfig,
) RecommendationService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRecommendationTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recommendationService{
		records:   records,
		users:     users,
		prompts:   prompts,
		generator: generator,
		langfuse:  langfuseClient,
		logger:    logger.Named("recommendation"),
		cfg:       cfg,
		now:       time.Now,
		states:    make(map[uuid.UUID]domain.RecommendationState),
	}
}

func (s *recommendationService) Generate(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	tracer := otel.Tracer("sleep-journal-api/recommendation")
	ctx, span := tracer.Start(ctx, "RecommendationService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.records.ListRecent(ctx, userID, llm.PromptWindow)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNotEnoughData
	}

	if !s.begin(userID) {
		return nil, domain.ErrRecommendationInProgress
	}
	defer s.release(userID)

	prompt := s.prompts.Build(records, llm.PromptWindow)
	span.SetAttributes(
		attribute.Int("records.used", len(records)),
		attribute.String("langfuse.observation.input", prompt),
	)

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	text, genErr := s.generator.GenerateText(genCtx, prompt)
	cancel()

	state := domain.RecommendationState{
		RecordsUsed: len(records),
		UpdatedAt:   s.now().UTC(),
	}
	var output string
	if genErr != nil {
		s.logger.Error("generation failed",
			zap.String("user_id", userID.String()),
			zap.Int("records_used", len(records)),
			zap.Error(genErr),
		)
		span.RecordError(genErr)
		span.SetStatus(codes.Error, "generation failed")

		state.Status = domain.RecommendationFailed
		state.Message = domain.MsgRecommendationUnavailable
		output = genErr.Error()
	} else {
		state.Status = domain.RecommendationSucceeded
		state.Recommendation = text
		output = text
		span.SetAttributes(attribute.String("langfuse.observation.output", text))
	}

	state.TraceID = s.trace(ctx, userID, prompt, output, state)
	s.finish(userID, state)

	return &state, nil
}

func (s *recommendationService) Latest(ctx context.Context, userID uuid.UUID) (*domain.RecommendationState, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	state, ok := s.states[userID]
	s.mu.Unlock()

	if !ok {
		state = domain.RecommendationState{Status: domain.RecommendationIdle}
	}
	return &state, nil
}

func (s *recommendationService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.RecommendationFeedbackRequest) error {
	if !s.langfuse.IsEnabled() {
		s.logger.Debug("feedback dropped, tracing disabled", zap.String("user_id", userID.String()))
		return nil
	}

	s.mu.Lock()
	state, ok := s.states[userID]
	s.mu.Unlock()

	if !ok || state.TraceID == "" || state.TraceID != req.TraceID {
		return domain.ErrNotFound
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}

// begin moves userID into the generating state unless a generation is
// already running for it.
func (s *recommendationService) begin(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.states[userID]
	if current.Status == domain.RecommendationGenerating {
		return false
	}

	current.Status = domain.RecommendationGenerating
	current.UpdatedAt = s.now().UTC()
	s.states[userID] = current
	return true
}

func (s *recommendationService) finish(userID uuid.UUID, state domain.RecommendationState) {
	s.mu.Lock()
	s.states[userID] = state
	s.mu.Unlock()
}

// release fails a generation that never reached finish, so a panicking
// generator cannot leave the user stuck in generating.
func (s *recommendationService) release(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.states[userID]; current.Status == domain.RecommendationGenerating {
		current.Status = domain.RecommendationFailed
		current.Message = domain.MsgRecommendationUnavailable
		current.UpdatedAt = s.now().UTC()
		s.states[userID] = current
	}
}

// trace records the exchange in Langfuse, reusing the OpenTelemetry trace ID
// when one is active so both views line up.
func (s *recommendationService) trace(ctx context.Context, userID uuid.UUID, prompt, output string, state domain.RecommendationState) string {
	if !s.langfuse.IsEnabled() {
		return ""
	}

	var traceID string
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		traceID = sc.TraceID().String()
	}

	id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: userID.String(),
		Name:   "sleep-recommendation",
		Input:  prompt,
		Output: output,
		Tags:   []string{"sleep-journal", "recommendation"},
		Metadata: map[string]any{
			"model":        s.cfg.Model,
			"status":       string(state.Status),
			"records_used": state.RecordsUsed,
		},
	})
	if err != nil {
		s.logger.Warn("langfuse trace failed", zap.Error(err))
		return ""
	}
	return id
}
