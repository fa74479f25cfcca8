package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*domain.User
	byName map[string]*domain.User
	err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uuid.UUID]*domain.User),
		byName: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) add(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	m.byName[user.Username] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, taken := m.byName[user.Username]; taken {
		return domain.ErrConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.byName[user.Username] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byName[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	mu         sync.Mutex
	records    []domain.SleepRecord
	lastLimit  int
	err        error
	createdSeq int
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.createdSeq++
	record.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.createdSeq) * time.Minute)
	m.records = append(m.records, *record)
	return nil
}

func (m *MockSleepRecordRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}

	result := []domain.SleepRecord{}
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// mockHasher stores passwords with a visible prefix.
type mockHasher struct {
	err error
}

func (h *mockHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h *mockHasher) Verify(password, encoded string) (bool, error) {
	if !strings.HasPrefix(encoded, "hashed:") {
		return false, h.err
	}
	return encoded == "hashed:"+password, nil
}

// mockTokens issues tokens of the form "token-<user id>".
type mockTokens struct{}

func (mockTokens) Issue(userID uuid.UUID) (string, time.Time, error) {
	return "token-" + userID.String(), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

func (mockTokens) Parse(token string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(token, "token-"))
}

// mockGenerator is a mock implementation of llm.TextGenerator
type mockGenerator struct {
	fn      func(ctx context.Context, prompt string) (string, error)
	calls   int32
	prompts chan string
}

func (g *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&g.calls, 1)
	if g.prompts != nil {
		g.prompts <- prompt
	}
	return g.fn(ctx, prompt)
}

func (g *mockGenerator) Calls() int {
	return int(atomic.LoadInt32(&g.calls))
}

// mockLangfuseClient records traces and scores in memory.
type mockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return "", nil
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	m.traces = append(m.traces, in)
	return in.ID, nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
