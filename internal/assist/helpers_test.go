package assist

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Vovarama1992/assistbot/internal/ai"
	"github.com/Vovarama1992/assistbot/internal/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "faq.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countFAQs(t *testing.T, db *database.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM faqs").Scan(&n); err != nil {
		t.Fatalf("count faqs: %v", err)
	}
	return n
}

// mockAI implements ai.AI for testing.
type mockAI struct {
	mu    sync.Mutex
	calls []string

	CompleteFunc func(ctx context.Context, systemPrompt, userMessage string) ai.Result
}

func (m *mockAI) Complete(ctx context.Context, systemPrompt, userMessage string) ai.Result {
	m.mu.Lock()
	m.calls = append(m.calls, systemPrompt+"|"+userMessage)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userMessage)
	}
	return ai.Success("model reply")
}

func (m *mockAI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

type notification struct {
	UserID string
	Text   string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
	ch   chan notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{ch: make(chan notification, 16)}
}

func (n *recordingNotifier) Notify(_ context.Context, userID, text string) error {
	n.mu.Lock()
	n.sent = append(n.sent, notification{UserID: userID, Text: text})
	n.mu.Unlock()

	n.ch <- notification{UserID: userID, Text: text}
	return nil
}

func (n *recordingNotifier) Sent() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.sent...)
}

type testEnv struct {
	db        *database.DB
	repo      FAQRepo
	registry  *Registry
	followUps *FollowUps
	notifier  *recordingNotifier
	ai        *mockAI
	svc       Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	notifier := newRecordingNotifier()
	followUps := NewFollowUps(time.Hour, notifier)
	t.Cleanup(followUps.Stop)

	env := &testEnv{
		db:        db,
		repo:      NewFAQRepo(db),
		registry:  NewRegistry(),
		followUps: followUps,
		notifier:  notifier,
		ai:        &mockAI{},
	}
	env.svc = NewService(env.repo, env.registry, env.followUps, env.ai)
	return env
}
