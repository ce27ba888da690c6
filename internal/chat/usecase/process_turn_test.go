package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/chat/repository"
	"ai-negotiator/internal/chat/repository/memory"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/prompt"
	"ai-negotiator/pkg/llmprovider"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// mockCompleter records every request and replays a scripted result.
type mockCompleter struct {
	mu    sync.Mutex
	reqs  []*llmprovider.Request
	text  string
	err   error
	usage llmprovider.Usage
}

func (m *mockCompleter) Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.reqs = append(m.reqs, req)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, Usage: m.usage}, nil
}

func (m *mockCompleter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reqs)
}

// flakyRepo wraps a real repository and injects scripted failures.
type flakyRepo struct {
	repository.SessionRepository
	getErr    error
	updateErr error
	conflicts int
	gets      int
}

func (r *flakyRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	r.gets++
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.SessionRepository.Get(ctx, id)
}

func (r *flakyRepo) Update(ctx context.Context, session *model.Session) error {
	if r.conflicts > 0 {
		r.conflicts--
		return repository.ErrVersionConflict
	}
	if r.updateErr != nil {
		return r.updateErr
	}
	return r.SessionRepository.Update(ctx, session)
}

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.New(0)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	return store
}

func testBuilder(maxUnits int) *prompt.Builder {
	return prompt.NewBuilder(prompt.NegotiationSystemTemplate, prompt.RuneCounter{}, maxUnits)
}

func newTestUseCase(repo repository.SessionRepository, completer chat.Completer, cfg Config) *implUseCase {
	uc := New(mockLogger{}, completer, repo, testBuilder(8000), cfg)
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	var tick time.Duration
	uc.now = func() time.Time {
		tick += time.Second
		return base.Add(tick)
	}
	return uc
}

func TestProcessTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path on a fresh session", func(t *testing.T) {
		store := newStore(t)
		completer := &mockCompleter{text: "Hi there!", usage: llmprovider.Usage{TotalTokens: 42}}
		uc := newTestUseCase(store, completer, Config{})

		out, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "Hello, chatbot!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Hi there!" {
			t.Errorf("Response = %q, want %q", out.Response, "Hi there!")
		}
		if out.SessionID != "abc" {
			t.Errorf("SessionID = %q, want abc", out.SessionID)
		}
		if out.Usage.TotalTokens != 42 {
			t.Errorf("Usage.TotalTokens = %d, want 42", out.Usage.TotalTokens)
		}
		if completer.calls() != 1 {
			t.Errorf("completion calls = %d, want 1", completer.calls())
		}

		sess, err := store.Get(ctx, "abc")
		if err != nil {
			t.Fatalf("session was not persisted: %v", err)
		}
		if len(sess.Turns) != 2 {
			t.Fatalf("persisted %d turns, want 2", len(sess.Turns))
		}
		if sess.Turns[0].Role != model.RoleUser || sess.Turns[0].Content != "Hello, chatbot!" {
			t.Errorf("first turn = %+v, want user/Hello, chatbot!", sess.Turns[0])
		}
		if sess.Turns[1].Role != model.RoleAssistant || sess.Turns[1].Content != "Hi there!" {
			t.Errorf("second turn = %+v, want assistant/Hi there!", sess.Turns[1])
		}
	})

	t.Run("history accumulates across turns", func(t *testing.T) {
		store := newStore(t)
		completer := &mockCompleter{text: "Our opening stands."}
		uc := newTestUseCase(store, completer, Config{})

		for _, msg := range []string{"Can you do $350?", "What about $360?"} {
			if _, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "s1", Message: msg}); err != nil {
				t.Fatalf("ProcessTurn(%q): %v", msg, err)
			}
		}
		sess, _ := store.Get(ctx, "s1")
		if len(sess.Turns) != 4 {
			t.Fatalf("persisted %d turns, want 4", len(sess.Turns))
		}
		// History from the first turn must appear in the second request.
		second := completer.reqs[1]
		if len(second.Messages) != 3 {
			t.Fatalf("second request has %d messages, want 3", len(second.Messages))
		}
		if second.Messages[0].Content != "Can you do $350?" {
			t.Errorf("second request starts with %q", second.Messages[0].Content)
		}
	})

	t.Run("empty message rejected before touching the store", func(t *testing.T) {
		repo := &flakyRepo{SessionRepository: newStore(t)}
		completer := &mockCompleter{text: "ignored"}
		uc := newTestUseCase(repo, completer, Config{})

		for _, msg := range []string{"", "   ", "\n\t"} {
			_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: msg})
			if !errors.Is(err, chat.ErrInvalidInput) {
				t.Errorf("ProcessTurn(%q) error = %v, want ErrInvalidInput", msg, err)
			}
		}
		if repo.gets != 0 {
			t.Errorf("store was read %d times, want 0", repo.gets)
		}
		if completer.calls() != 0 {
			t.Errorf("completion calls = %d, want 0", completer.calls())
		}
	})

	t.Run("missing session id rejected", func(t *testing.T) {
		uc := newTestUseCase(newStore(t), &mockCompleter{text: "x"}, Config{})
		if _, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{Message: "hi"}); !errors.Is(err, chat.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("generation failure keeps the user turn", func(t *testing.T) {
		store := newStore(t)
		completer := &mockCompleter{err: llmprovider.ErrUnavailable}
		uc := newTestUseCase(store, completer, Config{})

		_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hello?"})
		if !errors.Is(err, chat.ErrGenerationUnavailable) {
			t.Fatalf("error = %v, want ErrGenerationUnavailable", err)
		}
		sess, gerr := store.Get(ctx, "abc")
		if gerr != nil {
			t.Fatalf("user turn was not persisted: %v", gerr)
		}
		if len(sess.Turns) != 1 || sess.Turns[0].Role != model.RoleUser {
			t.Fatalf("persisted turns = %+v, want single user turn", sess.Turns)
		}
	})

	t.Run("generation error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"rejected", llmprovider.ErrRejected, chat.ErrGenerationRejected},
			{"empty", llmprovider.ErrEmptyCompletion, chat.ErrGenerationEmpty},
			{"unavailable", llmprovider.ErrUnavailable, chat.ErrGenerationUnavailable},
			{"no providers", llmprovider.ErrNoProvidersConfigured, chat.ErrGenerationUnavailable},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := newTestUseCase(newStore(t), &mockCompleter{err: tc.err}, Config{})
				_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
				if !errors.Is(err, tc.want) {
					t.Errorf("error = %v, want %v", err, tc.want)
				}
			})
		}
	})

	t.Run("store read failure fails fast by default", func(t *testing.T) {
		repo := &flakyRepo{SessionRepository: newStore(t), getErr: repository.ErrUnavailable}
		completer := &mockCompleter{text: "x"}
		uc := newTestUseCase(repo, completer, Config{})

		_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
		if !errors.Is(err, chat.ErrSessionUnavailable) {
			t.Fatalf("error = %v, want ErrSessionUnavailable", err)
		}
		if completer.calls() != 0 {
			t.Errorf("completion calls = %d, want 0", completer.calls())
		}
	})

	t.Run("store read failure tolerated when configured", func(t *testing.T) {
		repo := &flakyRepo{
			SessionRepository: newStore(t),
			getErr:            repository.ErrUnavailable,
		}
		completer := &mockCompleter{text: "still talking"}
		uc := newTestUseCase(repo, completer, Config{CreateSessionOnStoreFailure: true})

		out, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "still talking" {
			t.Errorf("Response = %q", out.Response)
		}
	})

	t.Run("write failure still delivers the reply", func(t *testing.T) {
		repo := &flakyRepo{SessionRepository: newStore(t), updateErr: repository.ErrUnavailable}
		completer := &mockCompleter{text: "here you go"}
		uc := newTestUseCase(repo, completer, Config{})

		// Seed the session so the write path goes through Update.
		seed := &model.Session{ID: "abc"}
		seed.Append(model.RoleUser, "earlier", time.Now())
		if err := repo.SessionRepository.Create(ctx, seed); err != nil {
			t.Fatalf("seed: %v", err)
		}

		out, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.PersistenceFailed {
			t.Error("PersistenceFailed = false, want true")
		}
		if out.Response != "here you go" {
			t.Errorf("Response = %q", out.Response)
		}
	})

	t.Run("version conflict redoes only the write", func(t *testing.T) {
		store := newStore(t)
		seed := &model.Session{ID: "abc"}
		seed.Append(model.RoleAssistant, "welcome", time.Now())
		if err := store.Create(ctx, seed); err != nil {
			t.Fatalf("seed: %v", err)
		}

		repo := &flakyRepo{SessionRepository: store, conflicts: 2}
		completer := &mockCompleter{text: "fine"}
		uc := newTestUseCase(repo, completer, Config{ConflictRetries: 3})

		out, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PersistenceFailed {
			t.Error("PersistenceFailed = true, want false")
		}
		if completer.calls() != 1 {
			t.Errorf("completion calls = %d, want exactly 1 despite conflicts", completer.calls())
		}
		sess, _ := store.Get(ctx, "abc")
		if len(sess.Turns) != 3 {
			t.Errorf("persisted %d turns, want 3", len(sess.Turns))
		}
	})

	t.Run("persistent conflicts surface as concurrent modification", func(t *testing.T) {
		store := newStore(t)
		seed := &model.Session{ID: "abc"}
		seed.Append(model.RoleAssistant, "welcome", time.Now())
		if err := store.Create(ctx, seed); err != nil {
			t.Fatalf("seed: %v", err)
		}

		repo := &flakyRepo{SessionRepository: store, conflicts: 100}
		uc := newTestUseCase(repo, &mockCompleter{text: "fine"}, Config{ConflictRetries: 2})

		_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hi"})
		if !errors.Is(err, chat.ErrConcurrentModification) {
			t.Fatalf("error = %v, want ErrConcurrentModification", err)
		}
	})

	t.Run("prompt too large keeps the user turn", func(t *testing.T) {
		store := newStore(t)
		completer := &mockCompleter{text: "unreachable"}
		uc := New(mockLogger{}, completer, store, testBuilder(10), Config{})

		_, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "hello there"})
		if !errors.Is(err, chat.ErrPromptTooLarge) {
			t.Fatalf("error = %v, want ErrPromptTooLarge", err)
		}
		if completer.calls() != 0 {
			t.Errorf("completion calls = %d, want 0", completer.calls())
		}
		sess, gerr := store.Get(ctx, "abc")
		if gerr != nil {
			t.Fatalf("user turn was not persisted: %v", gerr)
		}
		if len(sess.Turns) != 1 {
			t.Errorf("persisted %d turns, want 1", len(sess.Turns))
		}
	})

	t.Run("identical state yields identical requests", func(t *testing.T) {
		var reqs []*llmprovider.Request
		for i := 0; i < 2; i++ {
			completer := &mockCompleter{text: "ok"}
			uc := newTestUseCase(newStore(t), completer, Config{})
			if _, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "same-id", Message: "same message"}); err != nil {
				t.Fatalf("ProcessTurn: %v", err)
			}
			reqs = append(reqs, completer.reqs[0])
		}
		if !reflect.DeepEqual(reqs[0], reqs[1]) {
			t.Error("identical session state produced different completion requests")
		}
	})

	t.Run("deal readiness surfaces agreed terms", func(t *testing.T) {
		store := newStore(t)
		seed := &model.Session{ID: "abc"}
		now := time.Now()
		seed.Append(model.RoleAssistant, "Our opening is $400.00 with 30 days delivery.", now)
		seed.Append(model.RoleUser, "Could you do $380?", now)
		seed.Append(model.RoleAssistant, "I can offer $385 with delivery in 30 days.", now)
		if err := store.Create(ctx, seed); err != nil {
			t.Fatalf("seed: %v", err)
		}

		completer := &mockCompleter{text: "Deal. $385 with 30 days delivery it is."}
		uc := newTestUseCase(store, completer, Config{})

		out, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: "abc", Message: "Deal, I accept $385 with 30 days delivery."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.DealReady {
			t.Fatal("DealReady = false, want true")
		}
		if out.Terms == nil || out.Terms.Price == nil || *out.Terms.Price != 385 {
			t.Errorf("Terms = %+v, want price 385", out.Terms)
		}
	})
}
