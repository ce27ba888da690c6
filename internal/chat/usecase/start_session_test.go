package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-negotiator/internal/chat"
	"ai-negotiator/internal/model"
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/pkg/llmprovider"
)

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a greeted session", func(t *testing.T) {
		store := newStore(t)
		uc := newTestUseCase(store, &mockCompleter{text: "unused"}, Config{})

		out, err := uc.StartSession(ctx, chat.StartSessionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID == "" {
			t.Fatal("SessionID is empty")
		}
		if !strings.Contains(out.Greeting, "Alex from ChipSource") {
			t.Errorf("Greeting = %q, missing seller persona", out.Greeting)
		}

		sess, err := store.Get(ctx, out.SessionID)
		if err != nil {
			t.Fatalf("session was not persisted: %v", err)
		}
		if len(sess.Turns) != 1 || sess.Turns[0].Role != model.RoleAssistant {
			t.Fatalf("persisted turns = %+v, want single assistant greeting", sess.Turns)
		}
		if sess.Turns[0].Content != out.Greeting {
			t.Error("persisted greeting differs from returned greeting")
		}
	})

	t.Run("same seed reproduces the same parameters", func(t *testing.T) {
		uc := newTestUseCase(newStore(t), &mockCompleter{text: "unused"}, Config{})

		a, err := uc.StartSession(ctx, chat.StartSessionInput{Seed: "student-42"})
		if err != nil {
			t.Fatalf("first: %v", err)
		}
		b, err := uc.StartSession(ctx, chat.StartSessionInput{Seed: "student-42"})
		if err != nil {
			t.Fatalf("second: %v", err)
		}
		if a.SessionID == b.SessionID {
			t.Error("sessions share an id")
		}
		if a.Params != b.Params {
			t.Errorf("params differ for the same seed: %+v vs %+v", a.Params, b.Params)
		}
	})

	t.Run("keeps caller metadata", func(t *testing.T) {
		store := newStore(t)
		uc := newTestUseCase(store, &mockCompleter{text: "unused"}, Config{})

		out, err := uc.StartSession(ctx, chat.StartSessionInput{Metadata: map[string]string{"student": "a1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sess, _ := store.Get(ctx, out.SessionID)
		if sess.Metadata["student"] != "a1" {
			t.Errorf("Metadata[student] = %q, want a1", sess.Metadata["student"])
		}
	})

	t.Run("turn after start keeps the greeting in history", func(t *testing.T) {
		store := newStore(t)
		completer := &mockCompleter{text: "Our opening stands."}
		uc := newTestUseCase(store, completer, Config{})

		started, err := uc.StartSession(ctx, chat.StartSessionInput{Seed: "s"})
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		if _, err := uc.ProcessTurn(ctx, chat.ProcessTurnInput{SessionID: started.SessionID, Message: "Can you go lower?"}); err != nil {
			t.Fatalf("ProcessTurn: %v", err)
		}

		req := completer.reqs[0]
		if len(req.Messages) != 2 {
			t.Fatalf("request has %d messages, want greeting + user message", len(req.Messages))
		}
		if req.Messages[0].Content != started.Greeting {
			t.Errorf("first message = %q, want the greeting", req.Messages[0].Content)
		}
	})
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()

	seedSession := func(t *testing.T) (*implUseCase, *mockCompleter, string) {
		t.Helper()
		store := newStore(t)
		completer := &mockCompleter{text: "FINAL EVALUATION REPORT\nOverall Weighted Score: 78/100"}
		uc := newTestUseCase(store, completer, Config{})

		now := time.Now()
		sess := &model.Session{ID: "eval-1"}
		sess.Append(model.RoleAssistant, "Our opening is $400.00 with 30 days delivery.", now)
		sess.Append(model.RoleUser, "I accept $380 with 28 days delivery.", now)
		sess.Append(model.RoleAssistant, "Deal at $380, 28 days.", now)
		if err := store.Create(ctx, sess); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return uc, completer, "eval-1"
	}

	t.Run("generates the report", func(t *testing.T) {
		uc, completer, id := seedSession(t)

		out, err := uc.Evaluate(ctx, chat.EvaluateInput{SessionID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID != id {
			t.Errorf("SessionID = %q, want %q", out.SessionID, id)
		}
		if !strings.Contains(out.Report, "FINAL EVALUATION REPORT") {
			t.Errorf("Report = %q", out.Report)
		}

		req := completer.reqs[0]
		if len(req.Messages) != 1 {
			t.Fatalf("request has %d messages, want 1", len(req.Messages))
		}
		rendered := req.Messages[0].Content
		if !strings.Contains(rendered, "I accept $380 with 28 days delivery.") {
			t.Error("rendered prompt is missing the conversation transcript")
		}
		// Final terms fall back to the last mention in the conversation.
		if !strings.Contains(rendered, "Price: $380.00") {
			t.Errorf("rendered prompt is missing the extracted final price:\n%s", rendered)
		}
		if !strings.Contains(rendered, "Delivery: 28 days") {
			t.Error("rendered prompt is missing the extracted final delivery")
		}
	})

	t.Run("supplied terms win over extraction", func(t *testing.T) {
		uc, completer, id := seedSession(t)

		price := 375.5
		_, err := uc.Evaluate(ctx, chat.EvaluateInput{
			SessionID:  id,
			FinalTerms: negotiation.Terms{Price: &price},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rendered := completer.reqs[0].Messages[0].Content
		if !strings.Contains(rendered, "Price: $375.50") {
			t.Errorf("rendered prompt does not carry the supplied price:\n%s", rendered)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := newTestUseCase(newStore(t), &mockCompleter{text: "x"}, Config{})
		_, err := uc.Evaluate(ctx, chat.EvaluateInput{SessionID: "nope"})
		if !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("missing session id", func(t *testing.T) {
		uc := newTestUseCase(newStore(t), &mockCompleter{text: "x"}, Config{})
		_, err := uc.Evaluate(ctx, chat.EvaluateInput{})
		if !errors.Is(err, chat.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("empty conversation", func(t *testing.T) {
		store := newStore(t)
		if err := store.Create(ctx, &model.Session{ID: "empty"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		uc := newTestUseCase(store, &mockCompleter{text: "x"}, Config{})
		_, err := uc.Evaluate(ctx, chat.EvaluateInput{SessionID: "empty"})
		if !errors.Is(err, chat.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("generation failure maps to a domain error", func(t *testing.T) {
		uc, _, id := seedSession(t)
		uc.completer = &mockCompleter{err: llmprovider.ErrUnavailable}
		_, err := uc.Evaluate(ctx, chat.EvaluateInput{SessionID: id})
		if !errors.Is(err, chat.ErrGenerationUnavailable) {
			t.Errorf("error = %v, want ErrGenerationUnavailable", err)
		}
	})
}
