package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateSession(t *testing.T, s *Store, id, subject string) {
	t.Helper()
	err := s.Sessions().Create(context.Background(), &Session{ID: id, Subject: subject})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateSession(t, s, "sess-1", "science")

	sess, err := s.Sessions().Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.Subject != "science" {
		t.Errorf("subject = %q, want %q", sess.Subject, "science")
	}
	if sess.MessageCount != 0 {
		t.Errorf("message count = %d, want 0", sess.MessageCount)
	}

	_, err = s.Sessions().Get(ctx, "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("get missing: err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionBumpMessageCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateSession(t, s, "sess-1", "math")

	for i := 0; i < 3; i++ {
		if err := s.Sessions().BumpMessageCount(ctx, "sess-1"); err != nil {
			t.Fatalf("bump %d: %v", i, err)
		}
	}

	sess, err := s.Sessions().Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.MessageCount != 3 {
		t.Errorf("message count = %d, want 3", sess.MessageCount)
	}

	err = s.Sessions().BumpMessageCount(ctx, "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("bump missing: err = %v, want ErrSessionNotFound", err)
	}
}

func TestConversationAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateSession(t, s, "sess-1", "science")
	repo := s.Conversations()

	turns := []TurnRecord{
		{SessionID: "sess-1", Role: "user", Text: "이게 뭐예요?", ResponseType: "CONCEPT_QUESTION", Confidence: 0.8},
		{SessionID: "sess-1", Role: "model", Text: "좋은 질문이야."},
		{SessionID: "sess-1", Role: "user", Text: "왜요?", ResponseType: "DEFAULT", Confidence: 0.1},
	}
	for i := range turns {
		if err := repo.Append(ctx, &turns[i]); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.History(ctx, "sess-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("history length = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("sequence not increasing at %d: %d then %d", i, got[i-1].Sequence, got[i].Sequence)
		}
	}
	if got[0].ResponseType != "CONCEPT_QUESTION" {
		t.Errorf("response type = %q, want CONCEPT_QUESTION", got[0].ResponseType)
	}
	if got[1].Role != "model" {
		t.Errorf("role = %q, want model", got[1].Role)
	}
}

func TestHistoryIsolatedPerSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateSession(t, s, "a", "science")
	mustCreateSession(t, s, "b", "math")
	repo := s.Conversations()

	if err := repo.Append(ctx, &TurnRecord{SessionID: "a", Role: "user", Text: "hi"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Append(ctx, &TurnRecord{SessionID: "b", Role: "user", Text: "yo"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.History(ctx, "a")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 1 || got[0].Text != "hi" {
		t.Errorf("history(a) = %+v, want the single 'hi' turn", got)
	}
}

func TestLLMEventsAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "tutor_reply", InputTokens: 120, OutputTokens: 45, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "material_relevance", Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ListLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list length = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "material_relevance" {
		t.Errorf("first purpose = %q, want material_relevance", got[0].Purpose)
	}
	if got[0].Success {
		t.Error("expected failed event first")
	}
	if got[1].InputTokens != 120 {
		t.Errorf("input tokens = %d, want 120", got[1].InputTokens)
	}
}

func TestExtractionCacheRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ExtractionCache()

	_, err := repo.Get(ctx, "h1")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("get missing: err = %v, want ErrCacheMiss", err)
	}

	if err := repo.Put(ctx, "h1", []byte(`{"text":"hello"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, err := repo.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(entry.Payload) != `{"text":"hello"}` {
		t.Errorf("payload = %s", entry.Payload)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	// Replacing resets the payload.
	if err := repo.Put(ctx, "h1", []byte(`{"text":"bye"}`)); err != nil {
		t.Fatalf("put again: %v", err)
	}
	entry, err = repo.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if string(entry.Payload) != `{"text":"bye"}` {
		t.Errorf("payload after replace = %s", entry.Payload)
	}
}

func TestExtractionCachePrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ExtractionCache()

	if err := repo.Put(ctx, "old", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	// Backdate the row past the cutoff.
	_, err := s.DB().Exec(`UPDATE extraction_cache_entries SET created_at = ? WHERE content_hash = 'old'`,
		time.Now().UTC().Add(-40*24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Put(ctx, "fresh", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Prune(ctx, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned = %d, want 1", n)
	}

	if _, err := repo.Get(ctx, "old"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("old entry should be gone, err = %v", err)
	}
	if _, err := repo.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh entry should remain, err = %v", err)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateSession(t, s, "sess-1", "science")

	turn := TurnRecord{SessionID: "sess-1", Role: "user", Text: "hi"}
	if err := s.Conversations().Append(ctx, &turn); err != nil {
		t.Fatal(err)
	}
	if err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "x", Success: true}); err != nil {
		t.Fatal(err)
	}

	events, err := s.Events().ListLLMRequests(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Sequence <= turn.Sequence {
		t.Errorf("event sequence %d should follow turn sequence %d", events[0].Sequence, turn.Sequence)
	}
}
