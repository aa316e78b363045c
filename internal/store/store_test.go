package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
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

func TestUserCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	users := s.Users()
	ctx := context.Background()

	u, err := users.Create(ctx, "tanvi")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID == 0 || u.Username != "tanvi" {
		t.Errorf("unexpected user: %+v", u)
	}

	got, err := users.GetByUsername(ctx, "tanvi")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("id mismatch: %d vs %d", got.ID, u.ID)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	s := openTestStore(t)
	users := s.Users()
	ctx := context.Background()

	if _, err := users.Create(ctx, "tanvi"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_, err := users.Create(ctx, "tanvi")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Users().GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func testSessionData(userID int, sessionID string, score float64, mastered bool) SessionData {
	return SessionData{
		SessionID:         sessionID,
		UserID:            userID,
		DocumentName:      "cells.md",
		FinalScore:        score,
		MasteryAchieved:   mastered,
		QuestionsAnswered: 2,
		FinishReason:      "score",
		Responses: []ResponseData{
			{QuestionID: "q1", QuestionText: "One?", Topic: "Cell Biology", Tier: 5, Correct: true, SeqInSession: 1},
			{QuestionID: "q2", QuestionText: "Two?", Topic: "Calculus", Tier: 6, Correct: false, SeqInSession: 2},
		},
	}
}

func TestSessionSaveAndHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u, err := s.Users().Create(ctx, "tanvi")
	if err != nil {
		t.Fatal(err)
	}
	sessions := s.Sessions()

	for i := 0; i < 3; i++ {
		data := testSessionData(u.ID, fmt.Sprintf("sess-%d", i), float64(60+i*10), i == 2)
		if err := sessions.Save(ctx, data); err != nil {
			t.Fatalf("save session %d: %v", i, err)
		}
	}

	history, err := sessions.History(ctx, u.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(history))
	}
	for _, rec := range history {
		if rec.DocumentName != "cells.md" || rec.QuestionsAnswered != 2 {
			t.Errorf("unexpected record: %+v", rec)
		}
	}

	recent, err := sessions.Recent(ctx, u.ID, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 recent sessions, got %d", len(recent))
	}
}

func TestSessionOverall(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u, err := s.Users().Create(ctx, "tanvi")
	if err != nil {
		t.Fatal(err)
	}
	sessions := s.Sessions()

	if err := sessions.Save(ctx, testSessionData(u.ID, "sess-a", 80, true)); err != nil {
		t.Fatal(err)
	}
	if err := sessions.Save(ctx, testSessionData(u.ID, "sess-b", 40, false)); err != nil {
		t.Fatal(err)
	}

	stats, err := sessions.Overall(ctx, u.ID)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if stats.TotalSessions != 2 || stats.MasteredSessions != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.AverageScore != 60 {
		t.Errorf("average = %v, want 60", stats.AverageScore)
	}
	if stats.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", stats.TotalQuestions)
	}
}

func TestSessionOverall_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Sessions().Overall(context.Background(), 999)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if stats.TotalSessions != 0 || stats.AverageScore != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestTopicStatRecordUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topics := s.TopicStats()

	for _, correct := range []bool{true, false, true, true} {
		if err := topics.Record(ctx, 1, "Algorithms", correct); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := topics.ByUser(ctx, 1)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 topic row, got %d", len(stats))
	}
	if stats[0].Attempts != 4 || stats[0].Correct != 3 {
		t.Errorf("unexpected tallies: %+v", stats[0])
	}
	if stats[0].Accuracy != 75 {
		t.Errorf("accuracy = %v, want 75", stats[0].Accuracy)
	}
}

func TestTopicStatWeak(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topics := s.TopicStats()

	// Weak: 1/3 correct.
	record := func(topic string, results ...bool) {
		t.Helper()
		for _, r := range results {
			if err := topics.Record(ctx, 1, topic, r); err != nil {
				t.Fatal(err)
			}
		}
	}
	record("Calculus", true, false, false)
	// Strong: 3/3.
	record("Chemistry", true, true, true)
	// Below threshold but only one attempt; excluded.
	record("Databases", false)

	weak, err := topics.Weak(ctx, 1, 60, 2)
	if err != nil {
		t.Fatalf("weak: %v", err)
	}
	if len(weak) != 1 {
		t.Fatalf("expected 1 weak topic, got %d", len(weak))
	}
	if weak[0].Topic != "Calculus" {
		t.Errorf("weak topic = %q", weak[0].Topic)
	}
}

func TestTopicStatIsolatedPerUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	topics := s.TopicStats()

	if err := topics.Record(ctx, 1, "Algorithms", true); err != nil {
		t.Fatal(err)
	}
	if err := topics.Record(ctx, 2, "Algorithms", false); err != nil {
		t.Fatal(err)
	}

	stats, err := topics.ByUser(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Correct != 0 {
		t.Errorf("user 2 stats leaked: %+v", stats)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "pool-gen",
		InputTokens:  1200,
		OutputTokens: 3400,
		LatencyMs:    2100,
		Success:      true,
		RequestBody:  "[system]\nYou are a quiz author.",
		ResponseBody: `{"questions":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 event, got %d", n)
	}
}

func TestQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    "mock-model",
			Purpose:  "pool-gen",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := s.Events().QueryLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events with limit 2, got %d", len(events))
	}
	// Newest first: the later append carries the higher id.
	if events[0].ID < events[1].ID {
		t.Errorf("expected newest first, got ids %d, %d", events[0].ID, events[1].ID)
	}

	got, err := s.Events().GetLLMRequest(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "mock-model" {
		t.Errorf("unexpected record: %+v", got)
	}

	missing, err := s.Events().GetLLMRequest(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}
