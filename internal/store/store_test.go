package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/profile"
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
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
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
		// so journal_mode is only meaningful with file-based DBs.
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

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"users", "attempts", "llm_requests"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestProfileCreateLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	p := profile.New("ritika")
	p.Points = 10
	p.Proficiency["addition_basic"] = 0.6

	if err := repo.Create(ctx, "secret", p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Load(ctx, "ritika")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 10 {
		t.Errorf("points = %d, want 10", got.Points)
	}
	if got.Proficiency["addition_basic"] != 0.6 {
		t.Errorf("proficiency = %v, want 0.6", got.Proficiency["addition_basic"])
	}
}

func TestProfileCreateDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	if err := repo.Create(ctx, "pw", profile.New("zo")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, "pw2", profile.New("zo"))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	if err := repo.Create(ctx, "pw", profile.New("zo")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Authenticate(ctx, "zo", "pw"); err != nil {
		t.Errorf("authenticate: %v", err)
	}
	if _, err := repo.Authenticate(ctx, "zo", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := repo.Authenticate(ctx, "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	p := profile.New("zo")
	if err := repo.Create(ctx, "pw", p); err != nil {
		t.Fatalf("create: %v", err)
	}

	p.Points = 5
	p.SubjectLevels[catalog.SubjectMath] = 2
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "zo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 5 || got.SubjectLevels[catalog.SubjectMath] != 2 {
		t.Errorf("got points=%d level=%d, want 5 and 2", got.Points, got.SubjectLevels[catalog.SubjectMath])
	}
}

func TestSaveUnknownProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()

	err := repo.Save(context.Background(), profile.New("ghost"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	if err := repo.Create(ctx, "pw", profile.New("zo")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "zo"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, "zo"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
	if err := repo.Delete(ctx, "zo"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("second delete err = %v, want ErrProfileNotFound", err)
	}
}

func TestAttemptLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, Attempt{
			Username:  "zo",
			SessionID: "s1",
			Kind:      AttemptQuiz,
			Subject:   "math",
			Level:     1,
			Score:     i,
			Total:     3,
			Passed:    i >= 2,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Recent(ctx, "zo", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Score != 2 || !got[0].Passed {
		t.Errorf("newest = %+v, want score 2 passed", got[0])
	}
	if got[1].Score != 1 {
		t.Errorf("second = %+v, want score 1", got[1])
	}
}

func TestLLMLogAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.LLMLog().AppendLLMRequest(ctx, LLMRequestRecord{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "buddy_chat",
		InputTokens:  12,
		OutputTokens: 34,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM llm_requests").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestLLMUsageSumsLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if u != (LLMUsage{}) {
		t.Fatalf("empty log usage = %+v, want zeros", u)
	}

	recs := []LLMRequestRecord{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "buddy_chat",
			InputTokens: 100, OutputTokens: 40, CostUSD: 0.0009, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "buddy_chat",
			InputTokens: 250, OutputTokens: 60, CostUSD: 0.0017, LatencyMs: 420, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "buddy_chat",
			LatencyMs: 80, Success: false, ErrorMessage: "rate limited"},
	}
	for i, rec := range recs {
		if err := s.LLMLog().AppendLLMRequest(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	u, err = s.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if u.Requests != 3 {
		t.Errorf("requests = %d, want 3", u.Requests)
	}
	if u.InputTokens != 350 || u.OutputTokens != 100 {
		t.Errorf("tokens = %d in / %d out, want 350 / 100", u.InputTokens, u.OutputTokens)
	}
	if diff := u.CostUSD - 0.0026; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("cost = %v, want 0.0026", u.CostUSD)
	}
}
