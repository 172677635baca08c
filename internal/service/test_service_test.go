package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeCompleter returns a canned payload or error and records the prompts
// it was called with.
type fakeCompleter struct {
	payload    string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeCompleter) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.payload, nil
}

// newTestServiceDB opens a per-test in-memory database. The tests table
// is created by hand because the production schema targets MySQL column
// types sqlite cannot parse.
func newTestServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.Exec(`CREATE TABLE tests (
		id integer primary key autoincrement,
		user_id text not null,
		difficulty text not null,
		duration integer not null,
		questions text not null,
		answers text not null,
		score integer not null,
		correct_answers integer not null,
		total_questions integer not null,
		time_spent integer not null,
		completed_at datetime
	)`).Error
	if err != nil {
		t.Fatalf("create tests table: %v", err)
	}
	return db
}

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{10, 5},
		{20, 10},
		{30, 15},
		{50, 25},
		{60, 25},  // capped
		{120, 25}, // capped
		{3, 1},
	}

	for _, tt := range tests {
		if got := QuestionCount(tt.duration); got != tt.want {
			t.Errorf("QuestionCount(%d) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func validPayload(n int) string {
	payload := `{"questions":[`
	for i := 0; i < n; i++ {
		if i > 0 {
			payload += ","
		}
		// Deliberately wrong ids; the parser must renumber.
		payload += fmt.Sprintf(`{"id":%d,"question":"Pick the correct form %d","options":["go","goes","going","gone"],"correct":1,"explanation":"third person singular"}`, 100+i, i)
	}
	return payload + `]}`
}

func TestParseGeneratedQuestions(t *testing.T) {
	t.Run("renumbers ids from one", func(t *testing.T) {
		questions, err := parseGeneratedQuestions(validPayload(3))
		if err != nil {
			t.Fatalf("parseGeneratedQuestions: %v", err)
		}
		if len(questions) != 3 {
			t.Fatalf("got %d questions, want 3", len(questions))
		}
		for i, q := range questions {
			if q.ID != i+1 {
				t.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
			}
		}
	})

	bad := []struct {
		name string
		raw  string
	}{
		{"empty payload", ""},
		{"malformed json", `{"questions":[`},
		{"missing questions key", `{"items":[]}`},
		{"empty questions array", `{"questions":[]}`},
		{"no question text", `{"questions":[{"id":1,"question":"","options":["a","b","c","d"],"correct":0}]}`},
		{"three options", `{"questions":[{"id":1,"question":"q","options":["a","b","c"],"correct":0}]}`},
		{"five options", `{"questions":[{"id":1,"question":"q","options":["a","b","c","d","e"],"correct":0}]}`},
		{"correct index too high", `{"questions":[{"id":1,"question":"q","options":["a","b","c","d"],"correct":4}]}`},
		{"correct index negative", `{"questions":[{"id":1,"question":"q","options":["a","b","c","d"],"correct":-1}]}`},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseGeneratedQuestions(tt.raw); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGenerateTest(t *testing.T) {
	t.Run("derives count from duration", func(t *testing.T) {
		ai := &fakeCompleter{payload: validPayload(10)}
		svc := NewTestService(ai, nil)

		questions, err := svc.GenerateTest(context.Background(), model.Intermediate, 20, 0)
		if err != nil {
			t.Fatalf("GenerateTest: %v", err)
		}
		if len(questions) != 10 {
			t.Errorf("got %d questions, want 10", len(questions))
		}
		wantUser := "Generate 10 English test questions for intermediate level, suitable for a 20-minute test."
		if ai.lastUser != wantUser {
			t.Errorf("user prompt = %q, want %q", ai.lastUser, wantUser)
		}
	})

	t.Run("explicit count wins over duration", func(t *testing.T) {
		ai := &fakeCompleter{payload: validPayload(5)}
		svc := NewTestService(ai, nil)

		if _, err := svc.GenerateTest(context.Background(), model.Beginner, 60, 5); err != nil {
			t.Fatalf("GenerateTest: %v", err)
		}
		wantUser := "Generate 5 English test questions for beginner level, suitable for a 60-minute test."
		if ai.lastUser != wantUser {
			t.Errorf("user prompt = %q, want %q", ai.lastUser, wantUser)
		}
	})

	t.Run("oracle failure maps to generation error", func(t *testing.T) {
		ai := &fakeCompleter{err: errors.New("upstream 500")}
		svc := NewTestService(ai, nil)

		_, err := svc.GenerateTest(context.Background(), model.Advanced, 30, 0)
		if !errors.Is(err, util.ErrGenerationFailed) {
			t.Errorf("err = %v, want ErrGenerationFailed", err)
		}
		if ai.calls != 1 {
			t.Errorf("oracle called %d times, want exactly 1", ai.calls)
		}
	})

	t.Run("bad payload maps to generation error", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"questions":[]}`}
		svc := NewTestService(ai, nil)

		_, err := svc.GenerateTest(context.Background(), model.Beginner, 10, 0)
		if !errors.Is(err, util.ErrGenerationFailed) {
			t.Errorf("err = %v, want ErrGenerationFailed", err)
		}
	})
}

func TestSubmitTest(t *testing.T) {
	db := newTestServiceDB(t)
	svc := NewTestService(nil, repository.NewTestRepository(db))

	questions := questionsWithCorrect(0, 1, 2, 3, 0, 1, 2, 3, 0, 1)

	t.Run("recomputes score server side", func(t *testing.T) {
		req := SubmitRequest{
			Difficulty: model.Intermediate,
			Duration:   20,
			Questions:  questions,
			Answers:    []int{0, 1, 2, 3, 0, 1, 2, 0, 0, 0}, // 7 of 10
			TimeSpent:  900,
		}

		test, err := svc.SubmitTest("user-1", req)
		if err != nil {
			t.Fatalf("SubmitTest: %v", err)
		}
		if test.Score != 70 {
			t.Errorf("score = %d, want 70", test.Score)
		}
		if test.CorrectAnswers != 7 {
			t.Errorf("correctAnswers = %d, want 7", test.CorrectAnswers)
		}
		if test.TotalQuestions != 10 {
			t.Errorf("totalQuestions = %d, want 10", test.TotalQuestions)
		}
		if test.ID == 0 {
			t.Error("test was not persisted")
		}
	})

	t.Run("answer count must match question count", func(t *testing.T) {
		req := SubmitRequest{
			Difficulty: model.Beginner,
			Duration:   10,
			Questions:  questions,
			Answers:    []int{0, 1},
		}
		if _, err := svc.SubmitTest("user-1", req); !errors.Is(err, util.ErrAnswerMismatch) {
			t.Errorf("err = %v, want ErrAnswerMismatch", err)
		}
	})

	t.Run("rejects empty question set", func(t *testing.T) {
		req := SubmitRequest{
			Difficulty: model.Beginner,
			Duration:   10,
			Questions:  nil,
			Answers:    nil,
		}
		if _, err := svc.SubmitTest("user-1", req); !errors.Is(err, util.ErrAnswerMismatch) {
			t.Errorf("err = %v, want ErrAnswerMismatch", err)
		}
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		req := SubmitRequest{
			Difficulty: model.Difficulty("expert"),
			Duration:   10,
			Questions:  questions,
			Answers:    []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1},
		}
		if _, err := svc.SubmitTest("user-1", req); err == nil {
			t.Error("expected error for unknown difficulty")
		}
	})
}

func TestHistoryScopedToUser(t *testing.T) {
	db := newTestServiceDB(t)
	svc := NewTestService(nil, repository.NewTestRepository(db))

	questions := questionsWithCorrect(0, 1)
	for i := 0; i < 3; i++ {
		req := SubmitRequest{
			Difficulty: model.Beginner,
			Duration:   10,
			Questions:  questions,
			Answers:    []int{0, i % 2},
		}
		if _, err := svc.SubmitTest("user-2", req); err != nil {
			t.Fatalf("SubmitTest: %v", err)
		}
	}

	history, err := svc.History("user-2")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d attempts, want 3", len(history))
	}

	if other, err := svc.History("someone-else"); err != nil || len(other) != 0 {
		t.Errorf("History for other user = %d attempts, err %v; want 0, nil", len(other), err)
	}
}
