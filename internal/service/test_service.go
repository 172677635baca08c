package service

import (
	"context"
	"encoding/json"
	"fmt"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/util"
	"wisely_backend/pkg/logger"

	"go.uber.org/zap"
)

const maxQuestions = 25

// difficultyFocus keys the prompt content per tier; it controls what the
// oracle is asked for, not how answers are graded.
var difficultyFocus = map[model.Difficulty]string{
	model.Beginner:     "basic grammar, simple vocabulary, present/past tense, basic sentence structure",
	model.Intermediate: "complex grammar, intermediate vocabulary, all tenses, conditional sentences, phrasal verbs",
	model.Advanced:     "advanced grammar, sophisticated vocabulary, complex sentence structures, idiomatic expressions, advanced writing techniques",
}

type TestService struct {
	AI   Completer
	Repo *repository.TestRepository
}

func NewTestService(ai Completer, repo *repository.TestRepository) *TestService {
	return &TestService{AI: ai, Repo: repo}
}

// QuestionCount derives how many questions fit a test of the given length:
// two minutes per question, capped at 25.
func QuestionCount(duration int) int {
	n := duration / 2
	if n > maxQuestions {
		n = maxQuestions
	}
	return n
}

type generatedPayload struct {
	Questions []model.Question `json:"questions"`
}

// GenerateTest asks the oracle for a difficulty-scaled question set and
// normalizes the result. A single oracle failure is terminal for this
// request; callers surface it as ErrGenerationFailed.
func (s *TestService) GenerateTest(ctx context.Context, difficulty model.Difficulty, duration, questionCount int) ([]model.Question, error) {
	numQuestions := questionCount
	if numQuestions <= 0 {
		numQuestions = QuestionCount(duration)
	}

	systemPrompt := fmt.Sprintf(`You are an expert English language teacher. Generate %d multiple choice English test questions for %s level students. Focus on: %s.

Each question should have exactly 4 options (A, B, C, D) with only one correct answer. Include a brief explanation for the correct answer.

Return your response as a JSON object with this exact format:
{
  "questions": [
    {
      "id": 1,
      "question": "Question text here",
      "options": ["option A", "option B", "option C", "option D"],
      "correct": 0,
      "explanation": "Brief explanation of why this is correct"
    }
  ]
}`, numQuestions, difficulty, difficultyFocus[difficulty])

	userPrompt := fmt.Sprintf("Generate %d English test questions for %s level, suitable for a %d-minute test.", numQuestions, difficulty, duration)

	raw, err := s.AI.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Log.Error("test generation failed",
			zap.String("difficulty", string(difficulty)),
			zap.Int("duration", duration),
			zap.Error(err),
		)
		return nil, util.ErrGenerationFailed
	}

	questions, err := parseGeneratedQuestions(raw)
	if err != nil {
		logger.Log.Error("test generation returned bad payload", zap.Error(err))
		return nil, util.ErrGenerationFailed
	}

	return questions, nil
}

// parseGeneratedQuestions validates the oracle payload and re-numbers ids
// sequentially from 1, ignoring whatever ids the oracle supplied.
func parseGeneratedQuestions(raw string) ([]model.Question, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	if payload.Questions == nil {
		return nil, fmt.Errorf("payload missing questions array")
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("payload has no questions")
	}

	questions := make([]model.Question, len(payload.Questions))
	for i, q := range payload.Questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d has no text", i+1)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d has %d options, want 4", i+1, len(q.Options))
		}
		if q.Correct < 0 || q.Correct > 3 {
			return nil, fmt.Errorf("question %d has correct index %d out of range", i+1, q.Correct)
		}
		q.ID = i + 1
		questions[i] = q
	}

	return questions, nil
}

// SubmitRequest is the client's account of a finished attempt. Score
// fields it may carry are ignored; the server recomputes them.
type SubmitRequest struct {
	Difficulty model.Difficulty `json:"difficulty" binding:"required"`
	Duration   int              `json:"duration" binding:"required,gt=0"`
	Questions  []model.Question `json:"questions" binding:"required"`
	Answers    []int            `json:"answers" binding:"required"`
	TimeSpent  int              `json:"timeSpent"`
}

// SubmitTest persists a completed attempt. The score, correct count and
// total are recomputed server-side from the questions and answers; a
// client-claimed score is never trusted.
func (s *TestService) SubmitTest(userID string, req SubmitRequest) (*model.Test, error) {
	if !req.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", req.Difficulty)
	}
	if len(req.Questions) == 0 {
		return nil, util.ErrAnswerMismatch
	}
	if len(req.Answers) != len(req.Questions) {
		return nil, util.ErrAnswerMismatch
	}

	correct := CountCorrect(req.Questions, req.Answers)
	total := len(req.Questions)

	test := &model.Test{
		UserID:         userID,
		Difficulty:     req.Difficulty,
		Duration:       req.Duration,
		Questions:      req.Questions,
		Answers:        req.Answers,
		Score:          ComputeScore(correct, total),
		CorrectAnswers: correct,
		TotalQuestions: total,
		TimeSpent:      req.TimeSpent,
	}

	if err := s.Repo.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

// History returns the caller's attempts in reverse-chronological order.
func (s *TestService) History(userID string) ([]model.Test, error) {
	return s.Repo.FindByUser(userID)
}
