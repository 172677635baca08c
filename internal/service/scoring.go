package service

import (
	"math"

	"wisely_backend/internal/model"
)

// CountCorrect counts positions where the chosen index matches the
// question's correct index. The slices must be the same length; -1
// (unanswered) never matches.
func CountCorrect(questions []model.Question, answers []int) int {
	matches := 0
	for i, q := range questions {
		if answers[i] == q.Correct {
			matches++
		}
	}
	return matches
}

// ComputeScore converts a correct count into a 0-100 percentage.
// Callers must guarantee total > 0.
func ComputeScore(correct, total int) int {
	return int(math.Round(100 * float64(correct) / float64(total)))
}
