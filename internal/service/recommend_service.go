package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"wisely_backend/internal/model"
	"wisely_backend/pkg/logger"

	"go.uber.org/zap"
)

// RecommendService re-orders a college list by free-text relevance using
// the text oracle. It is strictly best-effort: any oracle-side failure
// degrades to the caller's original list and is never surfaced.
type RecommendService struct {
	AI Completer
}

func NewRecommendService(ai Completer) *RecommendService {
	return &RecommendService{AI: ai}
}

// candidateProjection is the reduced view of a college the oracle sees.
type candidateProjection struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Courses  []string `json:"courses"`
	Fees     int      `json:"fees"`
	Ranking  *int     `json:"ranking,omitempty"`
}

type recommendationPayload struct {
	Recommendations []struct {
		ID     uint    `json:"id"`
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	} `json:"recommendations"`
}

// RankColleges reorders candidates by the oracle's relevance scores,
// descending. Candidates the oracle did not mention keep their relative
// order and follow the scored ones. On any failure the input list is
// returned unchanged.
func (s *RecommendService) RankColleges(ctx context.Context, query string, candidates []model.College) []model.College {
	if len(candidates) == 0 {
		return candidates
	}

	projections := make([]candidateProjection, len(candidates))
	for i, c := range candidates {
		projections[i] = candidateProjection{
			ID:       c.ID,
			Name:     c.Name,
			Location: c.Location,
			Courses:  c.Courses,
			Fees:     c.Fees,
			Ranking:  c.Ranking,
		}
	}

	serialized, err := json.Marshal(projections)
	if err != nil {
		return candidates
	}

	systemPrompt := `You are a college admissions counselor. Given a student's query and a list of colleges, rank the colleges by relevance to the query.

Return your response as a JSON object with this exact format:
{
  "recommendations": [
    {"id": 1, "score": 0.95, "reason": "Short rationale"}
  ]
}
Only include ids from the provided list. Higher score means more relevant.`

	userPrompt := fmt.Sprintf("Query: %s\n\nColleges:\n%s", strings.TrimSpace(query), string(serialized))

	raw, err := s.AI.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.Log.Warn("college re-ranking unavailable, keeping original order", zap.Error(err))
		return candidates
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logger.Log.Warn("college re-ranking returned bad payload, keeping original order", zap.Error(err))
		return candidates
	}
	if len(payload.Recommendations) == 0 {
		return candidates
	}

	scores := make(map[uint]float64, len(payload.Recommendations))
	order := make(map[uint]int, len(payload.Recommendations))
	for i, rec := range payload.Recommendations {
		if _, seen := scores[rec.ID]; seen {
			continue
		}
		scores[rec.ID] = rec.Score
		order[rec.ID] = i
	}

	scored := make([]model.College, 0, len(candidates))
	unscored := make([]model.College, 0)
	for _, c := range candidates {
		if _, ok := scores[c.ID]; ok {
			scored = append(scored, c)
		} else {
			unscored = append(unscored, c)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := scores[scored[i].ID], scores[scored[j].ID]
		if si != sj {
			return si > sj
		}
		return order[scored[i].ID] < order[scored[j].ID]
	})

	// Unscored candidates are appended in their original order so the
	// caller always gets the full candidate set back.
	return append(scored, unscored...)
}
