package service

import (
	"context"
	"errors"
	"testing"

	"wisely_backend/internal/model"
)

func namedColleges(names ...string) []model.College {
	colleges := make([]model.College, len(names))
	for i, name := range names {
		colleges[i] = model.College{Name: name}
		colleges[i].ID = uint(i + 1)
	}
	return colleges
}

func collegeNames(colleges []model.College) []string {
	names := make([]string, len(colleges))
	for i, c := range colleges {
		names[i] = c.Name
	}
	return names
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankColleges(t *testing.T) {
	candidates := namedColleges("Alpha", "Beta", "Gamma", "Delta")

	t.Run("reorders by descending score", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"recommendations":[
			{"id":3,"score":0.9,"reason":"strong match"},
			{"id":1,"score":0.4,"reason":"partial"},
			{"id":4,"score":0.7,"reason":"good"},
			{"id":2,"score":0.1,"reason":"weak"}
		]}`}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "engineering in the capital", candidates)
		want := []string{"Gamma", "Delta", "Alpha", "Beta"}
		if got := collegeNames(ranked); !sameNames(got, want) {
			t.Errorf("order = %v, want %v", got, want)
		}
	})

	t.Run("unmentioned candidates follow in original order", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"recommendations":[{"id":4,"score":0.8,"reason":"fit"}]}`}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "anything", candidates)
		want := []string{"Delta", "Alpha", "Beta", "Gamma"}
		if got := collegeNames(ranked); !sameNames(got, want) {
			t.Errorf("order = %v, want %v", got, want)
		}
	})

	t.Run("oracle error keeps original order", func(t *testing.T) {
		ai := &fakeCompleter{err: errors.New("timeout")}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "law", candidates)
		if got := collegeNames(ranked); !sameNames(got, collegeNames(candidates)) {
			t.Errorf("order changed on failure: %v", got)
		}
	})

	t.Run("bad payload keeps original order", func(t *testing.T) {
		ai := &fakeCompleter{payload: "not json at all"}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "law", candidates)
		if got := collegeNames(ranked); !sameNames(got, collegeNames(candidates)) {
			t.Errorf("order changed on bad payload: %v", got)
		}
	})

	t.Run("empty recommendations keep original order", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"recommendations":[]}`}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "law", candidates)
		if got := collegeNames(ranked); !sameNames(got, collegeNames(candidates)) {
			t.Errorf("order changed on empty payload: %v", got)
		}
	})

	t.Run("empty candidate list skips the oracle", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"recommendations":[]}`}
		svc := NewRecommendService(ai)

		if got := svc.RankColleges(context.Background(), "law", nil); len(got) != 0 {
			t.Errorf("got %d colleges, want 0", len(got))
		}
		if ai.calls != 0 {
			t.Errorf("oracle called %d times for empty input", ai.calls)
		}
	})

	t.Run("always returns the full candidate set", func(t *testing.T) {
		ai := &fakeCompleter{payload: `{"recommendations":[
			{"id":2,"score":0.5,"reason":"ok"},
			{"id":99,"score":1.0,"reason":"not in the list"}
		]}`}
		svc := NewRecommendService(ai)

		ranked := svc.RankColleges(context.Background(), "law", candidates)
		if len(ranked) != len(candidates) {
			t.Fatalf("got %d colleges, want %d", len(ranked), len(candidates))
		}
	})
}
