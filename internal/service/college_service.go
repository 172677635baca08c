package service

import (
	"context"
	"errors"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/util"

	"gorm.io/gorm"
)

type CollegeService struct {
	Repo      *repository.CollegeRepository
	Recommend *RecommendService
}

func NewCollegeService(repo *repository.CollegeRepository, recommend *RecommendService) *CollegeService {
	return &CollegeService{Repo: repo, Recommend: recommend}
}

// Search narrows the corpus by the filter conjunction and, when a
// free-text query is present, lets the re-ranker reorder the result.
// The re-ranker never fails the request.
func (s *CollegeService) Search(ctx context.Context, filter repository.CollegeFilter, query string) ([]model.College, error) {
	var colleges []model.College
	var err error

	if filter.Empty() {
		colleges, err = s.Repo.FindAll()
	} else {
		colleges, err = s.Repo.Search(filter)
	}
	if err != nil {
		return nil, err
	}

	if query != "" {
		colleges = s.Recommend.RankColleges(ctx, query, colleges)
	}

	return colleges, nil
}

// RecommendAll runs the re-ranker over the whole corpus for a free-text
// query, ignoring filters.
func (s *CollegeService) RecommendAll(ctx context.Context, query string) ([]model.College, error) {
	colleges, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.Recommend.RankColleges(ctx, query, colleges), nil
}

func (s *CollegeService) GetByID(id uint) (*model.College, error) {
	college, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCollegeNotFound
	}
	return college, err
}
