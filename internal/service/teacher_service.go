package service

import (
	"errors"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/util"

	"gorm.io/gorm"
)

type TeacherService struct {
	Repo *repository.TeacherRepository
}

func NewTeacherService(repo *repository.TeacherRepository) *TeacherService {
	return &TeacherService{Repo: repo}
}

func (s *TeacherService) Search(filter repository.TeacherFilter) ([]model.Teacher, error) {
	if filter.Empty() {
		return s.Repo.FindAll()
	}
	return s.Repo.Search(filter)
}

func (s *TeacherService) GetByID(id uint) (*model.Teacher, error) {
	teacher, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTeacherNotFound
	}
	return teacher, err
}
