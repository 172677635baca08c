package repository

import (
	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

// TeacherFilter narrows the teacher listing; zero values are skipped.
type TeacherFilter struct {
	MinExperience int
	MaxRate       int
}

func (f TeacherFilter) Empty() bool {
	return f.MinExperience == 0 && f.MaxRate == 0
}

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(teacher *model.Teacher) error {
	return r.DB.Create(teacher).Error
}

func (r *TeacherRepository) FindByID(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.First(&teacher, id).Error
	return &teacher, err
}

func (r *TeacherRepository) FindAll() ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.DB.Order("rating desc").Find(&teachers).Error
	return teachers, err
}

func (r *TeacherRepository) Search(filter TeacherFilter) ([]model.Teacher, error) {
	query := r.DB.Model(&model.Teacher{})

	if filter.MinExperience > 0 {
		query = query.Where("experience >= ?", filter.MinExperience)
	}
	if filter.MaxRate > 0 {
		query = query.Where("hourly_rate <= ?", filter.MaxRate)
	}

	var teachers []model.Teacher
	err := query.Order("rating desc").Find(&teachers).Error
	return teachers, err
}

func (r *TeacherRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Teacher{}).Count(&count).Error
	return count, err
}
