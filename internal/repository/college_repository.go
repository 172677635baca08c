package repository

import (
	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

// CollegeFilter narrows the college listing. Fields at their zero value
// are not applied; present filters combine with AND.
type CollegeFilter struct {
	Course   string
	Location string
	MinFees  int
	MaxFees  int
}

func (f CollegeFilter) Empty() bool {
	return f.Course == "" && f.Location == "" && f.MinFees == 0 && f.MaxFees == 0
}

type CollegeRepository struct {
	DB *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{DB: db}
}

func (r *CollegeRepository) Create(college *model.College) error {
	return r.DB.Create(college).Error
}

func (r *CollegeRepository) FindByID(id uint) (*model.College, error) {
	var college model.College
	err := r.DB.First(&college, id).Error
	return &college, err
}

// FindAll returns the whole corpus ordered by ranking, best first.
func (r *CollegeRepository) FindAll() ([]model.College, error) {
	var colleges []model.College
	err := r.DB.Order("ranking asc").Find(&colleges).Error
	return colleges, err
}

// Search applies the filter conjunction. The course term matches the
// college name; fee bounds are inclusive.
func (r *CollegeRepository) Search(filter CollegeFilter) ([]model.College, error) {
	query := r.DB.Model(&model.College{})

	if filter.Course != "" {
		query = query.Where("name LIKE ?", "%"+filter.Course+"%")
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinFees > 0 {
		query = query.Where("fees >= ?", filter.MinFees)
	}
	if filter.MaxFees > 0 {
		query = query.Where("fees <= ?", filter.MaxFees)
	}

	var colleges []model.College
	err := query.Order("ranking asc").Find(&colleges).Error
	return colleges, err
}

func (r *CollegeRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.College{}).Count(&count).Error
	return count, err
}
