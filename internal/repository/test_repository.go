package repository

import (
	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, id).Error
	return &test, err
}

// FindByUser returns the caller's attempts, newest first.
func (r *TestRepository) FindByUser(userID string) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&tests).Error
	return tests, err
}
