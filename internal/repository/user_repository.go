package repository

import (
	"wisely_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Upsert inserts the user or, when the subject id already exists,
// refreshes the profile columns. Runs on every login.
func (r *UserRepository) Upsert(user *model.User) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdateProfileImage(id, url string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		Update("profile_image_url", url).
		Error
}
