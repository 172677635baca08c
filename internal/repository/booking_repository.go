package repository

import (
	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(booking *model.Booking) error {
	return r.DB.Create(booking).Error
}

func (r *BookingRepository) FindByUser(userID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByTeacher(teacherID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.DB.Where("teacher_id = ?", teacherID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}
