package service

import (
	"errors"
	"time"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/util"

	"gorm.io/gorm"
)

type BookingService struct {
	Bookings *repository.BookingRepository
	Teachers *repository.TeacherRepository
}

func NewBookingService(bookings *repository.BookingRepository, teachers *repository.TeacherRepository) *BookingService {
	return &BookingService{Bookings: bookings, Teachers: teachers}
}

type BookingRequest struct {
	TeacherID   uint      `json:"teacherId" binding:"required"`
	SessionDate time.Time `json:"sessionDate" binding:"required"`
	Duration    int       `json:"duration" binding:"required,gt=0"` // minutes
	Subject     string    `json:"subject" binding:"required"`
	TotalAmount int       `json:"totalAmount" binding:"required,gte=0"`
}

// Create records a booking request with status pending. The referenced
// teacher must exist; availability conflicts are not checked.
func (s *BookingService) Create(userID string, req BookingRequest) (*model.Booking, error) {
	if _, err := s.Teachers.FindByID(req.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTeacherNotFound
		}
		return nil, err
	}

	booking := &model.Booking{
		UserID:      userID,
		TeacherID:   req.TeacherID,
		SessionDate: req.SessionDate,
		Duration:    req.Duration,
		Subject:     req.Subject,
		Status:      model.BookingPending,
		TotalAmount: req.TotalAmount,
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForUser(userID string) ([]model.Booking, error) {
	return s.Bookings.FindByUser(userID)
}
