package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records a requested session with a teacher. Rows are created
// with status pending; no endpoint moves them through the other states.
// swagger:model Booking
type Booking struct {
	BaseModel
	UserID      string        `gorm:"size:128;index;not null" json:"userId"`
	TeacherID   uint          `gorm:"index;not null" json:"teacherId"`
	SessionDate time.Time     `gorm:"not null" json:"sessionDate"`
	Duration    int           `gorm:"not null" json:"duration"` // minutes
	Subject     string        `gorm:"size:255;not null" json:"subject"`
	Status      BookingStatus `gorm:"type:enum('pending','confirmed','completed','cancelled');default:'pending'" json:"status"`
	TotalAmount int           `gorm:"not null" json:"totalAmount"`
}

func (Booking) TableName() string {
	return "bookings"
}
