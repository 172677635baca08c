package model

import "time"

// User rows are keyed by the subject id the identity provider reports,
// not an autoincrement. A row is upserted on every successful login.
// swagger:model User
type User struct {
	ID              string    `gorm:"primaryKey;size:128" json:"id"`
	Email           string    `gorm:"size:100;uniqueIndex" json:"email"`
	FirstName       string    `gorm:"size:100" json:"firstName"`
	LastName        string    `gorm:"size:100" json:"lastName"`
	ProfileImageURL string    `gorm:"size:255" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
