package model

// Teacher is seeded reference data, referenced (not owned) by bookings.
// Rating is stored in tenths of a star: 48 means 4.8.
// swagger:model Teacher
type Teacher struct {
	BaseModel
	Name            string   `gorm:"size:255;not null" json:"name"`
	Email           string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	Specializations []string `gorm:"serializer:json;type:json;not null" json:"specializations"`
	Experience      int      `gorm:"not null" json:"experience"` // years
	Qualifications  []string `gorm:"serializer:json;type:json;not null" json:"qualifications"`
	HourlyRate      int      `gorm:"not null" json:"hourlyRate"`
	Rating          int      `gorm:"not null" json:"rating"`
	TotalReviews    int      `gorm:"not null" json:"totalReviews"`
	Bio             string   `gorm:"type:text" json:"bio,omitempty"`
	ImageURL        string   `gorm:"size:255" json:"imageUrl,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
