package model

// College is seeded reference data: read-heavy, rarely mutated.
// swagger:model College
type College struct {
	BaseModel
	Name         string   `gorm:"size:255;not null" json:"name"`
	Location     string   `gorm:"size:255;not null" json:"location"`
	Courses      []string `gorm:"serializer:json;type:json;not null" json:"courses"`
	Fees         int      `gorm:"not null" json:"fees"` // annual, minor-unit-free
	Ranking      *int     `json:"ranking,omitempty"`    // lower is better
	EntranceExam string   `gorm:"size:100" json:"entranceExam,omitempty"`
	Description  string   `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string   `gorm:"size:255" json:"imageUrl,omitempty"`
}

func (College) TableName() string {
	return "colleges"
}
