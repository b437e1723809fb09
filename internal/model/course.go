package model

// Course groups modules into a curriculum (e.g. "ai-engineering").
// swagger:model Course
type Course struct {
	UUIDBase
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
}

func (Course) TableName() string {
	return "courses"
}
