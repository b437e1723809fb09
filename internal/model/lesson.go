package model

// Lesson is the unit completion is tracked against.
// swagger:model Lesson
type Lesson struct {
	UUIDBase
	ModuleID      string   `gorm:"size:36;index;not null" json:"moduleId"`
	Title         string   `gorm:"size:200;not null" json:"title"`
	Content       string   `gorm:"type:text" json:"content"`
	VideoURL      string   `gorm:"size:255" json:"videoUrl"`
	VideoDuration float64  `gorm:"default:0" json:"videoDuration"` // seconds, probed on upload
	ColabURL      string   `gorm:"size:255" json:"googleColabUrl"`
	Simulators    []string `gorm:"type:json;serializer:json" json:"simulators"`
	Order         int      `gorm:"column:display_order;default:0" json:"order"`
}

func (Lesson) TableName() string {
	return "lessons"
}
