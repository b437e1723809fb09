package model

// CourseModule is one subject inside a course. Display order follows the
// ascending Order field.
// swagger:model CourseModule
type CourseModule struct {
	UUIDBase
	CourseID    string `gorm:"size:36;index;not null" json:"courseId"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"column:display_order;default:0" json:"order"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
