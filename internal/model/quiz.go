package model

import (
	"time"

	"gorm.io/gorm"
)

// Quiz holds the question set for one module of a subject. Its identifier is
// the composite "<subjectID>_<moduleID>" so saves overwrite in place.
// swagger:model Quiz
type Quiz struct {
	ID        string         `gorm:"primaryKey;type:varchar(80)" json:"id"`
	CourseID  string         `gorm:"size:36;index" json:"courseId"`
	SubjectID string         `gorm:"size:36;index" json:"subjectId"`
	ModuleID  string         `gorm:"size:36;index" json:"moduleId"`
	Questions []QuizQuestion `gorm:"type:json;serializer:json" json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type QuizQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func QuizID(subjectID, moduleID string) string {
	return subjectID + "_" + moduleID
}
