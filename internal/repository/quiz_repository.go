package repository

import (
	"ailearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ?", id).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Save upserts a quiz under its composite subject/module identifier.
func (r *QuizRepository) Save(quiz *model.Quiz) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(quiz).Error
}

func (r *QuizRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Quiz{}).Error
}
