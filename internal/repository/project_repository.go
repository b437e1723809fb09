package repository

import (
	"ailearn_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	err := r.DB.Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindPublic() ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByUser(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.DB.Save(project).Error
}

func (r *ProjectRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Project{}).Error
}

func (r *ProjectRepository) Upvote(id string) error {
	return r.DB.Model(&model.Project{}).Where("id = ?", id).
		Update("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Project{}).Count(&count).Error
	return count, err
}
