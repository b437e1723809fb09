package repository

import (
	"ailearn_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Create(module *model.CourseModule) error {
	return r.DB.Create(module).Error
}

func (r *ModuleRepository) FindByID(id string) (*model.CourseModule, error) {
	var module model.CourseModule
	err := r.DB.Where("id = ?", id).First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// FindByCourse lists a course's modules in display order.
func (r *ModuleRepository) FindByCourse(courseID string) ([]model.CourseModule, error) {
	var modules []model.CourseModule
	err := r.DB.Where("course_id = ?", courseID).
		Order("display_order ASC").
		Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) FindAll() ([]model.CourseModule, error) {
	var modules []model.CourseModule
	err := r.DB.Order("display_order ASC").Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) Update(module *model.CourseModule) error {
	return r.DB.Save(module).Error
}

func (r *ModuleRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.CourseModule{}).Error
}

func (r *ModuleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseModule{}).Count(&count).Error
	return count, err
}
