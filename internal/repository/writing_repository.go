package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type WritingRepository struct {
	DB *gorm.DB
}

func NewWritingRepository(db *gorm.DB) *WritingRepository {
	return &WritingRepository{DB: db}
}

func (r *WritingRepository) ListPublished(taskType int, difficulty string, page, limit int) ([]model.WritingTask, int64, error) {
	var tasks []model.WritingTask
	var total int64

	query := r.DB.Model(&model.WritingTask{}).Where("is_published = ?", true)
	if taskType > 0 {
		query = query.Where("task_type = ?", taskType)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` ASC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&tasks).Error
	return tasks, total, err
}

func (r *WritingRepository) FindByID(id string) (*model.WritingTask, error) {
	var task model.WritingTask
	err := r.DB.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *WritingRepository) Create(task *model.WritingTask) error {
	return r.DB.Create(task).Error
}

func (r *WritingRepository) Update(task *model.WritingTask) error {
	return r.DB.Save(task).Error
}

func (r *WritingRepository) Delete(id string) error {
	return r.DB.Delete(&model.WritingTask{}, "id = ?", id).Error
}
