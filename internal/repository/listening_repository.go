package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ListeningRepository struct {
	DB *gorm.DB
}

func NewListeningRepository(db *gorm.DB) *ListeningRepository {
	return &ListeningRepository{DB: db}
}

// ListPublished 按条件分页查询已发布的听力练习（不加载题目）
func (r *ListeningRepository) ListPublished(difficulty, category string, page, limit int) ([]model.ListeningExercise, int64, error) {
	var exercises []model.ListeningExercise
	var total int64

	query := r.DB.Model(&model.ListeningExercise{}).Where("is_published = ?", true)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` ASC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&exercises).Error
	return exercises, total, err
}

// FindByID 查询练习及其全部题目，题目按题号排序
func (r *ListeningRepository) FindByID(id string) (*model.ListeningExercise, error) {
	var exercise model.ListeningExercise
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_number ASC")
	}).First(&exercise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ListeningRepository) Create(exercise *model.ListeningExercise) error {
	return r.DB.Create(exercise).Error
}

func (r *ListeningRepository) Update(exercise *model.ListeningExercise) error {
	return r.DB.Save(exercise).Error
}

func (r *ListeningRepository) Delete(id string) error {
	return r.DB.Select("Questions").Delete(&model.ListeningExercise{UUIDBase: model.UUIDBase{ID: id}}).Error
}
