package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context, userID string) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
	InsertBatch(ctx context.Context, categories []models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, userID, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Insert(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) InsertBatch(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&categories).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Category{}, "id = ?", id).Error
}
