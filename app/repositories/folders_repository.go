package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

type FolderRepositoryImpl interface {
	GetAll(ctx context.Context, userID string) ([]models.Folder, error)
	Insert(ctx context.Context, folder *models.Folder) error
	Update(ctx context.Context, folder *models.Folder) error
	Delete(ctx context.Context, userID, id string) error
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepositoryImpl {
	return &folderRepository{db}
}

func (r *folderRepository) GetAll(ctx context.Context, userID string) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) Insert(ctx context.Context, folder *models.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *folderRepository) Update(ctx context.Context, folder *models.Folder) error {
	return r.db.WithContext(ctx).Save(folder).Error
}

func (r *folderRepository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Folder{}, "id = ?", id).Error
}
