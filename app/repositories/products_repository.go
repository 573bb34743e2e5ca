package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context, userID string) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	InsertBatch(ctx context.Context, products []models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetAll(ctx context.Context, userID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Insert(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) InsertBatch(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return p.db.WithContext(ctx).Create(&products).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, userID, id string) error {
	return p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) Count(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
