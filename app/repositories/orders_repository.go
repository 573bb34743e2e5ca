package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	GetAll(ctx context.Context, userID string) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, userID, id, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) GetAll(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Insert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("status", status).Error
}
