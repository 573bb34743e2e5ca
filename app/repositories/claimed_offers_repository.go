package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

type ClaimedOfferRepositoryImpl interface {
	HasClaim(ctx context.Context, userID string) (bool, error)
	RecordClaim(ctx context.Context, userID string) error
}

type claimedOfferRepository struct {
	db *gorm.DB
}

func NewClaimedOfferRepository(db *gorm.DB) ClaimedOfferRepositoryImpl {
	return &claimedOfferRepository{db}
}

func (r *claimedOfferRepository) HasClaim(ctx context.Context, userID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ClaimedOffer{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total > 0, err
}

func (r *claimedOfferRepository) RecordClaim(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Create(&models.ClaimedOffer{UserID: userID}).Error
}
