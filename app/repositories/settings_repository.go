package repositories

import (
	"context"
	"errors"

	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl interface {
	Get(ctx context.Context, userID string) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryImpl {
	return &settingsRepository{db}
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error
}
