package migrations

import (
	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Folder{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
		&models.Settings{},
		&models.ClaimedOffer{},
	)
}
