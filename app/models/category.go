package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category holds a pricing/classification policy row. Products reference it
// by name, so there is no foreign key here.
type Category struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID     string          `gorm:"size:36;index"`
	Name       string          `gorm:"size:100;not null"`
	Prefix     string          `gorm:"size:10"`
	Margin     decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	Color      string          `gorm:"size:30"`
	IsInternal bool            `gorm:"column:is_internal;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func FromCategory(userID string, c store.CategoryConfig) Category {
	return Category{
		ID:         c.ID,
		UserID:     userID,
		Name:       c.Name,
		Prefix:     c.Prefix,
		Margin:     c.Margin,
		Color:      c.Color,
		IsInternal: c.IsInternal,
	}
}

func (c Category) Domain() store.CategoryConfig {
	return store.CategoryConfig{
		ID:         c.ID,
		Name:       c.Name,
		Prefix:     c.Prefix,
		Margin:     c.Margin,
		Color:      c.Color,
		IsInternal: c.IsInternal,
	}
}
