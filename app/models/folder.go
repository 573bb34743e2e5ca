package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Folder struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID     string          `gorm:"size:36;index"`
	Name       string          `gorm:"size:255;not null"`
	ParentID   *string         `gorm:"column:parent_id;size:36;index"`
	Color      string          `gorm:"size:30"`
	Prefix     string          `gorm:"size:10"`
	Margin     decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	IsInternal bool            `gorm:"column:is_internal;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (f *Folder) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

func FromFolder(userID string, f store.Folder) Folder {
	return Folder{
		ID:         f.ID,
		UserID:     userID,
		Name:       f.Name,
		ParentID:   f.ParentID,
		Color:      f.Color,
		Prefix:     f.Prefix,
		Margin:     f.Margin,
		IsInternal: f.IsInternal,
		CreatedAt:  f.CreatedAt,
	}
}

func (f Folder) Domain() store.Folder {
	return store.Folder{
		ID:         f.ID,
		Name:       f.Name,
		ParentID:   f.ParentID,
		Color:      f.Color,
		Prefix:     f.Prefix,
		Margin:     f.Margin,
		IsInternal: f.IsInternal,
		CreatedAt:  f.CreatedAt,
	}
}
