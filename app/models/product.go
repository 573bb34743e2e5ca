package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the remote row shape for the products table. Columns are
// snake_case; the in-memory store.Product is camelCase. FromProduct and
// Domain are the explicit bidirectional mapping between the two.
type Product struct {
	ID               string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID           string          `gorm:"size:36;index"`
	Name             string          `gorm:"size:255;not null"`
	Brand            string          `gorm:"size:100"`
	Category         string          `gorm:"size:100;index"`
	Tags             string          `gorm:"type:text"`
	Sku              string          `gorm:"size:100;index"`
	Cost             decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	Price            decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Stock            int             `gorm:"not null"`
	ImageURL         string          `gorm:"column:image_url;type:text;not null"`
	Description      string          `gorm:"type:text"`
	Confidence       *float64
	EntryDate        *time.Time `gorm:"column:entry_date"`
	SupplierWarranty *time.Time `gorm:"column:supplier_warranty"`
	FolderID         *string    `gorm:"column:folder_id;size:36;index"`
	AbcClass         string     `gorm:"column:abc_class;size:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// FromProduct maps a domain product to its row for the given owner.
func FromProduct(userID string, p store.Product) Product {
	return Product{
		ID:               p.ID,
		UserID:           userID,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         p.Category,
		Tags:             strings.Join(p.Tags, ","),
		Sku:              p.SKU,
		Cost:             p.Cost,
		Price:            p.Price,
		Stock:            p.Stock,
		ImageURL:         p.ImageURL,
		Description:      p.Description,
		Confidence:       p.Confidence,
		EntryDate:        p.EntryDate,
		SupplierWarranty: p.SupplierWarranty,
		FolderID:         p.FolderID,
		AbcClass:         p.ABCClass,
		CreatedAt:        p.CreatedAt,
	}
}

// Domain maps the row back to the camelCase in-memory model.
func (p Product) Domain() store.Product {
	tags := []string{}
	if p.Tags != "" {
		tags = strings.Split(p.Tags, ",")
	}
	return store.Product{
		ID:               p.ID,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         p.Category,
		Tags:             tags,
		SKU:              p.Sku,
		Cost:             p.Cost,
		Price:            p.Price,
		Stock:            p.Stock,
		ImageURL:         p.ImageURL,
		Description:      p.Description,
		Confidence:       p.Confidence,
		EntryDate:        p.EntryDate,
		SupplierWarranty: p.SupplierWarranty,
		FolderID:         p.FolderID,
		ABCClass:         p.AbcClass,
		CreatedAt:        p.CreatedAt,
	}
}
