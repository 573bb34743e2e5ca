package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID       string          `gorm:"size:36;index"`
	CustomerName string          `gorm:"column:customer_name;size:255"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(16,2);not null"`
	Status       string          `gorm:"size:20;not null;default:'pending'"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string          `gorm:"column:order_id;size:36;not null;index"`
	ProductID string          `gorm:"column:product_id;size:36;index"`
	Name      string          `gorm:"size:255;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

func FromOrder(userID string, o store.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return Order{
		ID:           o.ID,
		UserID:       userID,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		Status:       string(o.Status),
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}

func (o Order) Domain() store.Order {
	items := make([]store.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = store.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return store.Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Items:        items,
		TotalAmount:  o.TotalAmount,
		Status:       store.OrderStatus(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}
