package store

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PlaceholderImageURL is substituted whenever a product arrives without a
	// usable image. Persisted products never carry an empty image URL.
	PlaceholderImageURL = "https://placehold.co/400x400?text=Producto"

	// DefaultCategoryMargin is the fractional markup assigned to categories
	// synthesized during import.
	DefaultCategoryMargin = 0.30

	// DefaultCategoryColor is the display token for synthesized categories.
	DefaultCategoryColor = "slate"
)

// minImageURLLen guards against junk like "-" or "n/a" in image columns.
const minImageURLLen = 10

type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand,omitempty"`
	Tags             []string        `json:"tags"`
	SKU              string          `json:"sku"`
	Cost             decimal.Decimal `json:"cost"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ImageURL         string          `json:"imageUrl"`
	Description      string          `json:"description,omitempty"`
	Confidence       *float64        `json:"confidence,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	EntryDate        *time.Time      `json:"entryDate,omitempty"`
	SupplierWarranty *time.Time      `json:"supplierWarranty,omitempty"`
	FolderID         *string         `json:"folderId"`
	ABCClass         string          `json:"abcClass,omitempty"`
}

type Folder struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ParentID   *string         `json:"parentId"`
	Color      string          `json:"color,omitempty"`
	Prefix     string          `json:"prefix,omitempty"`
	Margin     decimal.Decimal `json:"margin"`
	IsInternal bool            `json:"isInternal"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CategoryConfig is a named pricing/classification policy. Products reference
// it by Name, not by ID; renaming a category orphans those references.
type CategoryConfig struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Prefix     string          `json:"prefix"`
	Margin     decimal.Decimal `json:"margin"`
	Color      string          `json:"color"`
	IsInternal bool            `json:"isInternal"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type AppSettings struct {
	CompanyName      string          `json:"companyName"`
	Currency         string          `json:"currency"`
	TaxRate          decimal.Decimal `json:"taxRate"`
	WhatsAppNumber   string          `json:"whatsappNumber"`
	WhatsAppGreeting string          `json:"whatsappGreeting"`
	StagnantDays     int             `json:"stagnantDays"`
	OfferClaimed     bool            `json:"offerClaimed"`
	PlanTier         string          `json:"planTier"`
}

// DefaultSettings is the state before any remote settings load.
func DefaultSettings() AppSettings {
	return AppSettings{
		CompanyName:      "Mi Negocio",
		Currency:         "MXN",
		TaxRate:          decimal.NewFromFloat(0.16),
		WhatsAppGreeting: "Hola, quiero hacer un pedido:",
		StagnantDays:     60,
		PlanTier:         "free",
	}
}

// FilterState is an ephemeral view query. It is never persisted.
type FilterState struct {
	Query      string
	Categories []string
	Tags       []string
	MinPrice   string
	MaxPrice   string
	MaxStock   *int
}
