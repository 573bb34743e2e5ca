package models

import (
	"time"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
)

// Settings is one row per owner.
type Settings struct {
	UserID           string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CompanyName      string          `gorm:"column:company_name;size:255"`
	Currency         string          `gorm:"size:10"`
	TaxRate          decimal.Decimal `gorm:"column:tax_rate;type:decimal(10,4);default:0.00"`
	WhatsappNumber   string          `gorm:"column:whatsapp_number;size:30"`
	WhatsappGreeting string          `gorm:"column:whatsapp_greeting;type:text"`
	StagnantDays     int             `gorm:"column:stagnant_days;default:60"`
	OfferClaimed     bool            `gorm:"column:offer_claimed;default:false"`
	PlanTier         string          `gorm:"column:plan_tier;size:20;default:'free'"`
	UpdatedAt        time.Time
}

func FromSettings(userID string, s store.AppSettings) Settings {
	return Settings{
		UserID:           userID,
		CompanyName:      s.CompanyName,
		Currency:         s.Currency,
		TaxRate:          s.TaxRate,
		WhatsappNumber:   s.WhatsAppNumber,
		WhatsappGreeting: s.WhatsAppGreeting,
		StagnantDays:     s.StagnantDays,
		OfferClaimed:     s.OfferClaimed,
		PlanTier:         s.PlanTier,
	}
}

func (s Settings) Domain() store.AppSettings {
	return store.AppSettings{
		CompanyName:      s.CompanyName,
		Currency:         s.Currency,
		TaxRate:          s.TaxRate,
		WhatsAppNumber:   s.WhatsappNumber,
		WhatsAppGreeting: s.WhatsappGreeting,
		StagnantDays:     s.StagnantDays,
		OfferClaimed:     s.OfferClaimed,
		PlanTier:         s.PlanTier,
	}
}
