package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClaimedOffer records that an owner took the plan offer. One row per claim
// event; presence of any row means the offer is claimed.
type ClaimedOffer struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;index"`
	CreatedAt time.Time
}

func (c *ClaimedOffer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
