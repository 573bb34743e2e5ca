package models

import (
	"testing"
	"time"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductMappingRoundTrip(t *testing.T) {
	entry := time.Now().AddDate(0, 0, -5)
	folderID := "f-1"
	domain := store.Product{
		ID:        "p-1",
		Name:      "Olla de Acero",
		Brand:     "Vasconia",
		Category:  "Cocina",
		Tags:      []string{"Oferta", "Nuevo"},
		SKU:       "COC001",
		Cost:      decimal.NewFromInt(315),
		Price:     decimal.NewFromInt(450),
		Stock:     5,
		ImageURL:  "https://example.com/olla.jpg",
		EntryDate: &entry,
		FolderID:  &folderID,
		ABCClass:  "B",
	}

	row := FromProduct("owner-1", domain)
	assert.Equal(t, "owner-1", row.UserID)
	assert.Equal(t, "Oferta,Nuevo", row.Tags)

	back := row.Domain()
	assert.Equal(t, domain.ID, back.ID)
	assert.Equal(t, domain.Tags, back.Tags)
	assert.Equal(t, domain.SKU, back.SKU)
	assert.Equal(t, domain.ABCClass, back.ABCClass)
	assert.True(t, domain.Price.Equal(back.Price))
	assert.Equal(t, folderID, *back.FolderID)
}

func TestProductDomainEmptyTags(t *testing.T) {
	back := Product{ID: "p-1", Tags: ""}.Domain()
	assert.NotNil(t, back.Tags)
	assert.Empty(t, back.Tags)
}
