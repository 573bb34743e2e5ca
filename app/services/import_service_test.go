package services

import (
	"strings"
	"testing"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullRow(t *testing.T) {
	content := "Taladro 20V,Truper,Herramientas,10,1250.00,HER001,Activo"

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.Products, 1)
	p := outcome.Products[0]
	assert.Equal(t, "Taladro 20V", p.Name)
	assert.Equal(t, "Truper", p.Brand)
	assert.Equal(t, "Herramientas", p.Category)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, "1250.00", p.Price.StringFixed(2))
	assert.Equal(t, "875.00", p.Cost.StringFixed(2))
	assert.Equal(t, "HER001", p.SKU)
	assert.Equal(t, store.PlaceholderImageURL, p.ImageURL)
	assert.NotNil(t, p.EntryDate)
}

func TestParseDecomposedNameProvidesSKU(t *testing.T) {
	content := "OL002 - Olla de Acero,Vasconia,Cocina,5,450.00,,Oferta"

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.Products, 1)
	p := outcome.Products[0]
	assert.Equal(t, "Olla de Acero", p.Name)
	assert.Equal(t, "OL002", p.SKU)
	assert.Equal(t, []string{"Oferta"}, p.Tags)
}

func TestParseGeneratedSKUSequence(t *testing.T) {
	content := strings.Join([]string{
		"Olla,Vasconia,Cocina,5,450.00",
		"Sartén,Tramontina,Cocina,3,300.00",
	}, "\n")

	outcome := NewImportService().Parse(content, nil, 7)

	require.Len(t, outcome.Products, 2)
	assert.Equal(t, "COC008", outcome.Products[0].SKU)
	assert.Equal(t, "COC009", outcome.Products[1].SKU)
}

func TestParseCategorySynthesis(t *testing.T) {
	content := "Olla,Vasconia,Cocina,5,450.00"

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.NewCategories, 1)
	c := outcome.NewCategories[0]
	assert.Equal(t, "Cocina", c.Name)
	assert.Equal(t, "COC", c.Prefix)
	assert.Equal(t, store.DefaultCategoryColor, c.Color)
	assert.Equal(t, "0.30", c.Margin.StringFixed(2))
}

func TestParseCategoryDedupWithinBatch(t *testing.T) {
	content := strings.Join([]string{
		"Camisa,Zara,ropa,5,200.00",
		"Pantalón,Levis,ROPA,3,600.00",
	}, "\n")

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.NewCategories, 1)
	assert.Equal(t, "ropa", outcome.NewCategories[0].Name)
	assert.Equal(t, "ropa", outcome.Products[0].Category)
	assert.Equal(t, "ropa", outcome.Products[1].Category)
}

func TestParseReusesExistingCategory(t *testing.T) {
	existing := []store.CategoryConfig{
		{ID: "cat-1", Name: "Cocina", Prefix: "KIT", Margin: decimal.NewFromFloat(0.45)},
	}
	content := "Olla,Vasconia,cocina,5,450.00"

	outcome := NewImportService().Parse(content, existing, 0)

	assert.Empty(t, outcome.NewCategories)
	assert.Equal(t, "Cocina", outcome.Products[0].Category)
}

func TestParseBlankCategoryFallsBackToGeneral(t *testing.T) {
	content := "Olla,Vasconia,,5,450.00"

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.NewCategories, 1)
	assert.Equal(t, "General", outcome.NewCategories[0].Name)
}

func TestParseInvalidNumbersDefaultToZero(t *testing.T) {
	content := "Olla,Vasconia,Cocina,muchos,caro,OL001"

	outcome := NewImportService().Parse(content, nil, 0)

	require.Len(t, outcome.Products, 1)
	assert.Equal(t, 0, outcome.Products[0].Stock)
	assert.True(t, outcome.Products[0].Price.IsZero())
}

func TestParseSkipsEmptyNameRow(t *testing.T) {
	content := ",Vasconia,Cocina,5,450.00"

	outcome := NewImportService().Parse(content, nil, 0)

	assert.Empty(t, outcome.Products)
	require.Len(t, outcome.Skipped, 1)
	assert.Equal(t, "empty product name", outcome.Skipped[0].Reason)
}

func TestParseSparseRowsReported(t *testing.T) {
	content := "Olla,Vasconia,Cocina,5,450.00\nsolo,dos"

	outcome := NewImportService().Parse(content, nil, 0)

	assert.Len(t, outcome.Products, 1)
	require.Len(t, outcome.Skipped, 1)
	assert.Equal(t, 2, outcome.Skipped[0].Number)
}

func TestTemplateRoundTrips(t *testing.T) {
	svc := NewImportService()

	outcome := svc.Parse(svc.Template(), nil, 0)

	// The header row has enough populated cells to parse as a product; the
	// format treats it as data on purpose.
	require.Len(t, outcome.Products, 3)
	assert.Equal(t, "Taladro Inalámbrico, 20V", outcome.Products[1].Name)
	assert.Equal(t, "Olla de Acero", outcome.Products[2].Name)
	assert.Equal(t, "OL002", outcome.Products[2].SKU)
}
