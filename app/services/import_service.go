package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/calc"
	"github.com/jmarinco/go-inventario/app/utils/parse"
	"github.com/shopspring/decimal"
)

// TemplateFileName is the download name for the generated example file.
const TemplateFileName = "plantilla_inteligente.csv"

// Fixed positional columns: Name, Brand, Category, Stock, Price, SKU, Status.
const (
	colName = iota
	colBrand
	colCategory
	colStock
	colPrice
	colSKU
	colStatus
)

// ImportOutcome is what a parsed file yields: fully formed products, the
// categories synthesized for names not seen before, and the rows that were
// dropped with their reasons. A malformed file never fails as a whole.
type ImportOutcome struct {
	Products      []store.Product
	NewCategories []store.CategoryConfig
	Skipped       []parse.SkippedRow
}

// ImportService turns raw CSV content into bulk-insert payloads for the
// store. It does not mutate the store itself; callers hand the outcome to
// BulkAddProducts / BulkAddCategories.
type ImportService struct{}

func NewImportService() *ImportService { return &ImportService{} }

// Parse runs one synchronous pass over the file content. existing is the
// current category catalog for case-insensitive reuse; inventoryCount seeds
// the SKU sequence so generated SKUs within one batch do not collide with
// each other or with prior inventory.
func (s *ImportService) Parse(content string, existing []store.CategoryConfig, inventoryCount int) ImportOutcome {
	rows, skipped := parse.Content(content)
	outcome := ImportOutcome{Skipped: skipped}

	// lowercased name -> resolved category, spanning existing and batch-new
	resolved := make(map[string]store.CategoryConfig, len(existing))
	for _, c := range existing {
		resolved[strings.ToLower(c.Name)] = c
	}

	now := time.Now()
	for _, row := range rows {
		name := field(row.Fields, colName)
		code, displayName := parse.DecomposeName(name)
		if displayName == "" {
			outcome.Skipped = append(outcome.Skipped, parse.SkippedRow{
				Number: row.Number,
				Line:   strings.Join(row.Fields, ","),
				Reason: "empty product name",
			})
			continue
		}

		category := s.resolveCategory(field(row.Fields, colCategory), resolved, &outcome)

		stock, err := strconv.Atoi(field(row.Fields, colStock))
		if err != nil || stock < 0 {
			stock = 0
		}
		price, err := decimal.NewFromString(field(row.Fields, colPrice))
		if err != nil {
			price = decimal.Zero
		}

		sku := field(row.Fields, colSKU)
		if sku == "" {
			sku = code
		}
		if sku == "" {
			seq := inventoryCount + len(outcome.Products) + 1
			sku = fmt.Sprintf("%s%03d", category.Prefix, seq)
		}

		entry := now
		outcome.Products = append(outcome.Products, store.Product{
			ID:        uuid.New().String(),
			Name:      displayName,
			Brand:     field(row.Fields, colBrand),
			Category:  category.Name,
			Tags:      parse.InferTags(field(row.Fields, colStatus)),
			SKU:       sku,
			Cost:      calc.EstimateCost(price),
			Price:     price,
			Stock:     stock,
			ImageURL:  store.PlaceholderImageURL,
			CreatedAt: now,
			EntryDate: &entry,
		})
	}
	return outcome
}

// resolveCategory reuses an existing category by case-insensitive name or
// synthesizes one with the default margin and a 3-letter uppercase prefix.
// Synthesized categories are deduplicated within the batch.
func (s *ImportService) resolveCategory(name string, resolved map[string]store.CategoryConfig, outcome *ImportOutcome) store.CategoryConfig {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "General"
	}
	if c, ok := resolved[strings.ToLower(name)]; ok {
		return c
	}

	c := store.CategoryConfig{
		ID:     uuid.New().String(),
		Name:   name,
		Prefix: categoryPrefix(name),
		Margin: decimal.NewFromFloat(store.DefaultCategoryMargin),
		Color:  store.DefaultCategoryColor,
	}
	resolved[strings.ToLower(name)] = c
	outcome.NewCategories = append(outcome.NewCategories, c)
	return c
}

func categoryPrefix(name string) string {
	letters := []rune(strings.ToUpper(name))
	if len(letters) > 3 {
		letters = letters[:3]
	}
	return string(letters)
}

func field(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

// Template produces the downloadable example file: the header row plus two
// rows matching the expected column order.
func (s *ImportService) Template() string {
	lines := []string{
		"Nombre,Marca,Categoría,Stock,Precio,SKU,Estado",
		`"Taladro Inalámbrico, 20V",Truper,Herramientas,10,1250.00,HER001,Activo`,
		"OL002 - Olla de Acero,Vasconia,Cocina,5,450.00,,Oferta",
	}
	return strings.Join(lines, "\n") + "\n"
}
