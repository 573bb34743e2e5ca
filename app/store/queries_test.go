package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInventory(s *Store) map[string]string {
	ids := map[string]string{}
	add := func(key string, p Product) {
		mut, _ := s.AddProduct(p)
		ids[key] = mut.Applied.ID
	}

	add("martillo", Product{
		Name: "Martillo de Uña", Brand: "Truper", SKU: "FER001",
		Category: "Ferretería", Tags: []string{"Nuevo"},
		Price: decimal.NewFromInt(15), Stock: 10,
	})
	add("taladro", Product{
		Name: "Taladro 20V", Brand: "Makita", SKU: "FER002",
		Category: "Ferretería", Tags: []string{"Oferta"},
		Price: decimal.NewFromInt(1250), Stock: 3,
	})
	add("olla", Product{
		Name: "Olla de Acero", Brand: "Vasconia", SKU: "COC001",
		Category: "Cocina", Tags: []string{"Oferta"},
		Price: decimal.NewFromInt(18), Stock: 5,
	})
	return ids
}

func TestFilteredInventoryComposesAllFilters(t *testing.T) {
	s := demoStore()
	ids := seedInventory(s)

	keys := func(ps []Product) []string {
		var out []string
		for _, p := range ps {
			for k, id := range ids {
				if id == p.ID {
					out = append(out, k)
				}
			}
		}
		return out
	}

	// Category alone.
	got := s.FilteredInventory(FilterState{Categories: []string{"ferretería"}})
	assert.ElementsMatch(t, []string{"martillo", "taladro"}, keys(got))

	// Category AND price window: only the cheap hardware item survives.
	got = s.FilteredInventory(FilterState{
		Categories: []string{"Ferretería"},
		MinPrice:   "10",
		MaxPrice:   "20",
	})
	assert.ElementsMatch(t, []string{"martillo"}, keys(got))

	// The same price window without the category also admits the pot.
	got = s.FilteredInventory(FilterState{MinPrice: "10", MaxPrice: "20"})
	assert.ElementsMatch(t, []string{"martillo", "olla"}, keys(got))

	// Tag sets intersect case-insensitively.
	got = s.FilteredInventory(FilterState{Tags: []string{"oferta"}})
	assert.ElementsMatch(t, []string{"taladro", "olla"}, keys(got))

	// Query matches across name, SKU and brand.
	got = s.FilteredInventory(FilterState{Query: "makita"})
	assert.ElementsMatch(t, []string{"taladro"}, keys(got))
	got = s.FilteredInventory(FilterState{Query: "coc001"})
	assert.ElementsMatch(t, []string{"olla"}, keys(got))

	// Max stock cap.
	max := 5
	got = s.FilteredInventory(FilterState{MaxStock: &max})
	assert.ElementsMatch(t, []string{"taladro", "olla"}, keys(got))

	// Unparseable bounds impose no constraint.
	got = s.FilteredInventory(FilterState{MinPrice: "abc", MaxPrice: ""})
	assert.Len(t, got, 3)
}

func TestBreadcrumbsRootToLeaf(t *testing.T) {
	s := demoStore()
	root, _ := s.AddFolder(Folder{Name: "Bodega"})
	mid, _ := s.AddFolder(Folder{Name: "Estante A", ParentID: &root.Applied.ID})
	leaf, _ := s.AddFolder(Folder{Name: "Caja 3", ParentID: &mid.Applied.ID})

	trail := s.BreadcrumbsFrom(leaf.Applied.ID)
	require.Len(t, trail, 3)
	assert.Equal(t, "Bodega", trail[0].Name)
	assert.Equal(t, "Estante A", trail[1].Name)
	assert.Equal(t, "Caja 3", trail[2].Name)

	assert.Nil(t, s.Breadcrumbs(), "no current folder, no trail")
	s.SetCurrentFolder(&mid.Applied.ID)
	assert.Len(t, s.Breadcrumbs(), 2)
}

func TestBreadcrumbsTerminateOnCycle(t *testing.T) {
	s := demoStore()
	a, _ := s.AddFolder(Folder{Name: "A"})
	b, _ := s.AddFolder(Folder{Name: "B", ParentID: &a.Applied.ID})

	// Reparenting A under B creates a cycle; the walk must still return.
	_, err := s.MoveFolder(a.Applied.ID, &b.Applied.ID)
	require.NoError(t, err)

	trail := s.BreadcrumbsFrom(b.Applied.ID)
	assert.NotEmpty(t, trail)
	assert.LessOrEqual(t, len(trail), 3)
}

func TestStagnantProducts(t *testing.T) {
	s := demoStore()
	now := time.Now()
	old := now.AddDate(0, 0, -90)
	fresh := now.AddDate(0, 0, -10)

	stale, _ := s.AddProduct(Product{Name: "Polvo", Stock: 4, EntryDate: &old})
	_, _ = s.AddProduct(Product{Name: "Reciente", Stock: 4, EntryDate: &fresh})
	_, _ = s.AddProduct(Product{Name: "Vendido", Stock: 0, EntryDate: &old})
	_, _ = s.AddProduct(Product{Name: "Sin fecha", Stock: 4})

	got := s.StagnantProducts(now)
	require.Len(t, got, 1)
	assert.Equal(t, stale.Applied.ID, got[0].ID)
}

func TestABCClassification(t *testing.T) {
	s := demoStore()
	// Retail values 80 / 15 / 5 land exactly on the 80% and 95% cuts.
	a, _ := s.AddProduct(Product{Name: "A", Price: decimal.NewFromInt(80), Stock: 1})
	b, _ := s.AddProduct(Product{Name: "B", Price: decimal.NewFromInt(15), Stock: 1})
	c, _ := s.AddProduct(Product{Name: "C", Price: decimal.NewFromInt(5), Stock: 1})

	classes := s.ABCClassification()
	assert.Equal(t, "A", classes[a.Applied.ID])
	assert.Equal(t, "B", classes[b.Applied.ID])
	assert.Equal(t, "C", classes[c.Applied.ID])
}

func TestABCClassificationZeroTotal(t *testing.T) {
	s := demoStore()
	p, _ := s.AddProduct(Product{Name: "Sin valor", Price: decimal.Zero, Stock: 0})

	classes := s.ABCClassification()
	assert.Equal(t, "C", classes[p.Applied.ID])
}

func TestPublicCatalogHidesInternal(t *testing.T) {
	s := demoStore()
	_, _ = s.AddCategory(CategoryConfig{Name: "Uso Interno", IsInternal: true})
	hidden, _ := s.AddFolder(Folder{Name: "Mermas", IsInternal: true})

	visible, _ := s.AddProduct(Product{Name: "Olla", Category: "Cocina"})
	_, _ = s.AddProduct(Product{Name: "Escoba", Category: "uso interno"})
	_, _ = s.AddProduct(Product{Name: "Roto", Category: "Cocina", FolderID: &hidden.Applied.ID})

	catalog := s.PublicCatalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, visible.Applied.ID, catalog[0].ID)
}

func TestCategoryByNameIsCaseInsensitive(t *testing.T) {
	s := demoStore()
	_, _ = s.AddCategory(CategoryConfig{Name: "Cocina"})

	c, ok := s.CategoryByName("COCINA")
	assert.True(t, ok)
	assert.Equal(t, "Cocina", c.Name)

	_, ok = s.CategoryByName("Jardín")
	assert.False(t, ok)
}
