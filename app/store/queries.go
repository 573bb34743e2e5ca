package store

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot accessors return copies; callers never see the live slices.

func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Folders() []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

func (s *Store) Categories() []CategoryConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CategoryConfig, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Settings() AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) ProductByID(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) FolderByID(id string) (Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return Folder{}, false
}

func (s *Store) CategoryByName(name string) (CategoryConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return CategoryConfig{}, false
}

// Breadcrumbs walks parent pointers upward from the current folder and
// returns the root-to-leaf path. The walk is bounded by the folder count, so
// a corrupt or cyclic chain terminates instead of looping forever.
func (s *Store) Breadcrumbs() []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentFolderID == nil {
		return nil
	}
	return s.breadcrumbsFrom(*s.currentFolderID)
}

// BreadcrumbsFrom is Breadcrumbs anchored at an explicit folder.
func (s *Store) BreadcrumbsFrom(folderID string) []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.breadcrumbsFrom(folderID)
}

func (s *Store) breadcrumbsFrom(folderID string) []Folder {
	byID := make(map[string]Folder, len(s.folders))
	for _, f := range s.folders {
		byID[f.ID] = f
	}

	var trail []Folder
	id := folderID
	for steps := 0; steps <= len(s.folders); steps++ {
		f, ok := byID[id]
		if !ok {
			break
		}
		trail = append(trail, f)
		if f.ParentID == nil {
			break
		}
		id = *f.ParentID
	}

	// walked leaf-to-root; present root-to-leaf
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	return trail
}

// FilteredInventory applies, in order: case-insensitive substring match over
// name/SKU/brand, category-set membership, tag-set intersection, then a
// price clamp whose missing bounds default to [0, +inf). All active filters
// are AND-combined; empty sets impose no constraint.
func (s *Store) FilteredInventory(filter FilterState) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minPrice := decimal.Zero
	if filter.MinPrice != "" {
		if d, err := decimal.NewFromString(filter.MinPrice); err == nil {
			minPrice = d
		}
	}
	var maxPrice *decimal.Decimal
	if filter.MaxPrice != "" {
		if d, err := decimal.NewFromString(filter.MaxPrice); err == nil {
			maxPrice = &d
		}
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var out []Product
	for _, p := range s.products {
		if query != "" {
			haystack := strings.ToLower(p.Name + " " + p.SKU + " " + p.Brand)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if len(filter.Categories) > 0 && !containsFold(filter.Categories, p.Category) {
			continue
		}
		if len(filter.Tags) > 0 && !intersectsFold(filter.Tags, p.Tags) {
			continue
		}
		if p.Price.LessThan(minPrice) {
			continue
		}
		if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
			continue
		}
		if filter.MaxStock != nil && p.Stock > *filter.MaxStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func intersectsFold(want, have []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

// StagnantProducts flags items whose entry date is older than the configured
// threshold and still carry stock.
func (s *Store) StagnantProducts(now time.Time) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := now.AddDate(0, 0, -s.settings.StagnantDays)
	var out []Product
	for _, p := range s.products {
		if p.Stock == 0 || p.EntryDate == nil {
			continue
		}
		if p.EntryDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// ABCClassification ranks products by inventory retail value share:
// cumulative top 80% is class A, the next 15% B, the rest C. The result maps
// product ID to class and does not mutate the collection.
func (s *Store) ABCClassification() map[string]string {
	s.mu.RLock()
	products := make([]Product, len(s.products))
	copy(products, s.products)
	s.mu.RUnlock()

	type valued struct {
		id    string
		value decimal.Decimal
	}
	total := decimal.Zero
	vals := make([]valued, 0, len(products))
	for _, p := range products {
		v := p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
		vals = append(vals, valued{id: p.ID, value: v})
		total = total.Add(v)
	}
	out := make(map[string]string, len(vals))
	if total.IsZero() {
		for _, v := range vals {
			out[v.id] = "C"
		}
		return out
	}

	sort.SliceStable(vals, func(i, j int) bool {
		return vals[i].value.GreaterThan(vals[j].value)
	})

	aCut := total.Mul(decimal.NewFromFloat(0.80))
	bCut := total.Mul(decimal.NewFromFloat(0.95))
	running := decimal.Zero
	for _, v := range vals {
		running = running.Add(v.value)
		switch {
		case running.LessThanOrEqual(aCut):
			out[v.id] = "A"
		case running.LessThanOrEqual(bCut):
			out[v.id] = "B"
		default:
			out[v.id] = "C"
		}
	}
	return out
}

// PublicCatalog returns the storefront view: products outside internal
// categories and internal folders.
func (s *Store) PublicCatalog() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	internalCategories := make(map[string]bool)
	for _, c := range s.categories {
		if c.IsInternal {
			internalCategories[strings.ToLower(c.Name)] = true
		}
	}
	internalFolders := make(map[string]bool)
	for _, f := range s.folders {
		if f.IsInternal {
			internalFolders[f.ID] = true
		}
	}

	var out []Product
	for _, p := range s.products {
		if internalCategories[strings.ToLower(p.Category)] {
			continue
		}
		if p.FolderID != nil && internalFolders[*p.FolderID] {
			continue
		}
		out = append(out, p)
	}
	return out
}
