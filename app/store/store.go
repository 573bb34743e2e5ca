package store

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the single source of truth for all entity collections. Every
// mutating action runs in two phases: a synchronous local mutation under the
// store mutex, then a fire-and-forget remote write through the Backend. The
// local phase is never rolled back when the remote phase fails.
//
// Store instances are injectable; tests build isolated ones with whatever
// Backend and SyncPolicy they need.
type Store struct {
	mu      sync.RWMutex
	gate    *Gate
	backend Backend
	policy  SyncPolicy

	products   []Product
	folders    []Folder
	categories []CategoryConfig
	orders     []Order
	settings   AppSettings

	currentFolderID *string
}

func New(gate *Gate, backend Backend, policy SyncPolicy) *Store {
	if backend == nil {
		backend = NoopBackend{}
	}
	if policy == nil {
		policy = LogSyncPolicy{}
	}
	return &Store{
		gate:     gate,
		backend:  backend,
		policy:   policy,
		settings: DefaultSettings(),
	}
}

func (s *Store) Gate() *Gate { return s.gate }

// LoadInitial fetches all remote collections in parallel and populates the
// store. Fetch errors are logged and leave the corresponding collection at
// its current value; this layer does not distinguish "empty" from "failed".
func (s *Store) LoadInitial(ctx context.Context) {
	if s.gate.DemoMode() {
		return
	}

	var (
		wg         sync.WaitGroup
		products   []Product
		folders    []Folder
		categories []CategoryConfig
		orders     []Order
		claimed    bool
		settings   *AppSettings
	)

	wg.Add(6)
	go func() {
		defer wg.Done()
		var err error
		if products, err = s.backend.FetchProducts(ctx); err != nil {
			log.Printf("LoadInitial: products fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if folders, err = s.backend.FetchFolders(ctx); err != nil {
			log.Printf("LoadInitial: folders fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if categories, err = s.backend.FetchCategories(ctx); err != nil {
			log.Printf("LoadInitial: categories fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if claimed, err = s.backend.FetchOfferClaimed(ctx); err != nil {
			log.Printf("LoadInitial: offer claim fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if orders, err = s.backend.FetchOrders(ctx); err != nil {
			log.Printf("LoadInitial: orders fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if settings, err = s.backend.FetchSettings(ctx); err != nil {
			log.Printf("LoadInitial: settings fetch failed: %v", err)
		}
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(products) > 0 {
		s.products = products
	}
	if len(folders) > 0 {
		s.folders = folders
	}
	if len(categories) > 0 {
		s.categories = categories
	}
	if len(orders) > 0 {
		s.orders = orders
	}
	if settings != nil {
		s.settings = *settings
	}
	s.settings.OfferClaimed = s.settings.OfferClaimed || claimed
}

// dispatch runs the remote phase of a mutation. In demo mode the returned
// channel is closed immediately; otherwise one goroutine issues the write,
// hands failures to the SyncPolicy, and reports the outcome.
func (s *Store) dispatch(op, entity, id string, write func(ctx context.Context) error) <-chan SyncOutcome {
	if s.gate.DemoMode() {
		return closedSync()
	}
	ch := make(chan SyncOutcome, 1)
	go func() {
		out := SyncOutcome{Op: op, Entity: entity, ID: id, Err: write(context.Background())}
		if out.Err != nil {
			s.policy.HandleFailure(out)
		}
		ch <- out
		close(ch)
	}()
	return ch
}

func normalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < minImageURLLen {
		return PlaceholderImageURL
	}
	return raw
}

func prepareProduct(p Product) Product {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.ImageURL = normalizeImageURL(p.ImageURL)
	return p
}

// AddProduct prepends to the inventory, then syncs.
func (s *Store) AddProduct(p Product) (Mutation[Product], error) {
	if !s.gate.Allow() {
		return Mutation[Product]{}, ErrAuthRequired
	}
	p = prepareProduct(p)

	s.mu.Lock()
	s.products = append([]Product{p}, s.products...)
	s.mu.Unlock()

	return Mutation[Product]{
		Applied: p,
		Sync: s.dispatch("insert", "product", p.ID, func(ctx context.Context) error {
			return s.backend.InsertProduct(ctx, p)
		}),
	}, nil
}

// BulkAddProducts prepends a batch (import pipeline entry point).
func (s *Store) BulkAddProducts(ps []Product) (Mutation[[]Product], error) {
	if !s.gate.Allow() {
		return Mutation[[]Product]{}, ErrAuthRequired
	}
	prepared := make([]Product, len(ps))
	for i, p := range ps {
		prepared[i] = prepareProduct(p)
	}

	s.mu.Lock()
	s.products = append(prepared, s.products...)
	s.mu.Unlock()

	return Mutation[[]Product]{
		Applied: prepared,
		Sync: s.dispatch("bulk-insert", "product", "", func(ctx context.Context) error {
			return s.backend.InsertProducts(ctx, prepared)
		}),
	}, nil
}

// ProductPatch carries the fields UpdateProduct may change. Nil means
// "leave as is".
type ProductPatch struct {
	Name             *string
	Category         *string
	Brand            *string
	Tags             *[]string
	SKU              *string
	Cost             *decimal.Decimal
	Price            *decimal.Decimal
	Stock            *int
	ImageURL         *string
	Description      *string
	FolderID         **string
	EntryDate        **time.Time
	SupplierWarranty **time.Time
	ABCClass         *string
}

func (p *Product) apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	if patch.ImageURL != nil {
		p.ImageURL = normalizeImageURL(*patch.ImageURL)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.FolderID != nil {
		p.FolderID = *patch.FolderID
	}
	if patch.EntryDate != nil {
		p.EntryDate = *patch.EntryDate
	}
	if patch.SupplierWarranty != nil {
		p.SupplierWarranty = *patch.SupplierWarranty
	}
	if patch.ABCClass != nil {
		p.ABCClass = *patch.ABCClass
	}
}

// UpdateProduct merges the patch into the matching record. Unknown IDs are a
// no-op locally and remotely.
func (s *Store) UpdateProduct(id string, patch ProductPatch) (Mutation[Product], error) {
	if !s.gate.Allow() {
		return Mutation[Product]{}, ErrAuthRequired
	}

	s.mu.Lock()
	var updated *Product
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].apply(patch)
			cp := s.products[i]
			updated = &cp
			break
		}
	}
	s.mu.Unlock()

	if updated == nil {
		return Mutation[Product]{Sync: closedSync()}, nil
	}
	p := *updated
	return Mutation[Product]{
		Applied: p,
		Sync: s.dispatch("update", "product", id, func(ctx context.Context) error {
			return s.backend.UpdateProduct(ctx, p)
		}),
	}, nil
}

func (s *Store) adjustStock(id string, delta int) (Mutation[Product], error) {
	if !s.gate.Allow() {
		return Mutation[Product]{}, ErrAuthRequired
	}

	s.mu.Lock()
	var updated *Product
	for i := range s.products {
		if s.products[i].ID == id {
			next := s.products[i].Stock + delta
			if next < 0 {
				next = 0
			}
			s.products[i].Stock = next
			cp := s.products[i]
			updated = &cp
			break
		}
	}
	s.mu.Unlock()

	if updated == nil {
		return Mutation[Product]{Sync: closedSync()}, nil
	}
	p := *updated
	return Mutation[Product]{
		Applied: p,
		Sync: s.dispatch("update", "product", id, func(ctx context.Context) error {
			return s.backend.UpdateProduct(ctx, p)
		}),
	}, nil
}

func (s *Store) IncrementStock(id string) (Mutation[Product], error) { return s.adjustStock(id, 1) }

// DecrementStock clamps at zero; stock is never negative.
func (s *Store) DecrementStock(id string) (Mutation[Product], error) { return s.adjustStock(id, -1) }

func (s *Store) DeleteProduct(id string) (Mutation[string], error) {
	if !s.gate.Allow() {
		return Mutation[string]{}, ErrAuthRequired
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return Mutation[string]{
		Applied: id,
		Sync: s.dispatch("delete", "product", id, func(ctx context.Context) error {
			return s.backend.DeleteProduct(ctx, id)
		}),
	}, nil
}

// MoveProduct reassigns the folder reference; nil targets the root.
func (s *Store) MoveProduct(id string, targetFolderID *string) (Mutation[Product], error) {
	return s.UpdateProduct(id, ProductPatch{FolderID: &targetFolderID})
}

func (s *Store) AddFolder(f Folder) (Mutation[Folder], error) {
	if !s.gate.Allow() {
		return Mutation[Folder]{}, ErrAuthRequired
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	s.mu.Lock()
	s.folders = append(s.folders, f)
	s.mu.Unlock()

	return Mutation[Folder]{
		Applied: f,
		Sync: s.dispatch("insert", "folder", f.ID, func(ctx context.Context) error {
			return s.backend.InsertFolder(ctx, f)
		}),
	}, nil
}

// FolderPatch mirrors ProductPatch for folders.
type FolderPatch struct {
	Name       *string
	Color      *string
	Prefix     *string
	Margin     *decimal.Decimal
	IsInternal *bool
	ParentID   **string
}

func (s *Store) UpdateFolder(id string, patch FolderPatch) (Mutation[Folder], error) {
	if !s.gate.Allow() {
		return Mutation[Folder]{}, ErrAuthRequired
	}

	s.mu.Lock()
	var updated *Folder
	for i := range s.folders {
		if s.folders[i].ID != id {
			continue
		}
		f := &s.folders[i]
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Color != nil {
			f.Color = *patch.Color
		}
		if patch.Prefix != nil {
			f.Prefix = *patch.Prefix
		}
		if patch.Margin != nil {
			f.Margin = *patch.Margin
		}
		if patch.IsInternal != nil {
			f.IsInternal = *patch.IsInternal
		}
		if patch.ParentID != nil {
			f.ParentID = *patch.ParentID
		}
		cp := *f
		updated = &cp
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return Mutation[Folder]{Sync: closedSync()}, nil
	}
	f := *updated
	return Mutation[Folder]{
		Applied: f,
		Sync: s.dispatch("update", "folder", id, func(ctx context.Context) error {
			return s.backend.UpdateFolder(ctx, f)
		}),
	}, nil
}

// MoveFolder reparents a folder. No cycle detection is performed; the
// breadcrumb walk is bounded so a cycle corrupts navigation but cannot hang
// queries.
func (s *Store) MoveFolder(id string, targetFolderID *string) (Mutation[Folder], error) {
	return s.UpdateFolder(id, FolderPatch{ParentID: &targetFolderID})
}

func (s *Store) DeleteFolder(id string) (Mutation[string], error) {
	if !s.gate.Allow() {
		return Mutation[string]{}, ErrAuthRequired
	}

	s.mu.Lock()
	for i := range s.folders {
		if s.folders[i].ID == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return Mutation[string]{
		Applied: id,
		Sync: s.dispatch("delete", "folder", id, func(ctx context.Context) error {
			return s.backend.DeleteFolder(ctx, id)
		}),
	}, nil
}

func (s *Store) AddCategory(c CategoryConfig) (Mutation[CategoryConfig], error) {
	if !s.gate.Allow() {
		return Mutation[CategoryConfig]{}, ErrAuthRequired
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Prefix = strings.ToUpper(c.Prefix)
	if c.IsInternal {
		c.Margin = decimal.Zero
	}

	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()

	return Mutation[CategoryConfig]{
		Applied: c,
		Sync: s.dispatch("insert", "category", c.ID, func(ctx context.Context) error {
			return s.backend.InsertCategory(ctx, c)
		}),
	}, nil
}

// BulkAddCategories appends the categories synthesized by an import batch.
func (s *Store) BulkAddCategories(cs []CategoryConfig) (Mutation[[]CategoryConfig], error) {
	if !s.gate.Allow() {
		return Mutation[[]CategoryConfig]{}, ErrAuthRequired
	}
	prepared := make([]CategoryConfig, len(cs))
	for i, c := range cs {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.Prefix = strings.ToUpper(c.Prefix)
		prepared[i] = c
	}

	s.mu.Lock()
	s.categories = append(s.categories, prepared...)
	s.mu.Unlock()

	return Mutation[[]CategoryConfig]{
		Applied: prepared,
		Sync: s.dispatch("bulk-insert", "category", "", func(ctx context.Context) error {
			return s.backend.InsertCategories(ctx, prepared)
		}),
	}, nil
}

type CategoryPatch struct {
	Name       *string
	Prefix     *string
	Margin     *decimal.Decimal
	Color      *string
	IsInternal *bool
}

func (s *Store) UpdateCategory(id string, patch CategoryPatch) (Mutation[CategoryConfig], error) {
	if !s.gate.Allow() {
		return Mutation[CategoryConfig]{}, ErrAuthRequired
	}

	s.mu.Lock()
	var updated *CategoryConfig
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Prefix != nil {
			c.Prefix = strings.ToUpper(*patch.Prefix)
		}
		if patch.Margin != nil {
			c.Margin = *patch.Margin
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.IsInternal != nil {
			c.IsInternal = *patch.IsInternal
			if c.IsInternal {
				c.Margin = decimal.Zero
			}
		}
		cp := *c
		updated = &cp
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return Mutation[CategoryConfig]{Sync: closedSync()}, nil
	}
	c := *updated
	return Mutation[CategoryConfig]{
		Applied: c,
		Sync: s.dispatch("update", "category", id, func(ctx context.Context) error {
			return s.backend.UpdateCategory(ctx, c)
		}),
	}, nil
}

func (s *Store) DeleteCategory(id string) (Mutation[string], error) {
	if !s.gate.Allow() {
		return Mutation[string]{}, ErrAuthRequired
	}

	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return Mutation[string]{
		Applied: id,
		Sync: s.dispatch("delete", "category", id, func(ctx context.Context) error {
			return s.backend.DeleteCategory(ctx, id)
		}),
	}, nil
}

// CreateOrder registers a pending order from the public catalog checkout.
// Buyers have no merchant session, so this path is not gated; only the
// merchant-facing transitions are.
func (s *Store) CreateOrder(customerName string, items []OrderItem) (Mutation[Order], error) {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	o := Order{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		Items:        items,
		TotalAmount:  total,
		Status:       OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.orders = append([]Order{o}, s.orders...)
	s.mu.Unlock()

	return Mutation[Order]{
		Applied: o,
		Sync: s.dispatch("insert", "order", o.ID, func(ctx context.Context) error {
			return s.backend.InsertOrder(ctx, o)
		}),
	}, nil
}

// CompleteOrder moves a pending order to completed and decrements stock for
// every item, clamping at zero. Completed and cancelled are terminal.
func (s *Store) CompleteOrder(id string) (Mutation[Order], error) {
	return s.finishOrder(id, OrderStatusCompleted, true)
}

// CancelOrder moves a pending order to cancelled with no stock effect.
func (s *Store) CancelOrder(id string) (Mutation[Order], error) {
	return s.finishOrder(id, OrderStatusCancelled, false)
}

func (s *Store) finishOrder(id string, status OrderStatus, touchStock bool) (Mutation[Order], error) {
	if !s.gate.Allow() {
		return Mutation[Order]{}, ErrAuthRequired
	}

	s.mu.Lock()
	var updated *Order
	var touched []Product
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status != OrderStatusPending {
			s.mu.Unlock()
			return Mutation[Order]{Sync: closedSync()}, nil
		}
		s.orders[i].Status = status
		cp := s.orders[i]
		updated = &cp
		if touchStock {
			for _, it := range cp.Items {
				for j := range s.products {
					if s.products[j].ID == it.ProductID {
						next := s.products[j].Stock - it.Quantity
						if next < 0 {
							next = 0
						}
						s.products[j].Stock = next
						touched = append(touched, s.products[j])
						break
					}
				}
			}
		}
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return Mutation[Order]{Sync: closedSync()}, nil
	}
	o := *updated
	return Mutation[Order]{
		Applied: o,
		Sync: s.dispatch("update", "order", id, func(ctx context.Context) error {
			if err := s.backend.UpdateOrder(ctx, o); err != nil {
				return err
			}
			for _, p := range touched {
				if err := s.backend.UpdateProduct(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}),
	}, nil
}

// ClaimOffer flips the plan flag locally and best-effort records the claim.
// The confirmation is returned regardless of the remote outcome.
func (s *Store) ClaimOffer() (Mutation[AppSettings], error) {
	if !s.gate.Allow() {
		return Mutation[AppSettings]{}, ErrAuthRequired
	}

	s.mu.Lock()
	s.settings.OfferClaimed = true
	s.settings.PlanTier = "pro"
	applied := s.settings
	s.mu.Unlock()

	return Mutation[AppSettings]{
		Applied: applied,
		Sync: s.dispatch("insert", "claimed_offer", "", func(ctx context.Context) error {
			return s.backend.RecordOfferClaim(ctx)
		}),
	}, nil
}

// SettingsPatch carries partial settings edits.
type SettingsPatch struct {
	CompanyName      *string
	Currency         *string
	TaxRate          *decimal.Decimal
	WhatsAppNumber   *string
	WhatsAppGreeting *string
	StagnantDays     *int
	PlanTier         *string
}

// UpdateSettings merges the patch locally only; SaveSettings issues the
// remote commit. The split lets forms edit live without a write per
// keystroke.
func (s *Store) UpdateSettings(patch SettingsPatch) (AppSettings, error) {
	if !s.gate.Allow() {
		return AppSettings{}, ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.CompanyName != nil {
		s.settings.CompanyName = *patch.CompanyName
	}
	if patch.Currency != nil {
		s.settings.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		s.settings.TaxRate = *patch.TaxRate
	}
	if patch.WhatsAppNumber != nil {
		s.settings.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.WhatsAppGreeting != nil {
		s.settings.WhatsAppGreeting = *patch.WhatsAppGreeting
	}
	if patch.StagnantDays != nil {
		s.settings.StagnantDays = *patch.StagnantDays
	}
	if patch.PlanTier != nil {
		s.settings.PlanTier = *patch.PlanTier
	}
	return s.settings, nil
}

// SaveSettings commits the current settings remotely.
func (s *Store) SaveSettings() (Mutation[AppSettings], error) {
	if !s.gate.Allow() {
		return Mutation[AppSettings]{}, ErrAuthRequired
	}

	s.mu.RLock()
	current := s.settings
	s.mu.RUnlock()

	return Mutation[AppSettings]{
		Applied: current,
		Sync: s.dispatch("update", "settings", "", func(ctx context.Context) error {
			return s.backend.SaveSettings(ctx, current)
		}),
	}, nil
}

// SetCurrentFolder records the folder the UI is navigating; Breadcrumbs
// walks from it.
func (s *Store) SetCurrentFolder(id *string) {
	s.mu.Lock()
	s.currentFolderID = id
	s.mu.Unlock()
}
