package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend rejects every write, to exercise the local-wins contract.
type failingBackend struct {
	NoopBackend
}

var errRemote = errors.New("remote unavailable")

func (failingBackend) InsertProduct(context.Context, Product) error  { return errRemote }
func (failingBackend) UpdateProduct(context.Context, Product) error  { return errRemote }
func (failingBackend) InsertOrder(context.Context, Order) error      { return errRemote }
func (failingBackend) UpdateOrder(context.Context, Order) error      { return errRemote }
func (failingBackend) RecordOfferClaim(context.Context) error        { return errRemote }
func (failingBackend) SaveSettings(context.Context, AppSettings) error {
	return errRemote
}

// recordingBackend captures what the store pushed remotely.
type recordingBackend struct {
	NoopBackend
	savedSettings []AppSettings
	updated       []Product
}

func (b *recordingBackend) SaveSettings(_ context.Context, s AppSettings) error {
	b.savedSettings = append(b.savedSettings, s)
	return nil
}

func (b *recordingBackend) UpdateProduct(_ context.Context, p Product) error {
	b.updated = append(b.updated, p)
	return nil
}

func authedStore(backend Backend) *Store {
	gate := NewGate(false, true)
	gate.SetSession("owner-1")
	return New(gate, backend, LogSyncPolicy{})
}

func demoStore() *Store {
	return New(NewGate(true, false), nil, nil)
}

func waitSync(t *testing.T, ch <-chan SyncOutcome) (SyncOutcome, bool) {
	t.Helper()
	select {
	case out, ok := <-ch:
		return out, ok
	case <-time.After(2 * time.Second):
		t.Fatal("sync outcome never arrived")
		return SyncOutcome{}, false
	}
}

func TestAddProductVisibleBeforeSyncResolves(t *testing.T) {
	s := authedStore(failingBackend{})

	mut, err := s.AddProduct(Product{Name: "Olla", Price: decimal.NewFromInt(450)})
	require.NoError(t, err)
	require.NotEmpty(t, mut.Applied.ID)

	// Local phase is already done; the remote failure must not undo it.
	p, ok := s.ProductByID(mut.Applied.ID)
	assert.True(t, ok)
	assert.Equal(t, "Olla", p.Name)

	out, ok := waitSync(t, mut.Sync)
	require.True(t, ok)
	assert.ErrorIs(t, out.Err, errRemote)
	assert.Equal(t, "insert", out.Op)

	_, stillThere := s.ProductByID(mut.Applied.ID)
	assert.True(t, stillThere, "failed sync must not roll back the local phase")
}

func TestAddProductPrepends(t *testing.T) {
	s := demoStore()
	first, _ := s.AddProduct(Product{Name: "Olla"})
	second, _ := s.AddProduct(Product{Name: "Sartén"})

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, second.Applied.ID, products[0].ID)
	assert.Equal(t, first.Applied.ID, products[1].ID)
}

func TestGateDeniesWithoutSession(t *testing.T) {
	gate := NewGate(false, true)
	s := New(gate, NoopBackend{}, nil)

	_, err := s.AddProduct(Product{Name: "Olla"})
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, s.Products(), "denied action must not mutate anything")
	assert.True(t, gate.AuthPromptRequested())

	gate.SetSession("owner-1")
	_, err = s.AddProduct(Product{Name: "Olla"})
	assert.NoError(t, err)
	assert.False(t, gate.AuthPromptRequested(), "login clears the prompt")
}

func TestDemoModeBypassesGateAndClosesSync(t *testing.T) {
	s := demoStore()

	mut, err := s.AddProduct(Product{Name: "Olla"})
	require.NoError(t, err)

	_, ok := <-mut.Sync
	assert.False(t, ok, "demo mode closes the sync channel with no outcome")
}

func TestImageURLFallback(t *testing.T) {
	s := demoStore()

	mut, _ := s.AddProduct(Product{Name: "Olla", ImageURL: "n/a"})
	assert.Equal(t, PlaceholderImageURL, mut.Applied.ImageURL)

	long := "https://example.com/olla.jpg"
	mut, _ = s.AddProduct(Product{Name: "Sartén", ImageURL: long})
	assert.Equal(t, long, mut.Applied.ImageURL)

	short := " x "
	upd, _ := s.UpdateProduct(mut.Applied.ID, ProductPatch{ImageURL: &short})
	assert.Equal(t, PlaceholderImageURL, upd.Applied.ImageURL)
}

func TestStockNeverNegative(t *testing.T) {
	s := demoStore()
	mut, _ := s.AddProduct(Product{Name: "Olla", Stock: 1})

	dec, _ := s.DecrementStock(mut.Applied.ID)
	assert.Equal(t, 0, dec.Applied.Stock)

	dec, _ = s.DecrementStock(mut.Applied.ID)
	assert.Equal(t, 0, dec.Applied.Stock, "decrement clamps at zero")

	neg := -5
	upd, _ := s.UpdateProduct(mut.Applied.ID, ProductPatch{Stock: &neg})
	assert.Equal(t, 0, upd.Applied.Stock, "patch clamps at zero")

	inc, _ := s.IncrementStock(mut.Applied.ID)
	assert.Equal(t, 1, inc.Applied.Stock)
}

func TestUpdateProductUnknownIDIsNoop(t *testing.T) {
	s := demoStore()
	name := "x"
	mut, err := s.UpdateProduct("missing", ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, mut.Applied.ID)

	_, ok := <-mut.Sync
	assert.False(t, ok)
}

func TestMoveProduct(t *testing.T) {
	s := demoStore()
	folder, _ := s.AddFolder(Folder{Name: "Bodega"})
	p, _ := s.AddProduct(Product{Name: "Olla"})

	moved, _ := s.MoveProduct(p.Applied.ID, &folder.Applied.ID)
	require.NotNil(t, moved.Applied.FolderID)
	assert.Equal(t, folder.Applied.ID, *moved.Applied.FolderID)

	moved, _ = s.MoveProduct(p.Applied.ID, nil)
	assert.Nil(t, moved.Applied.FolderID, "nil target moves back to root")
}

func TestInternalCategoryForcesZeroMargin(t *testing.T) {
	s := demoStore()

	mut, _ := s.AddCategory(CategoryConfig{
		Name:       "Uso Interno",
		Prefix:     "int",
		Margin:     decimal.NewFromFloat(0.30),
		IsInternal: true,
	})
	assert.Equal(t, "INT", mut.Applied.Prefix)
	assert.True(t, mut.Applied.Margin.IsZero())

	public, _ := s.AddCategory(CategoryConfig{Name: "Cocina", Margin: decimal.NewFromFloat(0.30)})
	internal := true
	upd, _ := s.UpdateCategory(public.Applied.ID, CategoryPatch{IsInternal: &internal})
	assert.True(t, upd.Applied.Margin.IsZero(), "flipping internal zeroes the margin")
}

func TestCreateOrderIsNotGated(t *testing.T) {
	// Buyers have no merchant session; checkout must work while the gate
	// would deny merchant actions.
	gate := NewGate(false, true)
	s := New(gate, NoopBackend{}, nil)

	mut, err := s.CreateOrder("Ana", []OrderItem{
		{ProductID: "p1", Name: "Olla", Quantity: 2, Price: decimal.NewFromInt(450)},
	})
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, mut.Applied.Status)
	assert.Equal(t, "900", mut.Applied.TotalAmount.String())
	assert.False(t, gate.AuthPromptRequested())

	_, err = s.CompleteOrder(mut.Applied.ID)
	assert.ErrorIs(t, err, ErrAuthRequired, "transitions stay merchant-only")
}

func TestCompleteOrderDecrementsStockClamped(t *testing.T) {
	backend := &recordingBackend{}
	s := authedStore(backend)
	p, _ := s.AddProduct(Product{Name: "Olla", Stock: 3})

	order, _ := s.CreateOrder("Ana", []OrderItem{
		{ProductID: p.Applied.ID, Name: "Olla", Quantity: 5, Price: decimal.NewFromInt(450)},
	})

	done, err := s.CompleteOrder(order.Applied.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, done.Applied.Status)

	got, _ := s.ProductByID(p.Applied.ID)
	assert.Equal(t, 0, got.Stock, "completing clamps stock at zero")

	out, ok := waitSync(t, done.Sync)
	require.True(t, ok)
	require.NoError(t, out.Err)
	require.NotEmpty(t, backend.updated)
	assert.Equal(t, 0, backend.updated[len(backend.updated)-1].Stock)
}

func TestCancelOrderLeavesStockAlone(t *testing.T) {
	s := demoStore()
	p, _ := s.AddProduct(Product{Name: "Olla", Stock: 3})
	order, _ := s.CreateOrder("Ana", []OrderItem{
		{ProductID: p.Applied.ID, Name: "Olla", Quantity: 2, Price: decimal.NewFromInt(450)},
	})

	cancelled, err := s.CancelOrder(order.Applied.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, cancelled.Applied.Status)

	got, _ := s.ProductByID(p.Applied.ID)
	assert.Equal(t, 3, got.Stock)
}

func TestOrderStatusesAreTerminal(t *testing.T) {
	s := demoStore()
	p, _ := s.AddProduct(Product{Name: "Olla", Stock: 10})
	order, _ := s.CreateOrder("Ana", []OrderItem{
		{ProductID: p.Applied.ID, Name: "Olla", Quantity: 2, Price: decimal.NewFromInt(450)},
	})

	_, _ = s.CompleteOrder(order.Applied.ID)

	again, err := s.CompleteOrder(order.Applied.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Applied.ID, "second completion is a no-op")

	got, _ := s.ProductByID(p.Applied.ID)
	assert.Equal(t, 8, got.Stock, "stock moves exactly once")

	flip, _ := s.CancelOrder(order.Applied.ID)
	assert.Empty(t, flip.Applied.ID, "completed orders cannot be cancelled")
}

func TestClaimOfferAlwaysConfirms(t *testing.T) {
	s := authedStore(failingBackend{})

	mut, err := s.ClaimOffer()
	require.NoError(t, err)
	assert.True(t, mut.Applied.OfferClaimed)
	assert.Equal(t, "pro", mut.Applied.PlanTier)

	out, ok := waitSync(t, mut.Sync)
	require.True(t, ok)
	assert.Error(t, out.Err)
	assert.True(t, s.Settings().OfferClaimed, "claim sticks locally regardless of the remote outcome")
}

func TestUpdateSettingsIsLocalUntilSaved(t *testing.T) {
	backend := &recordingBackend{}
	s := authedStore(backend)

	name := "Ferretería La Esquina"
	settings, err := s.UpdateSettings(SettingsPatch{CompanyName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, settings.CompanyName)
	assert.Empty(t, backend.savedSettings, "editing issues no remote write")

	mut, err := s.SaveSettings()
	require.NoError(t, err)
	_, ok := waitSync(t, mut.Sync)
	require.True(t, ok)
	require.Len(t, backend.savedSettings, 1)
	assert.Equal(t, name, backend.savedSettings[0].CompanyName)
}

func TestLoadInitialKeepsStateOnFetchFailure(t *testing.T) {
	gate := NewGate(false, true)
	gate.SetSession("owner-1")
	s := New(gate, failingFetchBackend{}, nil)

	s.LoadInitial(context.Background())

	assert.Empty(t, s.Products())
	assert.Equal(t, DefaultSettings().CompanyName, s.Settings().CompanyName)
}

type failingFetchBackend struct {
	NoopBackend
}

func (failingFetchBackend) FetchProducts(context.Context) ([]Product, error) {
	return nil, errRemote
}

func (failingFetchBackend) FetchSettings(context.Context) (*AppSettings, error) {
	return nil, errRemote
}
