package repositories

import (
	"context"

	"github.com/jmarinco/go-inventario/app/models"
	"github.com/jmarinco/go-inventario/app/store"
)

// GormBackend implements store.Backend over the GORM repositories, scoped to
// one owner. All camelCase/snake_case translation happens here through the
// model mappers; the store never sees row shapes.
type GormBackend struct {
	userID     string
	products   ProductRepositoryImpl
	folders    FolderRepositoryImpl
	categories CategoryRepositoryImpl
	orders     OrderRepositoryImpl
	settings   SettingsRepositoryImpl
	offers     ClaimedOfferRepositoryImpl
}

func NewGormBackend(
	userID string,
	products ProductRepositoryImpl,
	folders FolderRepositoryImpl,
	categories CategoryRepositoryImpl,
	orders OrderRepositoryImpl,
	settings SettingsRepositoryImpl,
	offers ClaimedOfferRepositoryImpl,
) *GormBackend {
	return &GormBackend{
		userID:     userID,
		products:   products,
		folders:    folders,
		categories: categories,
		orders:     orders,
		settings:   settings,
		offers:     offers,
	}
}

func (b *GormBackend) FetchProducts(ctx context.Context) ([]store.Product, error) {
	records, err := b.products.GetAll(ctx, b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]store.Product, len(records))
	for i, r := range records {
		out[i] = r.Domain()
	}
	return out, nil
}

func (b *GormBackend) FetchFolders(ctx context.Context) ([]store.Folder, error) {
	records, err := b.folders.GetAll(ctx, b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]store.Folder, len(records))
	for i, r := range records {
		out[i] = r.Domain()
	}
	return out, nil
}

func (b *GormBackend) FetchCategories(ctx context.Context) ([]store.CategoryConfig, error) {
	records, err := b.categories.GetAll(ctx, b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]store.CategoryConfig, len(records))
	for i, r := range records {
		out[i] = r.Domain()
	}
	return out, nil
}

func (b *GormBackend) FetchOfferClaimed(ctx context.Context) (bool, error) {
	return b.offers.HasClaim(ctx, b.userID)
}

func (b *GormBackend) FetchOrders(ctx context.Context) ([]store.Order, error) {
	records, err := b.orders.GetAll(ctx, b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]store.Order, len(records))
	for i, r := range records {
		out[i] = r.Domain()
	}
	return out, nil
}

func (b *GormBackend) FetchSettings(ctx context.Context) (*store.AppSettings, error) {
	record, err := b.settings.Get(ctx, b.userID)
	if err != nil || record == nil {
		return nil, err
	}
	s := record.Domain()
	return &s, nil
}

func (b *GormBackend) InsertProduct(ctx context.Context, p store.Product) error {
	record := models.FromProduct(b.userID, p)
	return b.products.Insert(ctx, &record)
}

func (b *GormBackend) InsertProducts(ctx context.Context, ps []store.Product) error {
	records := make([]models.Product, len(ps))
	for i, p := range ps {
		records[i] = models.FromProduct(b.userID, p)
	}
	return b.products.InsertBatch(ctx, records)
}

func (b *GormBackend) UpdateProduct(ctx context.Context, p store.Product) error {
	record := models.FromProduct(b.userID, p)
	return b.products.Update(ctx, &record)
}

func (b *GormBackend) DeleteProduct(ctx context.Context, id string) error {
	return b.products.Delete(ctx, b.userID, id)
}

func (b *GormBackend) InsertFolder(ctx context.Context, f store.Folder) error {
	record := models.FromFolder(b.userID, f)
	return b.folders.Insert(ctx, &record)
}

func (b *GormBackend) UpdateFolder(ctx context.Context, f store.Folder) error {
	record := models.FromFolder(b.userID, f)
	return b.folders.Update(ctx, &record)
}

func (b *GormBackend) DeleteFolder(ctx context.Context, id string) error {
	return b.folders.Delete(ctx, b.userID, id)
}

func (b *GormBackend) InsertCategory(ctx context.Context, c store.CategoryConfig) error {
	record := models.FromCategory(b.userID, c)
	return b.categories.Insert(ctx, &record)
}

func (b *GormBackend) InsertCategories(ctx context.Context, cs []store.CategoryConfig) error {
	records := make([]models.Category, len(cs))
	for i, c := range cs {
		records[i] = models.FromCategory(b.userID, c)
	}
	return b.categories.InsertBatch(ctx, records)
}

func (b *GormBackend) UpdateCategory(ctx context.Context, c store.CategoryConfig) error {
	record := models.FromCategory(b.userID, c)
	return b.categories.Update(ctx, &record)
}

func (b *GormBackend) DeleteCategory(ctx context.Context, id string) error {
	return b.categories.Delete(ctx, b.userID, id)
}

func (b *GormBackend) InsertOrder(ctx context.Context, o store.Order) error {
	record := models.FromOrder(b.userID, o)
	return b.orders.Insert(ctx, &record)
}

func (b *GormBackend) UpdateOrder(ctx context.Context, o store.Order) error {
	return b.orders.UpdateStatus(ctx, b.userID, o.ID, string(o.Status))
}

func (b *GormBackend) SaveSettings(ctx context.Context, s store.AppSettings) error {
	record := models.FromSettings(b.userID, s)
	return b.settings.Save(ctx, &record)
}

func (b *GormBackend) RecordOfferClaim(ctx context.Context) error {
	return b.offers.RecordClaim(ctx, b.userID)
}
