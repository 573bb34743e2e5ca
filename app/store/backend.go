package store

import "context"

// Backend is the remote persistence surface the store syncs against. The
// GORM implementation lives in app/repositories; demo mode uses NoopBackend.
// Every method is best-effort from the store's point of view: an error is
// handed to the SyncPolicy and never undoes the local phase.
type Backend interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchFolders(ctx context.Context) ([]Folder, error)
	FetchCategories(ctx context.Context) ([]CategoryConfig, error)
	FetchOfferClaimed(ctx context.Context) (bool, error)
	FetchOrders(ctx context.Context) ([]Order, error)
	FetchSettings(ctx context.Context) (*AppSettings, error)

	InsertProduct(ctx context.Context, p Product) error
	InsertProducts(ctx context.Context, ps []Product) error
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error

	InsertFolder(ctx context.Context, f Folder) error
	UpdateFolder(ctx context.Context, f Folder) error
	DeleteFolder(ctx context.Context, id string) error

	InsertCategory(ctx context.Context, c CategoryConfig) error
	InsertCategories(ctx context.Context, cs []CategoryConfig) error
	UpdateCategory(ctx context.Context, c CategoryConfig) error
	DeleteCategory(ctx context.Context, id string) error

	InsertOrder(ctx context.Context, o Order) error
	UpdateOrder(ctx context.Context, o Order) error

	SaveSettings(ctx context.Context, s AppSettings) error
	RecordOfferClaim(ctx context.Context) error
}

// NoopBackend backs demo mode: every fetch is empty and every write
// succeeds without touching anything.
type NoopBackend struct{}

func (NoopBackend) FetchProducts(context.Context) ([]Product, error)           { return nil, nil }
func (NoopBackend) FetchFolders(context.Context) ([]Folder, error)             { return nil, nil }
func (NoopBackend) FetchCategories(context.Context) ([]CategoryConfig, error)  { return nil, nil }
func (NoopBackend) FetchOfferClaimed(context.Context) (bool, error)            { return false, nil }
func (NoopBackend) FetchOrders(context.Context) ([]Order, error)               { return nil, nil }
func (NoopBackend) FetchSettings(context.Context) (*AppSettings, error)        { return nil, nil }
func (NoopBackend) InsertProduct(context.Context, Product) error               { return nil }
func (NoopBackend) InsertProducts(context.Context, []Product) error            { return nil }
func (NoopBackend) UpdateProduct(context.Context, Product) error               { return nil }
func (NoopBackend) DeleteProduct(context.Context, string) error                { return nil }
func (NoopBackend) InsertFolder(context.Context, Folder) error                 { return nil }
func (NoopBackend) UpdateFolder(context.Context, Folder) error                 { return nil }
func (NoopBackend) DeleteFolder(context.Context, string) error                 { return nil }
func (NoopBackend) InsertCategory(context.Context, CategoryConfig) error       { return nil }
func (NoopBackend) InsertCategories(context.Context, []CategoryConfig) error   { return nil }
func (NoopBackend) UpdateCategory(context.Context, CategoryConfig) error       { return nil }
func (NoopBackend) DeleteCategory(context.Context, string) error               { return nil }
func (NoopBackend) InsertOrder(context.Context, Order) error                   { return nil }
func (NoopBackend) UpdateOrder(context.Context, Order) error                   { return nil }
func (NoopBackend) SaveSettings(context.Context, AppSettings) error            { return nil }
func (NoopBackend) RecordOfferClaim(context.Context) error                     { return nil }
