package services

import (
	"time"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/format"
	"github.com/shopspring/decimal"
)

// ReportService aggregates the basic merchant numbers: inventory valuation,
// order totals, stagnant stock and ABC classes. Pure reads over store
// snapshots.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

type ReportSummary struct {
	ProductCount    int    `json:"productCount"`
	TotalUnits      int    `json:"totalUnits"`
	InventoryCost   string `json:"inventoryCost"`
	InventoryRetail string `json:"inventoryRetail"`
	PotentialProfit string `json:"potentialProfit"`

	PendingOrders    int    `json:"pendingOrders"`
	CompletedOrders  int    `json:"completedOrders"`
	CancelledOrders  int    `json:"cancelledOrders"`
	CompletedRevenue string `json:"completedRevenue"`

	StagnantCount int            `json:"stagnantCount"`
	ABCCounts     map[string]int `json:"abcCounts"`
}

func (s *ReportService) Summary(now time.Time) ReportSummary {
	settings := s.store.Settings()
	products := s.store.Products()
	orders := s.store.Orders()

	costTotal := decimal.Zero
	retailTotal := decimal.Zero
	units := 0
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.Stock))
		costTotal = costTotal.Add(p.Cost.Mul(qty))
		retailTotal = retailTotal.Add(p.Price.Mul(qty))
		units += p.Stock
	}

	summary := ReportSummary{
		ProductCount:    len(products),
		TotalUnits:      units,
		InventoryCost:   format.Money(costTotal, settings.Currency),
		InventoryRetail: format.Money(retailTotal, settings.Currency),
		PotentialProfit: format.Money(retailTotal.Sub(costTotal), settings.Currency),
		ABCCounts:       map[string]int{"A": 0, "B": 0, "C": 0},
	}

	revenue := decimal.Zero
	for _, o := range orders {
		switch o.Status {
		case store.OrderStatusPending:
			summary.PendingOrders++
		case store.OrderStatusCompleted:
			summary.CompletedOrders++
			revenue = revenue.Add(o.TotalAmount)
		case store.OrderStatusCancelled:
			summary.CancelledOrders++
		}
	}
	summary.CompletedRevenue = format.Money(revenue, settings.Currency)

	summary.StagnantCount = len(s.store.StagnantProducts(now))
	for _, class := range s.store.ABCClassification() {
		summary.ABCCounts[class]++
	}
	return summary
}
