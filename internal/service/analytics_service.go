package service

import (
	"context"
	"fmt"

	"finbay/internal/cache"
	"finbay/internal/models"
	"finbay/internal/repository"

	"github.com/xuri/excelize/v2"
)

// RevenuePoint is one entry in a seller's revenue series, one per sale.
type RevenuePoint struct {
	Date  string  `json:"date"`
	Item  string  `json:"item"`
	Value float64 `json:"value"`
}

// CategoryRevenue aggregates a seller's revenue within one category. Every
// category appears in the breakdown even when it has no sales.
type CategoryRevenue struct {
	Category models.ItemCategory `json:"category"`
	Value    float64             `json:"value"`
	Sales    int                 `json:"sales"`
}

// SellerStats is the full analytics payload for a seller.
type SellerStats struct {
	Total      float64           `json:"total"`
	Sales      int               `json:"sales"`
	Series     []RevenuePoint    `json:"series"`
	Categories []CategoryRevenue `json:"categories"`
}

// AnalyticsService computes seller revenue analytics from the purchase ledger.
type AnalyticsService struct {
	txnRepo repository.TransactionRepository
}

func NewAnalyticsService(txnRepo repository.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{txnRepo: txnRepo}
}

// Stats returns the seller's revenue series and zero-filled category
// breakdown. Results are cached briefly; the ledger is append-only so brief
// staleness is harmless.
func (s *AnalyticsService) Stats(ctx context.Context, sellerID uint) (*SellerStats, error) {
	return cache.Aside(ctx, cache.SellerStatsKey(sellerID), "seller_stats", cache.SellerStatsTTL,
		func(ctx context.Context) (*SellerStats, error) {
			return s.compute(ctx, sellerID)
		})
}

func (s *AnalyticsService) compute(ctx context.Context, sellerID uint) (*SellerStats, error) {
	txns, err := s.txnRepo.AllBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	stats := &SellerStats{
		Series:     make([]RevenuePoint, 0, len(txns)),
		Categories: make([]CategoryRevenue, 0, len(models.Categories)),
	}

	byCategory := make(map[models.ItemCategory]*CategoryRevenue, len(models.Categories))
	for _, c := range models.Categories {
		stats.Categories = append(stats.Categories, CategoryRevenue{Category: c})
		byCategory[c] = &stats.Categories[len(stats.Categories)-1]
	}

	for _, txn := range txns {
		stats.Total += txn.Value
		stats.Sales++
		stats.Series = append(stats.Series, RevenuePoint{
			Date:  txn.CreatedAt.Format("2006-01-02"),
			Item:  txn.Item.Name,
			Value: txn.Value,
		})
		if agg, ok := byCategory[txn.Item.Category]; ok {
			agg.Value += txn.Value
			agg.Sales++
		}
	}

	return stats, nil
}

// ExportXLSX renders the seller's analytics as a spreadsheet with a sales
// sheet and a category summary sheet.
func (s *AnalyticsService) ExportXLSX(ctx context.Context, sellerID uint) ([]byte, error) {
	stats, err := s.Stats(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const salesSheet = "Sales"
	f.SetSheetName(f.GetSheetName(0), salesSheet)

	headers := []string{"Date", "Item", "Revenue"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(salesSheet, col+"1", h)
	}
	for i, p := range stats.Series {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(salesSheet, "A"+row, p.Date)
		f.SetCellValue(salesSheet, "B"+row, p.Item)
		f.SetCellValue(salesSheet, "C"+row, p.Value)
	}
	totalRow := fmt.Sprint(len(stats.Series) + 3)
	f.SetCellValue(salesSheet, "A"+totalRow, "Total")
	f.SetCellValue(salesSheet, "C"+totalRow, stats.Total)

	const categorySheet = "Categories"
	if _, err := f.NewSheet(categorySheet); err != nil {
		return nil, models.NewInternalError(err)
	}
	f.SetCellValue(categorySheet, "A1", "Category")
	f.SetCellValue(categorySheet, "B1", "Sales")
	f.SetCellValue(categorySheet, "C1", "Revenue")
	for i, c := range stats.Categories {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(categorySheet, "A"+row, string(c.Category))
		f.SetCellValue(categorySheet, "B"+row, c.Sales)
		f.SetCellValue(categorySheet, "C"+row, c.Value)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return buf.Bytes(), nil
}
