package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"pdv_xpto/internal/usecase/interfaces"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// assumedProfitMargin is the fixed margin used when true per-item cost
// cannot be joined in. Every figure derived from it is an estimate and is
// surfaced as such (EstimatedProfit), never as an exact number.
const assumedProfitMargin = 0.30

const defaultTopProductsLimit = 5

// DailySales is one calendar day's rollup of persisted sales.

type DailySales struct {
	Date            string
	TotalSales      float64
	TotalRevenue    float64
	EstimatedProfit float64
	SalesCount      int
}

// TopProduct aggregates sale items by product name within a period.

type TopProduct struct {
	ProductName   string
	TotalQuantity float64
	TotalRevenue  float64
	SalesCount    int
}

// PeriodStats summarizes a date window for the dashboard header.

type PeriodStats struct {
	TotalRevenue    float64
	EstimatedProfit float64
	TotalSales      int
	AvgTicket       float64
}

// IReportUseCase folds persisted sales into display rollups. It shares the
// accumulator's rounding rule: full precision here, two-decimal rounding
// only at the presentation layer.

type IReportUseCase interface {
	DailyRollup(ctx context.Context, start, end time.Time) ([]DailySales, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProduct, error)
	PeriodStats(ctx context.Context, start, end time.Time) (PeriodStats, error)
}

type ReportUseCase struct {
	saleRepo interfaces.ISaleRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(saleRepo interfaces.ISaleRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo}
}

// DailyRollup groups sales by calendar date (UTC), summing final amounts
// into revenue and counting sales per day. Profit is estimated from the
// fixed assumed margin over each sale's item subtotals; true per-item cost
// is not recorded at sale time.
func (u *ReportUseCase) DailyRollup(ctx context.Context, start, end time.Time) ([]DailySales, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	sales, err := u.saleRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		log.Printf("[report][usecase] daily rollup: listing sales failed err=%v", err)
		return nil, err
	}
	items, err := u.saleRepo.ListItemsByPeriod(ctx, start, end)
	if err != nil {
		log.Printf("[report][usecase] daily rollup: listing items failed err=%v", err)
		return nil, err
	}

	itemSubtotals := make(map[string]float64, len(sales))
	for _, it := range items {
		itemSubtotals[it.SaleID] += it.Subtotal
	}

	byDate := make(map[string]*DailySales)
	for _, s := range sales {
		key := s.CreatedAt.UTC().Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DailySales{Date: key}
			byDate[key] = day
		}
		day.SalesCount++
		day.TotalRevenue += s.FinalAmount
		day.TotalSales += s.TotalAmount
		estimatedCost := itemSubtotals[s.ID] * (1 - assumedProfitMargin)
		day.EstimatedProfit += s.FinalAmount - estimatedCost
	}

	rollup := make([]DailySales, 0, len(byDate))
	for _, day := range byDate {
		rollup = append(rollup, *day)
	}
	sort.Slice(rollup, func(i, j int) bool { return rollup[i].Date < rollup[j].Date })
	return rollup, nil
}

// TopProducts groups sale items by product name, sums quantity and revenue,
// and returns the top entries by revenue. Ties keep first-encountered order
// (stable sort, no secondary key).
func (u *ReportUseCase) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProduct, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	items, err := u.saleRepo.ListItemsByPeriod(ctx, start, end)
	if err != nil {
		log.Printf("[report][usecase] top products: listing items failed err=%v", err)
		return nil, err
	}

	byName := make(map[string]*TopProduct)
	var ordered []*TopProduct
	for _, it := range items {
		tp, ok := byName[it.ProductName]
		if !ok {
			tp = &TopProduct{ProductName: it.ProductName}
			byName[it.ProductName] = tp
			ordered = append(ordered, tp)
		}
		tp.TotalQuantity += it.Quantity
		tp.TotalRevenue += it.Subtotal
		tp.SalesCount++
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].TotalRevenue > ordered[j].TotalRevenue })
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	top := make([]TopProduct, 0, len(ordered))
	for _, tp := range ordered {
		top = append(top, *tp)
	}
	return top, nil
}

// PeriodStats totals the window: revenue, sales count, average ticket and
// the margin-based profit estimate.
func (u *ReportUseCase) PeriodStats(ctx context.Context, start, end time.Time) (PeriodStats, error) {
	if err := validatePeriod(start, end); err != nil {
		return PeriodStats{}, err
	}

	sales, err := u.saleRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		log.Printf("[report][usecase] period stats: listing sales failed err=%v", err)
		return PeriodStats{}, err
	}

	stats := PeriodStats{TotalSales: len(sales)}
	for _, s := range sales {
		stats.TotalRevenue += s.FinalAmount
	}
	if stats.TotalSales > 0 {
		stats.AvgTicket = stats.TotalRevenue / float64(stats.TotalSales)
	}
	stats.EstimatedProfit = stats.TotalRevenue * assumedProfitMargin
	return stats, nil
}

func validatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return ErrInvalidPeriod
	}
	return nil
}
