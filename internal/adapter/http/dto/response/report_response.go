package response

import (
	"pdv_xpto/internal/usecase"
)

// EstimatedProfit fields across these responses are margin-based
// approximations, not exact figures; the json name keeps the "estimated"
// label visible to every consumer.

type DailySalesResponse struct {
	Date            string  `json:"date"`
	TotalSales      float64 `json:"total_sales"`
	TotalRevenue    float64 `json:"total_revenue"`
	EstimatedProfit float64 `json:"estimated_profit"`
	SalesCount      int     `json:"sales_count"`
}

func FromDailySales(rollup []usecase.DailySales) []DailySalesResponse {
	out := make([]DailySalesResponse, 0, len(rollup))
	for _, d := range rollup {
		out = append(out, DailySalesResponse{
			Date:            d.Date,
			TotalSales:      roundMoney(d.TotalSales),
			TotalRevenue:    roundMoney(d.TotalRevenue),
			EstimatedProfit: roundMoney(d.EstimatedProfit),
			SalesCount:      d.SalesCount,
		})
	}
	return out
}

type TopProductResponse struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int     `json:"sales_count"`
}

func FromTopProducts(top []usecase.TopProduct) []TopProductResponse {
	out := make([]TopProductResponse, 0, len(top))
	for _, tp := range top {
		out = append(out, TopProductResponse{
			ProductName:   tp.ProductName,
			TotalQuantity: tp.TotalQuantity,
			TotalRevenue:  roundMoney(tp.TotalRevenue),
			SalesCount:    tp.SalesCount,
		})
	}
	return out
}

type PeriodStatsResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	EstimatedProfit float64 `json:"estimated_profit"`
	TotalSales      int     `json:"total_sales"`
	AvgTicket       float64 `json:"avg_ticket"`
}

func FromPeriodStats(stats usecase.PeriodStats) PeriodStatsResponse {
	return PeriodStatsResponse{
		TotalRevenue:    roundMoney(stats.TotalRevenue),
		EstimatedProfit: roundMoney(stats.EstimatedProfit),
		TotalSales:      stats.TotalSales,
		AvgTicket:       roundMoney(stats.AvgTicket),
	}
}
