package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pdv_xpto/internal/adapter/http/handlers/mocks"
	"pdv_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func buildReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)
	r := gin.New()
	r.GET("/v1/reports/daily", h.DailySales)
	r.GET("/v1/reports/top-products", h.TopProducts)
	r.GET("/v1/reports/period-stats", h.PeriodStats)
	return r, uc
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandler_DailySales(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing period", func(t *testing.T) {
		r, _ := buildReportRouter(t)
		if w := get(r, "/v1/reports/daily"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		r, _ := buildReportRouter(t)
		if w := get(r, "/v1/reports/daily?start=2026-08-10&end=2026-08-01"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expands dates to full day bounds", func(t *testing.T) {
		r, uc := buildReportRouter(t)

		wantStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
		uc.EXPECT().DailyRollup(gomock.Any(), wantStart, wantEnd).Return([]usecase.DailySales{
			{Date: "2026-08-01", TotalSales: 100, TotalRevenue: 100, EstimatedProfit: 30, SalesCount: 2},
		}, nil)

		w := get(r, "/v1/reports/daily?start=2026-08-01&end=2026-08-02")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["date"] != "2026-08-01" || body[0]["estimated_profit"] != 30.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		r, uc := buildReportRouter(t)
		uc.EXPECT().DailyRollup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))
		if w := get(r, "/v1/reports/daily?start=2026-08-01&end=2026-08-02"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_TopProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		r, _ := buildReportRouter(t)
		if w := get(r, "/v1/reports/top-products?start=2026-08-01&end=2026-08-02&limit=-1"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards parsed limit", func(t *testing.T) {
		r, uc := buildReportRouter(t)
		uc.EXPECT().TopProducts(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return([]usecase.TopProduct{
			{ProductName: "Arroz 5kg", TotalQuantity: 3, TotalRevenue: 75, SalesCount: 2},
		}, nil)

		w := get(r, "/v1/reports/top-products?start=2026-08-01&end=2026-08-02&limit=3")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["product_name"] != "Arroz 5kg" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("omitted limit defaults downstream", func(t *testing.T) {
		r, uc := buildReportRouter(t)
		uc.EXPECT().TopProducts(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(nil, nil)

		w := get(r, "/v1/reports/top-products?start=2026-08-01&end=2026-08-02")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReportHandler_PeriodStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, uc := buildReportRouter(t)
		uc.EXPECT().PeriodStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.PeriodStats{
			TotalRevenue:    160,
			EstimatedProfit: 48,
			TotalSales:      2,
			AvgTicket:       80,
		}, nil)

		w := get(r, "/v1/reports/period-stats?start=2026-08-01&end=2026-08-31")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_revenue"] != 160.0 || body["avg_ticket"] != 80.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid period from usecase", func(t *testing.T) {
		r, uc := buildReportRouter(t)
		uc.EXPECT().PeriodStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.PeriodStats{}, usecase.ErrInvalidPeriod)

		if w := get(r, "/v1/reports/period-stats?start=2026-08-01&end=2026-08-31"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
