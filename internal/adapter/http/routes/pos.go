package routes

import (
	"pdv_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathSales    = "/sales"
	PathReports  = "/reports"
)

func addPosRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, checkoutHandler *handlers.CheckoutHandler, reportHandler *handlers.ReportHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/low-stock-count", productHandler.LowStockCount)
		products.PATCH("/:id/stock", productHandler.UpdateStock)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("", checkoutHandler.CreateSale)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/daily", reportHandler.DailySales)
		reports.GET("/top-products", reportHandler.TopProducts)
		reports.GET("/period-stats", reportHandler.PeriodStats)
	}
}
