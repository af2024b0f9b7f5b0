package routes

import (
	"log"
	"strconv"

	_ "pdv_xpto/docs" // This will be auto-generated
	"pdv_xpto/internal/adapter/http/handlers"
	"pdv_xpto/internal/adapter/persistence/repository"
	"pdv_xpto/internal/infrastructure/database"
	"pdv_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository.NewProductDynamoRepository(ddb)
	saleRepo := repository.NewSaleDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(saleRepo, productRepo, catalogUseCase)
	reportUseCase := usecase.NewReportUseCase(saleRepo)

	productHandler := handlers.NewProductHandler(catalogUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(catalogUseCase, checkoutUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPosRoutes(v1, productHandler, checkoutHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
