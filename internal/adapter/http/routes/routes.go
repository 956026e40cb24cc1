package routes

import (
	"log"
	"strconv"
	"time"

	_ "salon_campeche/docs" // This will be auto-generated
	"salon_campeche/internal/adapter/http/handlers"
	repository2 "salon_campeche/internal/adapter/persistence/repository"
	"salon_campeche/internal/infrastructure/messaging"
	"salon_campeche/internal/usecase"

	"github.com/gin-contrib/cors"
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
	catalogRepo := repository2.NewStaticCatalogRepository()
	availabilityRepo := repository2.NewStaticAvailabilityRepository()
	whatsappGateway := messaging.NewWhatsAppGatewayFromEnv()

	quoteUseCase := usecase.NewQuoteUseCase(catalogRepo, whatsappGateway)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	availabilityUseCase := usecase.NewAvailabilityUseCase(availabilityRepo)
	contactUseCase := usecase.NewContactUseCase(whatsappGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, catalogHandler, availabilityHandler, contactHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The quote calculator runs in the marketing site's browser context.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}
