package routes

import (
	"salon_campeche/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices     = "/services"
	PathPackages     = "/packages"
	PathQuotes       = "/quotes"
	PathContact      = "/contact"
	PathAvailability = "/availability"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	catalogHandler *handlers.CatalogHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	contactHandler *handlers.ContactHandler,
) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
	}

	rg.GET(PathPackages, catalogHandler.ListPackages)

	quotes := rg.Group(PathQuotes)
	{
		// Recomputation is idempotent; the browser re-posts the intake on
		// every field change.
		quotes.POST("", quoteHandler.ComputeQuote)
		quotes.POST("/share", quoteHandler.ShareQuote)
	}

	rg.POST(PathContact, contactHandler.SubmitContact)

	availability := rg.Group(PathAvailability)
	{
		availability.GET("", availabilityHandler.ListUnavailable)
		availability.GET("/:date", availabilityHandler.CheckDate)
	}
}
