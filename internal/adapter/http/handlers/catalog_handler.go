package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "salon_campeche/internal/adapter/http/dto/response"
	"salon_campeche/internal/usecase"
	"salon_campeche/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog and the predefined
// packages.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services := h.usecase.ListServices(c.Request.Context())
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// ListPackages returns the predefined packages; with ?guest_count=N each one
// carries a fit hint for that guest count.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	guestCount := 0
	if raw := c.Query("guest_count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid guest_count", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		guestCount = parsed
	}

	offers := h.usecase.ListPackages(c.Request.Context(), guestCount)
	c.JSON(http.StatusOK, response.FromPackageOffers(offers))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
