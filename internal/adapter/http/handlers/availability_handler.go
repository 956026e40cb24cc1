package handlers

import (
	"errors"
	"net/http"

	response "salon_campeche/internal/adapter/http/dto/response"
	"salon_campeche/internal/usecase"
	"salon_campeche/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the occupied-dates calendar. The check messages
// are shown verbatim to the visitor, hence the localized wording.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

func (h *AvailabilityHandler) ListUnavailable(c *gin.Context) {
	dates := h.usecase.ListUnavailable(c.Request.Context())
	c.JSON(http.StatusOK, response.FromDateAvailabilities(dates))
}

func (h *AvailabilityHandler) CheckDate(c *gin.Context) {
	availability, err := h.usecase.CheckDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDateAvailability(availability))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Selecciona una fecha válida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDateInPast):
		return pkg.NewDomainErrorSimple("DATE_IN_PAST", "La fecha no puede ser en el pasado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDateTooFarOut):
		return pkg.NewDomainErrorSimple("DATE_TOO_FAR", "Solo aceptamos reservas hasta 2 años en adelante", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
