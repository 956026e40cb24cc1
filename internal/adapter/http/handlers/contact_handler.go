package handlers

import (
	"errors"
	"log"
	"net/http"

	request "salon_campeche/internal/adapter/http/dto/request"
	response "salon_campeche/internal/adapter/http/dto/response"
	"salon_campeche/internal/usecase"
	"salon_campeche/pkg"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles the contact-page submission. "Submitting" only
// validates the form and returns a prefilled WhatsApp link; nothing is
// stored server-side.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	link, fieldErrs, err := h.usecase.PrepareContact(c.Request.Context(), payload.ToForm())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidContactForm) {
			c.JSON(http.StatusUnprocessableEntity, response.NewInvalidFormResponse(
				"INVALID_CONTACT_FORM", "Contact form has validation errors", fieldErrs))
			return
		}
		log.Printf("[contact][handler] submit failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShareLink(link))
}
