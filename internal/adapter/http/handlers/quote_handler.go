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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote calculator.
//
// The browser posts the full intake snapshot after every field mutation;
// computing a quote has no side effects, so both operations are POSTs over
// the same payload.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuote recomputes the quote for one intake snapshot. Validation
// failures are data, not transport errors: the response is still 200 with a
// null quote and the triggered rule messages.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	intake, err := payload.ToIntake()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	comp := h.usecase.Recompute(c.Request.Context(), intake)
	c.JSON(http.StatusOK, response.FromQuoteComputation(comp, intake.GuestCount))
}

// ShareQuote renders the WhatsApp handoff for the current intake. Unlike
// ComputeQuote this is a terminal action, so an intake without a valid quote
// is a 422.
func (h *QuoteHandler) ShareQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	intake, err := payload.ToIntake()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	link, err := h.usecase.ShareQuote(c.Request.Context(), intake)
	if err != nil {
		log.Printf("[quote][handler] share failed guest_count=%d err=%v", intake.GuestCount, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShareLink(link))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY", "Quote intake is incomplete", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteInvalid):
		return pkg.NewDomainErrorSimple("QUOTE_INVALID", "Quote intake has validation errors", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
