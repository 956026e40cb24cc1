package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "salon_campeche/internal/adapter/http/dto/response"
	"salon_campeche/internal/adapter/http/handlers/mocks"
	"salon_campeche/internal/domain/entities"
	"salon_campeche/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_ComputeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown venue type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"guest_count":80,"venue_type":"terraza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete intake still returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuote)

		uc.EXPECT().Recompute(gomock.Any(), gomock.Any()).Return(entities.QuoteComputation{
			Ready:  false,
			Errors: []entities.ValidationError{{Field: "guestCount", Message: "El número de invitados es requerido y debe ser mayor a 0"}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"event_type":"Boda"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body response.QuoteComputationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Ready || body.Quote != nil {
			t.Fatalf("unexpected body %+v", body)
		}
		if len(body.Errors) != 1 || body.Errors[0].Field != "guestCount" {
			t.Fatalf("unexpected errors %v", body.Errors)
		}
		if body.Recommendations == nil {
			t.Fatal("recommendations must serialize as an empty array")
		}
	})

	t.Run("complete intake returns the quote with derivations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuote)

		quote := entities.Quote{
			ID:             "q-1",
			Items:          []entities.QuoteItem{{ServiceID: entities.ServiceVenueFirstFloor, ServiceName: "Renta Primer Piso", Quantity: 1, UnitPrice: 4000, Total: 4000}},
			Subtotal:       4000,
			Total:          4000,
			AdvancePayment: 2000,
			GuestCount:     80,
		}
		uc.EXPECT().Recompute(gomock.Any(), gomock.Any()).Return(entities.QuoteComputation{Ready: true, Quote: &quote})

		payload := `{"guest_count":80,"event_type":"Cumpleaños","venue_type":"primer-piso"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body response.QuoteComputationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Quote == nil || body.Quote.QuoteID != "q-1" || body.Quote.AdvancePayment != 2000 {
			t.Fatalf("unexpected quote %+v", body.Quote)
		}
		if body.Derived == nil || body.Derived.TablesNeeded != 8 || body.Derived.MinimumStaff != 4 {
			t.Fatalf("unexpected derivations %+v", body.Derived)
		}
	})
}

func TestQuoteHandler_ShareQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("intake not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/share", h.ShareQuote)

		uc.EXPECT().ShareQuote(gomock.Any(), gomock.Any()).Return(entities.ShareLink{}, usecase.ErrQuoteNotReady)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/share", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("intake invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/share", h.ShareQuote)

		uc.EXPECT().ShareQuote(gomock.Any(), gomock.Any()).Return(entities.ShareLink{}, usecase.ErrQuoteInvalid)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/share", bytes.NewBufferString(`{"guest_count":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/share", h.ShareQuote)

		link := entities.ShareLink{URL: "https://wa.me/525581067082?text=hola", Message: "hola"}
		uc.EXPECT().ShareQuote(gomock.Any(), gomock.Any()).Return(link, nil)

		payload := `{"guest_count":80,"event_type":"Boda","venue_type":"primer-piso"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/share", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body response.ShareLinkResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.URL != link.URL || body.Message != link.Message {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
