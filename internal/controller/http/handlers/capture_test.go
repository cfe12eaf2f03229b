package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shirtpay/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func captureEngine(t *testing.T) (*gin.Engine, *payment.MockGateway, *payment.MockUploader, *payment.MockImageRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockGateway := payment.NewMockGateway(ctrl)
	mockUploader := payment.NewMockUploader(ctrl)
	mockImages := payment.NewMockImageRepo(ctrl)

	service := payment.NewService(mockGateway, mockUploader, mockImages, slog.Default())
	handler := NewCaptureHandler(service)

	engine := gin.New()
	engine.POST("/api/capture/:payment_id", handler.Capture)

	return engine, mockGateway, mockUploader, mockImages
}

func postCapture(engine *gin.Engine, paymentID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/capture/"+paymentID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCaptureHandler_Capture(t *testing.T) {
	const secureURL = "https://media.example/custom_shirts/abc.png"

	captured := payment.Payment{ID: "pay_123", Amount: 49900, Currency: "INR", Status: payment.StatusCaptured}

	t.Run("should respond with message and image url on success", func(t *testing.T) {
		// given
		engine, mockGateway, mockUploader, mockImages := captureEngine(t)

		mockGateway.EXPECT().
			CapturePayment(gomock.Any(), "pay_123", int64(49900), "INR").
			Return(captured, nil)
		mockUploader.EXPECT().
			Upload(gomock.Any(), "data:image/png;base64,AAAA", "custom_shirts").
			Return(payment.Upload{SecureURL: secureURL}, nil)
		mockImages.EXPECT().
			Create(gomock.Any(), secureURL).
			Return(payment.Image{ID: "1", URL: secureURL}, nil)

		// when
		rec := postCapture(engine, "pay_123", `{"amount": 499, "image": "data:image/jpeg;base64,AAAA"}`)

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"message": "Payment successful and image uploaded", "imageUrl": "`+secureURL+`"}`,
			rec.Body.String())
	})

	t.Run("should respond 400 with fixed body when image is missing", func(t *testing.T) {
		// given
		engine, mockGateway, _, _ := captureEngine(t)

		mockGateway.EXPECT().
			CapturePayment(gomock.Any(), "pay_123", int64(49900), "INR").
			Return(captured, nil)

		// when
		rec := postCapture(engine, "pay_123", `{"amount": 499}`)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No image data received"}`, rec.Body.String())
	})

	t.Run("should respond 500 with fixed body when payment is not captured", func(t *testing.T) {
		// given
		engine, mockGateway, _, _ := captureEngine(t)

		mockGateway.EXPECT().
			CapturePayment(gomock.Any(), "pay_123", int64(49900), "INR").
			Return(payment.Payment{ID: "pay_123", Status: payment.StatusAuthorized}, nil)

		// when
		rec := postCapture(engine, "pay_123", `{"amount": 499, "image": "AAAA"}`)

		// then
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Payment not captured"}`, rec.Body.String())
	})

	t.Run("should respond 500 with error message on upstream failure", func(t *testing.T) {
		// given
		engine, mockGateway, _, _ := captureEngine(t)

		mockGateway.EXPECT().
			CapturePayment(gomock.Any(), "pay_123", int64(49900), "INR").
			Return(payment.Payment{}, errors.New("insufficient balance"))

		// when
		rec := postCapture(engine, "pay_123", `{"amount": 499, "image": "AAAA"}`)

		// then
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "insufficient balance")
	})

	t.Run("should respond 400 on invalid body without calling the gateway", func(t *testing.T) {
		// given
		engine, _, _, _ := captureEngine(t)

		// when
		rec := postCapture(engine, "pay_123", `{"amount": -1}`)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request body")
	})
}
