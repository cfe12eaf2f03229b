package handlers

import (
	"errors"
	"net/http"

	"shirtpay/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type CaptureHandler struct {
	service *payment.Service
}

func NewCaptureHandler(s *payment.Service) *CaptureHandler {
	return &CaptureHandler{service: s}
}

type captureRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Image  string  `json:"image"`
}

// Capture finalizes the payment, uploads the supplied image and responds
// with the hosted image URL.
func (h *CaptureHandler) Capture(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment_id"})
		return
	}

	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Capture(c.Request.Context(), paymentID, payment.CaptureRequest{
		Amount: req.Amount,
		Image:  req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image data received"})
		case errors.Is(err, payment.ErrNotCaptured):
			// Business-logic rejection, kept on 500 for compatibility.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment not captured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
