package handlers

import (
	"net/http"

	"shirtpay/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *payment.Service
}

func NewOrderHandler(s *payment.Service) *OrderHandler {
	return &OrderHandler{service: s}
}

type createOrderRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// Create creates a gateway order and returns the gateway's order object.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		// The gateway error is logged by the service, not surfaced to the caller.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
