package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeyHandler exposes the gateway's public key id to browser clients.
// The key secret never leaves the process.
type KeyHandler struct {
	keyID string
}

func NewKeyHandler(keyID string) *KeyHandler {
	return &KeyHandler{keyID: keyID}
}

func (h *KeyHandler) Key(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": h.keyID})
}

// Root returns the liveness greeting.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	}
}
