package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestKeyHandler_Key(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should expose only the public key id", func(t *testing.T) {
		// given
		handler := NewKeyHandler("rzp_test_abc123")

		engine := gin.New()
		engine.GET("/api/razorpay-key", handler.Key)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/razorpay-key", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"key": "rzp_test_abc123"}`, rec.Body.String())
	})
}

func TestRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return the greeting", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/", Root())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hello World!", rec.Body.String())
	})
}
