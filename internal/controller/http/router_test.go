package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shirtpay/internal/controller/http/handlers"
	"shirtpay/pkg/health"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := NewRouter(
		handlers.NewOrderHandler(nil),
		handlers.NewCaptureHandler(nil),
		handlers.NewKeyHandler("rzp_test_abc123"),
		health.NewRegistry(),
	)

	engine := gin.New()
	router.SetUp(engine)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRouter_SetUp(t *testing.T) {
	engine := testRouter()

	t.Run("should serve the root greeting", func(t *testing.T) {
		rec := get(engine, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hello World!", rec.Body.String())
	})

	t.Run("should serve liveness probe", func(t *testing.T) {
		rec := get(engine, "/health/live")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should serve readiness probe", func(t *testing.T) {
		rec := get(engine, "/health/ready")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should serve prometheus metrics", func(t *testing.T) {
		rec := get(engine, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("should expose the gateway public key", func(t *testing.T) {
		rec := get(engine, "/api/razorpay-key")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"key": "rzp_test_abc123"}`, rec.Body.String())
	})
}
