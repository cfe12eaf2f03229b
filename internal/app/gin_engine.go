package app

import (
	"net/http"

	"shirtpay/pkg/logger"
	"shirtpay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// maxRequestBody caps request bodies at 50 MB to accommodate inline
// base64 images.
const maxRequestBody = 50 << 20

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		logger.GinRequestLogger(),
		cors(),
		bodyLimit(maxRequestBody),
		gin.Recovery(),
	)
	return engine
}

func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Correlation-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
