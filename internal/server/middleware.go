package server

import (
	"time"

	"github.com/gin-gonic/gin"

	model "freightbid/internal/models"
	"freightbid/services/auction/helpers"
	"freightbid/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// ActorMiddleware builds the request actor from the identity headers set by
// the upstream authenticator and stores it in the request context. The core
// never reads identity from anywhere else.
func ActorMiddleware(c *gin.Context) {
	actor := model.Actor{
		Name: c.GetHeader("X-Actor-Name"),
		Role: model.Role(c.GetHeader("X-Actor-Role")),
	}
	c.Set(helpers.ActorContextKey, actor)
	c.Next()
}
