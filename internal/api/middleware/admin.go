package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

// AdminMiddleware gates the admin routes behind the single configured
// password, compared in constant time.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.Cfg.Admin.Password
		provided := c.GetHeader("X-Admin-Password")

		if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.Error(c, service.UnauthorizedError)
			c.Abort()
			return
		}
		c.Next()
	}
}
