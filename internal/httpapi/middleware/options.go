package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Options answers every OPTIONS request with 200 and wildcard CORS headers
// before route matching, including paths that have no OPTIONS route.
func Options() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		c.AbortWithStatus(http.StatusOK)
	}
}
