package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses publicly cacheable for the given lifetime,
// usually on static assets.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	header := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Header("Cache-Control", header)
		c.Next()
	}
}
