package redis

import (
	"github.com/gin-gonic/gin"
)

// RedisMiddleware injects the shared client into the request context.
func RedisMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("redis", rdb)
		c.Next()
	}
}
