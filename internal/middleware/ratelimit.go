package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/cache"
)

// LoginRateLimiter limita tentativas por IP, usando um contador com
// expiração no Redis. Protege o endpoint de login contra força bruta.
func LoginRateLimiter(client cache.Client, limit int, period time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login-rate:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.GetInt(ctx, key)
		if err == cache.ErrCacheMiss {
			if err := client.Set(ctx, key, 1, period); err != nil {
				// Redis fora do ar não pode derrubar o login.
				c.Next()
				return
			}
			c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
			c.Next()
			return
		} else if err != nil {
			c.Next()
			return
		}

		if count >= limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "too_many_requests",
				"message":    "Muitas tentativas de login. Tente novamente em alguns minutos.",
			})
			return
		}

		_ = client.Incr(ctx, key)
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
		c.Next()
	}
}
