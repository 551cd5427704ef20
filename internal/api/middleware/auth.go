package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var rejectedWrites = prometheus.NewCounter(
	prometheus.CounterOpts{Name: "nowplaying_rejected_writes_total", Help: "Writes rejected for a bad token"},
)

func RegisterMetrics() {
	prometheus.MustRegister(rejectedWrites)
}

// RequireToken guards the write path. The publisher presents the fixed
// shared token as "Authorization: Basic <token>"; anything else is rejected
// with an empty 401 before the body is even decoded.
func RequireToken(token string) gin.HandlerFunc {
	expected := []byte("Basic " + token)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			rejectedWrites.Inc()
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
