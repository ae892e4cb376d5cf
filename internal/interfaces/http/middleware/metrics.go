package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records one finished HTTP request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, class string, elapsed time.Duration)
}

// Metrics labels requests by route template so ids do not explode the
// series count.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			string(GetRequestClass(c).Kind),
			time.Since(start),
		)
	}
}
