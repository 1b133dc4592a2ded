// Package middleware contains the gin middleware shared by all routes.
package middleware

import (
	"github.com/gin-gonic/gin"

	"starwars-blog/internal/utils"
)

// InjectTrace assigns every request a trace id and echoes it in the
// X-Trace-Id response header.
func InjectTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := utils.GenerateTraceId()
		c.Set(utils.TraceIdKey.String(), traceId)
		c.Header("X-Trace-Id", traceId)
		c.Next()
	}
}
