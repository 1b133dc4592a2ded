package middleware

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"starwars-blog/internal/utils"
)

// LogRequest emits one structured entry per incoming request.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId, _ := c.Value(utils.TraceIdKey.String()).(string)
		entry := log.WithFields(log.Fields{
			"traceId": traceId,
			"service": utils.ExtractServiceName(),
		})
		utils.LogEntry(entry, "info", "Request received: "+c.Request.Method+" "+c.Request.URL.Path)
		c.Next()
	}
}
