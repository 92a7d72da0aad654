package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/internal/logger"
)

// RequestLoggingMiddleware 는 관리 API 요청의 처리 시간을 debug 레벨로 남긴다.
// skipPaths 에 속한 경로(헬스 체크 등)는 기록하지 않는다.
func RequestLoggingMiddleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		start := time.Now()

		c.Next()

		fields := logger.Fields{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if operator, ok := c.Get(ContextKeyOperator); ok {
			fields["operator"] = operator
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.DebugWithFields("admin_request", fields)
	}
}
