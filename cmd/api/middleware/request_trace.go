package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/trace"
	"posts-admin/cmd/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"

	maxBodyLog = 1024
)

// RequestTrace 는 모든 관리 API 요청에 Request ID 를 부여하고 span 시퀀스를 0 으로
// 시작한다. 이후 posts API 호출은 httpclient 에서 1,2,3,... span 으로 기록된다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		ctx := trace.WithRequestAndSpan(c.Request.Context(), requestID, 0)
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.CurrentSpanID(ctx))

		body := snapshotBody(c.Request)

		c.Next()

		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			"spans":      trace.CurrentSpanID(c.Request.Context()),
		}
		if body != "" {
			fields["body"] = body
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// snapshotBody 는 폼 제출 본문 앞부분을 로그용으로 복사하고 Body 를 되돌려 놓는다.
func snapshotBody(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return ""
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) > maxBodyLog {
		raw = raw[:maxBodyLog]
	}
	return string(raw)
}
