package trace

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info는 하나의 admin 요청에 대한 트레이싱 정보를 담는다.
// - RequestID: 요청 단위로 고유
// - spanSeq: 동일 RequestID 내에서 업스트림 API 호출마다 1,2,3,... 순차 증가
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID는 하이픈 없는 UUIDv4 문자열을 반환한다.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithRequestAndSpan는 Request ID와 초기 Span 값을 컨텍스트에 저장한다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID는 현재 span 시퀀스 값을 증가시키지 않고 반환한다.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID는 spanSeq를 1 증가시키고 (requestID, spanID)를 반환한다.
// ListByTag 처럼 한 요청 안에서 동시에 나가는 호출도 서로 다른 spanID를 받는다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
