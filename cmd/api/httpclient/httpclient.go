package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"posts-admin/cmd/api/trace"
	"posts-admin/cmd/internal/logger"
)

// ErrNotFound 는 업스트림이 404 를 반환했을 때 StatusError 와 errors.Is 로 매칭된다.
var ErrNotFound = errors.New("resource not found")

// StatusError 는 2xx 가 아닌 응답을 나타낸다.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status=%d body=%s", e.Op, e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Config는 HTTP 클라이언트 공통 설정을 캡슐화한다.
type Config struct {
	Timeout time.Duration
}

// loggingRoundTripper는 모든 아웃바운드 HTTP 호출에 대해 공통 로깅과
// X-Request-Id 헤더 트레이싱을 수행한다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	query := ""
	if req.URL != nil {
		query = req.URL.RawQuery
	}
	// 바디 스니펫을 로깅하기 위해 한 번 읽고 복원한다.
	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			const maxBodyLog = 1024
			if len(bodyBytes) > maxBodyLog {
				bodySnippet = string(bodyBytes[:maxBodyLog])
			} else {
				bodySnippet = string(bodyBytes)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	resp, err := l.inner.RoundTrip(req)
	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"query":      query,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// BaseClient는 공통 HTTP 클라이언트와 baseURL을 묶어두고,
// URL 생성 및 JSON 요청/응답 처리를 도와준다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient는 주어진 baseURL과 기본 설정의 http.Client(logging 포함)를 사용해 BaseClient를 생성한다.
func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		HTTPClient: NewDefault(),
		BaseURL:    baseURL,
	}
}

// NewBaseClientWithClient는 이미 생성된 http.Client를 사용하는 BaseClient를 생성한다.
// httpClient가 nil이면 기본 클라이언트를 사용한다.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// PathSegment escapes s as a single path segment. "." and ".." are
// percent-encoded as well so path cleaning cannot resolve them.
func PathSegment(s string) string {
	switch s {
	case ".", "..":
		return strings.ReplaceAll(s, ".", "%2E")
	}
	return url.PathEscape(s)
}

// NewRequest는 baseURL과 상대 경로, 쿼리, 바디를 사용해 새로운 HTTP 요청을 생성한다.
// relPath 는 이미 이스케이프된 경로이며 사용자 입력 세그먼트는 PathSegment 로 감싼다.
// relPath에 쿼리(?)가 포함된 경우 path.Join이 쿼리를 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		escaped := path.Join(base.EscapedPath(), relPath)
		decoded, err := url.PathUnescape(escaped)
		if err != nil {
			return nil, fmt.Errorf("httpclient: invalid relPath %q: %w", relPath, err)
		}
		base.Path = decoded
		base.RawPath = escaped
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// Do는 내부 HTTP 클라이언트를 사용해 요청을 실행한다.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// DoJSON은 in 을 JSON 바디로 보내고(nil 이면 바디 없음), 2xx 응답을 out 에 디코딩한다(nil 이면 무시).
// op 는 에러 메시지에 들어가는 호출 이름이다. 예: "posts-api ListPosts"
func (c *BaseClient) DoJSON(ctx context.Context, op, method, relPath string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.NewRequest(ctx, method, relPath, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &StatusError{Op: op, Status: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// New는 주어진 설정으로 http.Client를 생성한다.
// Timeout이 0 이하이면 기본값 10초를 사용한다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

// NewDefault는 공통 기본 설정(Timeout 10초)을 사용하는 http.Client를 생성한다.
func NewDefault() *http.Client {
	return New(Config{})
}
