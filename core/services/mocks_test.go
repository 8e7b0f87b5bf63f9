package services

import (
	"bytes"
	"context"
	"io"

	"clipper-app-api/core/interfaces"
)

// mockHTTPClient implements interfaces.HTTPClient with function fields.
type mockHTTPClient struct {
	GetFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	PostFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, url)
	}
	return nil, io.EOF
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.PostFunc != nil {
		return m.PostFunc(ctx, url, body)
	}
	return nil, io.EOF
}

// mockResponse implements interfaces.Response over fixed data.
type mockResponse struct {
	status  int
	body    []byte
	headers map[string]string
}

func (m *mockResponse) StatusCode() int { return m.status }

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

// mockLogger discards all log output.
type mockLogger struct{}

func (mockLogger) Debug(string, map[string]interface{}) {}
func (mockLogger) Info(string, map[string]interface{})  {}
func (mockLogger) Warn(string, map[string]interface{})  {}
func (mockLogger) Error(string, map[string]interface{}) {}
