package services

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// mockPostStore is an in-memory PostStore.
type mockPostStore struct {
	files    map[string]string
	writeErr error
}

func newMockPostStore() *mockPostStore {
	return &mockPostStore{files: make(map[string]string)}
}

func (m *mockPostStore) List(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockPostStore) Read(_ context.Context, filename string) (string, error) {
	content, ok := m.files[filename]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}

func (m *mockPostStore) Write(_ context.Context, filename, content string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[filename] = content
	return nil
}

func (m *mockPostStore) Path(filename string) string {
	return "/posts/" + filename
}

// mockRunner records deploy invocations.
type mockRunner struct {
	dir     string
	command string
	output  string
	err     error
	calls   int
}

func (m *mockRunner) Run(_ context.Context, dir, command string) (string, error) {
	m.calls++
	m.dir = dir
	m.command = command
	return m.output, m.err
}

// mockTransport serves scripted responses and records every request.
type mockTransport struct {
	handler  func(req *http.Request) (*http.Response, error)
	requests []*http.Request
}

func (m *mockTransport) Do(_ context.Context, req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	return m.handler(req)
}

// textResponse builds a response with the given body and content type.
func textResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode:    status,
		Status:        http.StatusText(status),
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// redirectResponse builds a 3xx response pointing at location.
func redirectResponse(status int, location string) *http.Response {
	header := http.Header{}
	header.Set("Location", location)
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

// trackingBody reports whether anything tried to read it.
type trackingBody struct {
	read bool
}

func (t *trackingBody) Read(_ []byte) (int, error) {
	t.read = true
	return 0, io.EOF
}

func (t *trackingBody) Close() error { return nil }
