package search

import (
	"context"
	"sync"
	"sync/atomic"

	"search-frontend-api/core/domain"
)

// mockJSONFetcher is a mock implementation of the JSONFetcher interface
type mockJSONFetcher struct {
	mu        sync.Mutex
	paths     []string
	fetchFunc func(ctx context.Context, path string) ([]byte, error)
}

func (m *mockJSONFetcher) FetchJSON(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	m.paths = append(m.paths, path)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, path)
	}
	return nil, nil
}

func (m *mockJSONFetcher) requestedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.paths...)
}

// mockPostFetcher is a mock implementation of the PostFetcher interface
type mockPostFetcher struct {
	calls     atomic.Int32
	fetchFunc func(ctx context.Context, path, after string) ([]domain.Post, string, error)
}

func (m *mockPostFetcher) FetchPosts(ctx context.Context, path, after string) ([]domain.Post, string, error) {
	m.calls.Add(1)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, path, after)
	}
	return nil, "", nil
}

// mockSubredditSearcher is a mock implementation of the SubredditSearcher interface
type mockSubredditSearcher struct {
	calls      atomic.Int32
	searchFunc func(ctx context.Context, query string) []domain.Subreddit
}

func (m *mockSubredditSearcher) SearchSubreddits(ctx context.Context, query string) []domain.Subreddit {
	m.calls.Add(1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return []domain.Subreddit{}
}

// logEntry is a single captured log call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records log calls
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) countLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
