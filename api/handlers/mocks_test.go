package handlers

import (
	"context"
	"fmt"
	"io"

	"search-frontend-api/core/domain"
)

// mockSearchService is a mock implementation of interfaces.SearchService
type mockSearchService struct {
	searchFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResultView, error)
	lastReq    domain.SearchRequest
}

func (m *mockSearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResultView, error) {
	m.lastReq = req
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.SearchResultView{Params: domain.SearchParams{Sort: domain.DefaultSort}}, nil
}

// mockRenderer writes a short plain text rendering of what it was given
type mockRenderer struct {
	searchErr error
}

func (m *mockRenderer) RenderSearch(w io.Writer, view *domain.SearchResultView) error {
	if m.searchErr != nil {
		return m.searchErr
	}
	_, err := fmt.Fprintf(w, "posts=%d subreddits=%d q=%s", len(view.Posts), len(view.Subreddits), view.Params.Q)
	return err
}

func (m *mockRenderer) RenderError(w io.Writer, status int, message string, prefs domain.Preferences) error {
	_, err := fmt.Fprintf(w, "error %d: %s", status, message)
	return err
}

type mockLogger struct{}

func (mockLogger) Debug(string, map[string]interface{}) {}
func (mockLogger) Info(string, map[string]interface{})  {}
func (mockLogger) Warn(string, map[string]interface{})  {}
func (mockLogger) Error(string, map[string]interface{}) {}
