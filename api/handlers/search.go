// ABOUTME: Search handlers for the HTML page and its JSON mirror
// ABOUTME: Both surfaces hand the raw query string and preference cookies to the search service

package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"search-frontend-api/api/dto/mappers"
	"search-frontend-api/api/dto/responses"
	"search-frontend-api/core/domain"
	"search-frontend-api/core/interfaces"
)

// Preference cookie names
const (
	cookieTheme     = "theme"
	cookieFrontPage = "front_page"
	cookieLayout    = "layout"
	cookieWide      = "wide"
	cookieShowNSFW  = "show_nsfw"
)

// PageRenderer renders search results and failures as HTML
type PageRenderer interface {
	RenderSearch(w io.Writer, view *domain.SearchResultView) error
	RenderError(w io.Writer, status int, message string, prefs domain.Preferences) error
}

// SearchHandler handles search requests
type SearchHandler struct {
	service  interfaces.SearchService
	renderer PageRenderer
	logger   interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service interfaces.SearchService, renderer PageRenderer, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// RegisterPages mounts the HTML search pages on router
func (h *SearchHandler) RegisterPages(router chi.Router) {
	router.Get("/search", h.SearchPage)
	router.Get("/r/{sub}/search", h.SearchPage)
}

// RegisterRoutes registers the JSON search operations
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search posts",
		Description: "Searches posts across all communities and suggests matching subreddits",
		Tags:        []string{"Search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "searchSubreddit",
		Method:      http.MethodGet,
		Path:        "/api/r/{sub}/search",
		Summary:     "Search posts within a subreddit scope",
		Description: "Searches posts from a subreddit page. Suggestions are skipped when restrict_sr is set.",
		Tags:        []string{"Search"},
	}, h.SearchSubreddit)
}

// SearchPage renders the HTML search result page
func (h *SearchHandler) SearchPage(w http.ResponseWriter, r *http.Request) {
	prefs := preferencesFromRequest(r)
	req := domain.SearchRequest{
		Sub:      chi.URLParam(r, "sub"),
		RawQuery: r.URL.RawQuery,
		Prefs:    prefs,
	}

	view, err := h.service.Search(r.Context(), req)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error(), prefs)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderSearch(&buf, view); err != nil {
		h.logger.Error("Failed to render search page", map[string]interface{}{
			"sub":   req.Sub,
			"error": err.Error(),
		})
		h.writeError(w, http.StatusInternalServerError, "failed to render search page", prefs)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *SearchHandler) writeError(w http.ResponseWriter, status int, message string, prefs domain.Preferences) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.RenderError(w, status, message, prefs); err != nil {
		h.logger.Error("Failed to render error page", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
	}
}

func preferencesFromRequest(r *http.Request) domain.Preferences {
	value := func(name string) string {
		if c, err := r.Cookie(name); err == nil {
			return c.Value
		}
		return ""
	}
	return domain.Preferences{
		Theme:     value(cookieTheme),
		FrontPage: value(cookieFrontPage),
		Layout:    value(cookieLayout),
		Wide:      value(cookieWide),
		ShowNSFW:  value(cookieShowNSFW),
	}
}

// SearchInput defines the input for the JSON search operation.
// The typed query fields document the API; the raw query string is what gets forwarded.
type SearchInput struct {
	Q          string `query:"q" doc:"Search text"`
	Sort       string `query:"sort" doc:"Result ordering, relevance when empty"`
	T          string `query:"t" doc:"Time range filter (hour, day, week, month, year, all)"`
	Before     string `query:"before" doc:"Cursor to page backwards"`
	After      string `query:"after" doc:"Cursor to page forwards"`
	RestrictSR string `query:"restrict_sr" doc:"Restrict the search to the subreddit in the path"`

	Theme     string `cookie:"theme" doc:"Theme preference"`
	FrontPage string `cookie:"front_page" doc:"Front page preference"`
	Layout    string `cookie:"layout" doc:"Layout preference"`
	Wide      string `cookie:"wide" doc:"Wide layout preference"`
	ShowNSFW  string `cookie:"show_nsfw" doc:"Include adult content when set to on"`

	rawQuery string
}

// Resolve captures the raw query string
func (i *SearchInput) Resolve(ctx huma.Context) []error {
	i.rawQuery = ctx.URL().RawQuery
	return nil
}

func (i *SearchInput) request(sub string) domain.SearchRequest {
	return domain.SearchRequest{
		Sub:      sub,
		RawQuery: i.rawQuery,
		Prefs: domain.Preferences{
			Theme:     i.Theme,
			FrontPage: i.FrontPage,
			Layout:    i.Layout,
			Wide:      i.Wide,
			ShowNSFW:  i.ShowNSFW,
		},
	}
}

// SubredditSearchInput defines the input for the scoped JSON search operation
type SubredditSearchInput struct {
	Sub string `path:"sub" doc:"Subreddit name"`
	SearchInput
}

// SearchOutput defines the output for the JSON search operations
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /api/search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	return h.search(ctx, input.request(""))
}

// SearchSubreddit handles the GET /api/r/{sub}/search endpoint
func (h *SearchHandler) SearchSubreddit(ctx context.Context, input *SubredditSearchInput) (*SearchOutput, error) {
	return h.search(ctx, input.request(input.Sub))
}

func (h *SearchHandler) search(ctx context.Context, req domain.SearchRequest) (*SearchOutput, error) {
	view, err := h.service.Search(ctx, req)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SearchOutput{Body: *mappers.ToSearchResponse(view)}, nil
}
