// ABOUTME: HTML renderer for the search result page and the error page
// ABOUTME: Templates are embedded in the binary and parsed once at startup

package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"search-frontend-api/core/domain"
	"search-frontend-api/pkg/utils/count"
	reltime "search-frontend-api/pkg/utils/time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders search views to HTML
type Renderer struct {
	templates *template.Template
	now       func() time.Time
}

// searchPage is the data handed to the search template
type searchPage struct {
	*domain.SearchResultView
	PrevURL     string
	NextURL     string
	SortOptions []string
}

// sortOptions are the orderings offered in the search form
var sortOptions = []string{"relevance", "hot", "top", "new", "comments"}

// errorPage is the data handed to the error template
type errorPage struct {
	Status  int
	Title   string
	Message string
	Prefs   domain.Preferences
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	r := &Renderer{now: time.Now}

	tmpl, err := template.New("views").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl

	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		// valueAttr emits a value attribute verbatim. The text must already have
		// its double quotes replaced by &quot;.
		"valueAttr": func(s string) template.HTMLAttr {
			return template.HTMLAttr(`value="` + s + `"`)
		},
		"relTime": func(t time.Time) string {
			return reltime.FormatRelative(t, r.now())
		},
		"compact": count.Compact,
		"isOn": func(v string) bool {
			return v == "on"
		},
	}
}

// RenderSearch writes the search result page for view
func (r *Renderer) RenderSearch(w io.Writer, view *domain.SearchResultView) error {
	page := searchPage{
		SearchResultView: view,
		PrevURL:          pageURL(view.Params, "before", view.Params.Before),
		NextURL:          pageURL(view.Params, "after", view.Params.After),
		SortOptions:      sortOptions,
	}
	return r.templates.ExecuteTemplate(w, "search.html", page)
}

// RenderError writes the error page with the upstream failure message
func (r *Renderer) RenderError(w io.Writer, status int, message string, prefs domain.Preferences) error {
	title := "Error"
	if status > 0 {
		title = fmt.Sprintf("Error %d", status)
	}
	return r.templates.ExecuteTemplate(w, "error.html", errorPage{
		Status:  status,
		Title:   title,
		Message: message,
		Prefs:   prefs,
	})
}

// pageURL builds the relative link to a neighbouring page, or "" when cursor is empty
func pageURL(p domain.SearchParams, key, cursor string) string {
	if cursor == "" {
		return ""
	}

	values := url.Values{}
	values.Set("q", p.Text)
	if p.RestrictSR != "" {
		values.Set("restrict_sr", p.RestrictSR)
	}
	values.Set("sort", p.Sort)
	if p.T != "" {
		values.Set("t", p.T)
	}
	values.Set(key, cursor)

	return "?" + values.Encode()
}
