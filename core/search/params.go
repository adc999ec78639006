// ABOUTME: Normalizes an inbound search request into search parameters
// ABOUTME: Also composes the upstream content search path for the request

package search

import (
	"net/url"
	"strings"

	"search-frontend-api/core/domain"
)

// ExtractParams normalizes req into search parameters and the upstream content search path.
//
// Values are read from the raw query string: q, sort, t, before, after and restrict_sr.
// An empty sort becomes domain.DefaultSort; nothing else is validated. The caller's raw
// query string is forwarded to the upstream path unchanged, followed by include_over_18=on
// when the caller enabled adult content. Malformed query strings never fail; whatever
// pairs decode are used.
func ExtractParams(req domain.SearchRequest) (domain.SearchParams, string) {
	values := parseRawQuery(req.RawQuery)

	params := domain.SearchParams{
		Q:          values["q"],
		Sort:       values["sort"],
		T:          values["t"],
		Before:     values["before"],
		After:      values["after"],
		RestrictSR: values["restrict_sr"],
	}
	if params.Sort == "" {
		params.Sort = domain.DefaultSort
	}

	query := NewQuery(scopePath(req.Sub) + "/search.json").AddRaw(req.RawQuery)
	if req.Prefs.NSFWEnabled() {
		query.Add("include_over_18", "on", Verbatim)
	}

	return params, query.String()
}

// DisplayQuery prepares the query text for redisplay in attribute-quoted markup.
// Only double quotes are replaced.
func DisplayQuery(q string) string {
	return strings.ReplaceAll(q, `"`, "&quot;")
}

// parseRawQuery splits raw on '&' only, so ';' stays part of a value.
// The first occurrence of a key wins and pairs that fail to decode are skipped.
func parseRawQuery(raw string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		if _, seen := values[key]; !seen {
			values[key] = value
		}
	}
	return values
}

func scopePath(sub string) string {
	if sub == "" {
		return ""
	}
	return "/r/" + url.PathEscape(sub)
}
