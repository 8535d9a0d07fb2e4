package harrier

import (
	"net/url"
	"strings"
)

// NavigationIntent describes a candidate destination. Search and Hash keep
// their leading "?" and "#" and are empty when absent.
type NavigationIntent struct {
	Pathname string
	Search   string
	Hash     string
}

// ParseIntent splits a URL string into its pathname, search and hash. Any
// scheme or host in raw is ignored.
func ParseIntent(raw string) (NavigationIntent, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return NavigationIntent{}, invalidURLError(raw, err)
	}
	return intentFromURL(u), nil
}

func intentFromURL(u *url.URL) NavigationIntent {
	intent := NavigationIntent{Pathname: u.EscapedPath()}
	if u.RawQuery != "" {
		intent.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		intent.Hash = "#" + u.EscapedFragment()
	}
	return intent
}

func intentFromLocation(loc Location) NavigationIntent {
	return NavigationIntent{Pathname: loc.Pathname, Search: loc.Search, Hash: loc.Hash}
}

// String returns the browser visible form of the intent.
func (i NavigationIntent) String() string {
	return i.Pathname + i.Search + i.Hash
}

// NormalizedURL is a NavigationIntent with Path, the pathname relative to
// the router base. Path is never empty.
type NormalizedURL struct {
	NavigationIntent
	Path string
}

// normalizeURL strips base from the intent's pathname. A path left empty by
// the strip becomes "/".
func normalizeURL(intent NavigationIntent, base string) NormalizedURL {
	path := intent.Pathname
	if base != "" && hasBasePrefix(path, base) {
		path = strings.TrimPrefix(path, base)
	}
	if path == "" {
		path = "/"
	}
	return NormalizedURL{NavigationIntent: intent, Path: path}
}

// hasBasePrefix reports whether pathname lies under base. The match is
// segment aligned: "/test" covers "/test" and "/test/foo" but not "/testing".
func hasBasePrefix(pathname, base string) bool {
	if base == "" {
		return true
	}
	if !strings.HasPrefix(pathname, base) {
		return false
	}
	rest := pathname[len(base):]
	return rest == "" || rest[0] == '/' || rest[0] == '?' || rest[0] == '#'
}

// cleanBase trims a trailing slash so "/app/" and "/app" behave the same, and
// adds a missing leading slash so "app" matches browser pathnames. A base of
// "/" is the same as no base.
func cleanBase(base string) string {
	base = strings.TrimSuffix(base, "/")
	if base != "" && base[0] != '/' {
		base = "/" + base
	}
	return base
}

// createHistoryState drops the derived Path, which is recomputed on every
// dispatch against the base in effect at that time.
func createHistoryState(u NormalizedURL) *HistoryState {
	return &HistoryState{
		Pathname: u.Pathname,
		Search:   u.Search,
		Hash:     u.Hash,
	}
}
