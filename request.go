package harrier

import "net/url"

// Request describes a single navigation. A new Request is built for every
// dispatch.
type Request struct {
	// ID uniquely identifies the navigation.
	ID string

	// Method is always GET for navigations dispatched by the router.
	Method string

	// Path is the pathname with the base path removed. It is never empty.
	Path string

	// URL is the base relative path with the search and hash.
	URL string

	// OriginalURL is the pathname, search and hash as shown by the browser.
	OriginalURL string

	// BaseURL is the router base path.
	BaseURL string

	// Query holds the parsed search when the router has a query parser.
	Query url.Values

	Protocol string
	Secure   bool
	Hostname string
	Referrer string

	// Router is the router that dispatched the request. It is nil for
	// requests built with NewRequest.
	Router *Router

	rawQuery string
}

// NewRequest builds a request for dispatching directly to a Dispatcher.
// rawURL may carry a search, which is kept as the raw query.
func NewRequest(method, rawURL string) (*Request, error) {
	intent, err := ParseIntent(rawURL)
	if err != nil {
		return nil, err
	}
	u := normalizeURL(intent, "")
	return &Request{
		Method:      method,
		Path:        u.Path,
		URL:         u.Path + u.Search + u.Hash,
		OriginalURL: u.String(),
		rawQuery:    trimQueryPrefix(u.Search),
	}, nil
}

// RawQuery returns the search without its leading "?".
func (r *Request) RawQuery() string {
	return r.rawQuery
}

// BindQuery decodes the query into the struct pointed to by dst. Fields are
// matched by their `query` tag, or by name. If the router has no query parser
// the raw query is parsed with DefaultQueryParser.
func (r *Request) BindQuery(dst any) error {
	values := r.Query
	if values == nil {
		values, _ = DefaultQueryParser(r.rawQuery)
	}
	return queryDecoder.Decode(dst, values)
}
