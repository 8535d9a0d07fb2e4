package harrier

import (
	"net/url"
	"strings"
)

// Browser is the capability the router uses to observe and drive the page it
// runs in. It stands in for the window, document and history globals so that
// the router can be driven by a real DOM (see dombrowser) or by an in-memory
// implementation (see memorybrowser).
//
// All methods are called from a single goroutine, the same one that delivers
// events to listeners.
type Browser interface {
	// Location returns the current document location.
	Location() Location

	// HistoryState returns the state attached to the current history entry. It
	// returns nil if the entry carries no router state.
	HistoryState() *HistoryState

	// SupportsPushState reports whether the history API can be written to.
	// When it returns false the router never binds listeners nor writes
	// history entries.
	SupportsPushState() bool

	// PushState adds a history entry for url carrying state.
	PushState(state *HistoryState, url string)

	// ReplaceState overwrites the current history entry.
	ReplaceState(state *HistoryState, url string)

	// Go moves through the history stack by delta entries. Moving fires a
	// popstate event.
	Go(delta int)

	// Assign performs a full page navigation to url.
	Assign(url string)

	// Referrer returns the document referrer.
	Referrer() string

	// SetReferrer overrides the document referrer for the lifetime of the page.
	SetReferrer(referrer string)

	// AddPopStateListener registers a popstate listener. The returned func
	// removes it.
	AddPopStateListener(listener func(*PopStateEvent)) (remove func())

	// AddClickListener registers a document level click listener. The returned
	// func removes it.
	AddClickListener(listener func(*ClickEvent)) (remove func())

	// AddSubmitListener registers a document level submit listener. The
	// returned func removes it.
	AddSubmitListener(listener func(*SubmitEvent)) (remove func())
}

// Location mirrors the parts of window.location the router reads. Protocol
// keeps its trailing colon, Search its leading "?" and Hash its leading "#",
// as they appear in the DOM.
type Location struct {
	Protocol string
	Host     string
	Hostname string
	Port     string
	Pathname string
	Search   string
	Hash     string
}

// LocationFromURL builds a Location from an absolute URL.
func LocationFromURL(u *url.URL) Location {
	loc := Location{
		Protocol: u.Scheme + ":",
		Host:     u.Host,
		Hostname: u.Hostname(),
		Port:     u.Port(),
		Pathname: u.EscapedPath(),
	}
	if loc.Pathname == "" {
		loc.Pathname = "/"
	}
	if u.RawQuery != "" {
		loc.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		loc.Hash = "#" + u.EscapedFragment()
	}
	return loc
}

// Origin returns the scheme and host of the location, e.g. "https://example.com".
func (l Location) Origin() string {
	return l.Protocol + "//" + l.Host
}

// Href returns the full URL of the location.
func (l Location) Href() string {
	return l.Origin() + l.Pathname + l.Search + l.Hash
}

// URL parses the location into a url.URL. A location that does not parse
// yields only its origin.
func (l Location) URL() *url.URL {
	u, err := url.Parse(l.Href())
	if err != nil {
		return &url.URL{Scheme: strings.TrimSuffix(l.Protocol, ":"), Host: l.Host, Path: "/"}
	}
	return u
}

// HistoryState is the state the router stores on each history entry it
// writes. A popstate carrying it is routed from the state rather than from
// the location.
type HistoryState struct {
	Pathname string `json:"pathname"`
	Search   string `json:"search"`
	Hash     string `json:"hash"`
}

func (s *HistoryState) intent() NavigationIntent {
	return NavigationIntent{Pathname: s.Pathname, Search: s.Search, Hash: s.Hash}
}

// PopStateEvent is delivered when the active history entry changes.
type PopStateEvent struct {
	State *HistoryState
}

// Link describes the anchor element a click landed on.
type Link struct {
	Href     string
	Origin   string
	Pathname string
	Search   string
	Hash     string
	Target   string
	Rel      string
	Download bool
}

// NewLink resolves href against base the way an anchor element does and
// returns a Link describing the result.
func NewLink(base Location, href string) (*Link, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, invalidURLError(href, err)
	}
	resolved := LocationFromURL(base.URL().ResolveReference(ref))
	return &Link{
		Href:     resolved.Href(),
		Origin:   resolved.Origin(),
		Pathname: resolved.Pathname,
		Search:   resolved.Search,
		Hash:     resolved.Hash,
	}, nil
}

// ClickEvent is delivered for clicks anywhere in the document. Link is nil
// when the click did not land on, or inside, an anchor.
type ClickEvent struct {
	Link             *Link
	Button           int
	MetaKey          bool
	CtrlKey          bool
	ShiftKey         bool
	AltKey           bool
	DefaultPrevented bool

	// OnPreventDefault is called by PreventDefault. Browser implementations
	// use it to cancel the native event.
	OnPreventDefault func()
}

// PreventDefault stops the browser from following the link.
func (e *ClickEvent) PreventDefault() {
	if e.DefaultPrevented {
		return
	}
	e.DefaultPrevented = true
	if e.OnPreventDefault != nil {
		e.OnPreventDefault()
	}
}

func (e *ClickEvent) modified() bool {
	return e.MetaKey || e.CtrlKey || e.ShiftKey || e.AltKey
}

// SubmitEvent is delivered for form submissions anywhere in the document.
// Action is the form action, either as written on the element or already
// resolved by the browser.
type SubmitEvent struct {
	Action           string
	Method           string
	Target           string
	DefaultPrevented bool

	// OnPreventDefault is called by PreventDefault.
	OnPreventDefault func()
}

// PreventDefault stops the browser from submitting the form.
func (e *SubmitEvent) PreventDefault() {
	if e.DefaultPrevented {
		return
	}
	e.DefaultPrevented = true
	if e.OnPreventDefault != nil {
		e.OnPreventDefault()
	}
}
