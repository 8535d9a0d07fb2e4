package memorybrowser

import (
	"net/url"

	"github.com/RobertWHurst/harrier"
)

type entry struct {
	url      *url.URL
	state    *harrier.HistoryState
	document int
}

type listener[E any] struct {
	id int
	fn func(E)
}

// Browser is an in-memory harrier.Browser. It keeps a history stack, fires
// listeners synchronously and records full page loads instead of performing
// them. A full page load starts a new document: listeners bound by the old
// one are dropped.
//
// Browser is not safe for concurrent use.
type Browser struct {
	entries   []entry
	index     int
	document  int
	referrer  string
	pushState bool

	nextListenerID    int
	popStateListeners []listener[*harrier.PopStateEvent]
	clickListeners    []listener[*harrier.ClickEvent]
	submitListeners   []listener[*harrier.SubmitEvent]

	loads []string
}

var _ harrier.Browser = &Browser{}

// Option configures a Browser.
type Option func(*Browser)

// WithoutPushState makes the browser report no history API support.
func WithoutPushState() Option {
	return func(b *Browser) {
		b.pushState = false
	}
}

// WithReferrer sets the referrer of the initial document.
func WithReferrer(referrer string) Option {
	return func(b *Browser) {
		b.referrer = referrer
	}
}

// New creates a browser showing href, which must be an absolute URL. New
// panics if it is not.
func New(href string, options ...Option) *Browser {
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		panic("memorybrowser: initial url must be absolute, got \"" + href + "\"")
	}

	b := &Browser{
		entries:   []entry{{url: u}},
		pushState: true,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *Browser) current() *entry {
	return &b.entries[b.index]
}

func (b *Browser) resolve(rawURL string) *url.URL {
	ref, err := url.Parse(rawURL)
	if err != nil {
		panic("memorybrowser: invalid url \"" + rawURL + "\": " + err.Error())
	}
	return b.current().url.ResolveReference(ref)
}

func (b *Browser) push(e entry) {
	b.entries = append(b.entries[:b.index+1], e)
	b.index = len(b.entries) - 1
}

// Location returns the location of the current history entry.
func (b *Browser) Location() harrier.Location {
	return harrier.LocationFromURL(b.current().url)
}

// HistoryState returns the state of the current history entry.
func (b *Browser) HistoryState() *harrier.HistoryState {
	return b.current().state
}

// SupportsPushState reports whether the history API is available.
func (b *Browser) SupportsPushState() bool {
	return b.pushState
}

// PushState adds a history entry in the current document, dropping any
// forward entries. Like a real browser it panics when url is on another
// origin.
func (b *Browser) PushState(state *harrier.HistoryState, rawURL string) {
	b.push(entry{url: b.sameOrigin(rawURL), state: state, document: b.document})
}

// ReplaceState overwrites the current history entry.
func (b *Browser) ReplaceState(state *harrier.HistoryState, rawURL string) {
	*b.current() = entry{url: b.sameOrigin(rawURL), state: state, document: b.document}
}

func (b *Browser) sameOrigin(rawURL string) *url.URL {
	u := b.resolve(rawURL)
	cur := b.current().url
	if u.Scheme != cur.Scheme || u.Host != cur.Host {
		panic("memorybrowser: history url \"" + u.String() + "\" is not on origin " + cur.Scheme + "://" + cur.Host)
	}
	return u
}

// Go moves delta entries through the history. Moving within the current
// document fires popstate; moving to an entry of another document loads it.
// Go(0) reloads the page. Moving past either end does nothing.
func (b *Browser) Go(delta int) {
	if delta == 0 {
		b.load(b.current().url)
		return
	}

	target := b.index + delta
	if target < 0 || target >= len(b.entries) {
		return
	}

	b.index = target
	if b.current().document != b.document {
		b.loads = append(b.loads, b.current().url.String())
		b.startDocument(b.current().document)
		return
	}

	event := &harrier.PopStateEvent{State: b.current().state}
	for _, l := range snapshot(b.popStateListeners) {
		l.fn(event)
	}
}

// Back is Go(-1).
func (b *Browser) Back() {
	b.Go(-1)
}

// Forward is Go(1).
func (b *Browser) Forward() {
	b.Go(1)
}

// Assign records a full page load of url. The load becomes a new history
// entry in a new document.
func (b *Browser) Assign(rawURL string) {
	b.load(b.resolve(rawURL))
}

func (b *Browser) load(u *url.URL) {
	b.referrer = b.current().url.String()
	b.loads = append(b.loads, u.String())

	document := b.nextDocument()
	if u.String() == b.current().url.String() {
		*b.current() = entry{url: u, document: document}
	} else {
		b.push(entry{url: u, document: document})
	}
	b.startDocument(document)
}

func (b *Browser) nextDocument() int {
	next := b.document
	for _, e := range b.entries {
		if e.document > next {
			next = e.document
		}
	}
	return next + 1
}

func (b *Browser) startDocument(document int) {
	b.document = document
	b.popStateListeners = nil
	b.clickListeners = nil
	b.submitListeners = nil
}

// Referrer returns the document referrer.
func (b *Browser) Referrer() string {
	return b.referrer
}

// SetReferrer overrides the document referrer.
func (b *Browser) SetReferrer(referrer string) {
	b.referrer = referrer
}

// AddPopStateListener registers a popstate listener.
func (b *Browser) AddPopStateListener(fn func(*harrier.PopStateEvent)) func() {
	id := b.nextID()
	b.popStateListeners = append(b.popStateListeners, listener[*harrier.PopStateEvent]{id: id, fn: fn})
	return func() {
		b.popStateListeners = without(b.popStateListeners, id)
	}
}

// AddClickListener registers a click listener.
func (b *Browser) AddClickListener(fn func(*harrier.ClickEvent)) func() {
	id := b.nextID()
	b.clickListeners = append(b.clickListeners, listener[*harrier.ClickEvent]{id: id, fn: fn})
	return func() {
		b.clickListeners = without(b.clickListeners, id)
	}
}

// AddSubmitListener registers a submit listener.
func (b *Browser) AddSubmitListener(fn func(*harrier.SubmitEvent)) func() {
	id := b.nextID()
	b.submitListeners = append(b.submitListeners, listener[*harrier.SubmitEvent]{id: id, fn: fn})
	return func() {
		b.submitListeners = without(b.submitListeners, id)
	}
}

func (b *Browser) nextID() int {
	b.nextListenerID += 1
	return b.nextListenerID
}

// ListenerCount returns the number of listeners bound in the current
// document.
func (b *Browser) ListenerCount() int {
	return len(b.popStateListeners) + len(b.clickListeners) + len(b.submitListeners)
}

// History returns the pathname, search and hash of every history entry.
func (b *Browser) History() []string {
	history := make([]string, len(b.entries))
	for i, e := range b.entries {
		loc := harrier.LocationFromURL(e.url)
		history[i] = loc.Pathname + loc.Search + loc.Hash
	}
	return history
}

// Index returns the position of the current entry in History.
func (b *Browser) Index() int {
	return b.index
}

// Loads returns the URLs of every full page load, oldest first.
func (b *Browser) Loads() []string {
	return b.loads
}

func snapshot[E any](listeners []listener[E]) []listener[E] {
	return append([]listener[E](nil), listeners...)
}

func without[E any](listeners []listener[E], id int) []listener[E] {
	kept := listeners[:0:0]
	for _, l := range listeners {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	return kept
}
