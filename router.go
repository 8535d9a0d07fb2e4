package harrier

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Router intercepts in page navigation, keeps the browser history in step
// with it and hands each navigation to a Dispatcher. A Router is bound to a
// single Browser and must only be used from the goroutine that delivers its
// events.
type Router struct {
	browser           Browser
	dispatcher        Dispatcher
	logger            *slog.Logger
	base              string
	currentLocation   string
	reloadOnUnhandled bool
	locals            map[string]any
	unbinders         []func()
}

// NewRouter creates a router driving browser. Without WithDispatcher the
// router dispatches through a new Mux. NewRouter panics with ErrNoBrowser if
// browser is nil.
func NewRouter(browser Browser, options ...Option) *Router {
	if browser == nil {
		panic(ErrNoBrowser)
	}

	config := routerConfig{}
	for _, option := range options {
		option(&config)
	}

	logger := config.logger
	if logger == nil {
		logger = slog.Default()
	}
	dispatcher := config.dispatcher
	if dispatcher == nil {
		dispatcher = NewMux()
	}

	r := &Router{
		browser:           browser,
		dispatcher:        dispatcher,
		logger:            logger,
		reloadOnUnhandled: config.reloadOnUnhandled,
		locals:            map[string]any{},
	}
	r.SetBase(config.base)

	if parser := config.resolveQueryParser(logger); parser != nil {
		dispatcher.Use(queryMiddleware(parser))
	}

	return r
}

// Base returns the base path, or an empty string if none is set.
func (r *Router) Base() string {
	return r.base
}

// SetBase sets the base path. A trailing slash is ignored.
func (r *Router) SetBase(base string) {
	r.base = cleanBase(base)
}

// Dispatcher returns the dispatcher navigations are handed to.
func (r *Router) Dispatcher() Dispatcher {
	return r.dispatcher
}

// Use registers middleware on the dispatcher. See Mux.Use.
func (r *Router) Use(handlers ...any) {
	r.dispatcher.Use(handlers...)
}

// Get registers handlers for navigations to path. Navigations dispatched by
// the router are always GET.
func (r *Router) Get(path string, handlers ...any) {
	r.dispatcher.Get(path, handlers...)
}

// Post registers handlers for POST requests to path. The router itself never
// dispatches POST; such handlers are reached by calling Dispatch directly.
func (r *Router) Post(path string, handlers ...any) {
	r.dispatcher.Post(path, handlers...)
}

// Lookup returns the pattern a handler was registered with, for building
// paths from handlers. It reports false if the dispatcher cannot look up
// handlers or does not know this one.
func (r *Router) Lookup(handler any) (*Pattern, bool) {
	l, ok := r.dispatcher.(interface {
		Lookup(handler any) (*Pattern, bool)
	})
	if !ok {
		return nil, false
	}
	return l.Lookup(handler)
}

// SetLocal stores a value for the lifetime of the router. Unlike Context
// values, locals are shared by every navigation.
func (r *Router) SetLocal(key string, value any) {
	r.locals[key] = value
}

// GetLocal returns a value stored with SetLocal.
func (r *Router) GetLocal(key string) (any, bool) {
	value, ok := r.locals[key]
	return value, ok
}

// MustGetLocal is like GetLocal but panics if key is not set.
func (r *Router) MustGetLocal(key string) any {
	value, ok := r.locals[key]
	if !ok {
		panic("router local \"" + key + "\" is not set")
	}
	return value
}

// Listen binds the router to the browser. With push state support it
// listens for popstate, link clicks and form submissions; each can be turned
// off with a ListenOption. Unless WithoutDispatch is given, the current
// location is dispatched straight away, replacing the current history entry,
// and any dispatch error is returned.
//
// Listen does not guard against being called twice; doing so binds every
// listener again.
//
// Navigations started by popstate, click and submit events have no caller
// to return an error to, so a dispatch error panics in the event callback.
// Under js/wasm that ends the program. To keep the router alive, register a
// middleware that clears ctx.Error after Next returns, or a Transformer that
// does so in TransformResponse.
func (r *Router) Listen(options ...ListenOption) error {
	opts := listenOptions{
		popState:         true,
		interceptClicks:  true,
		interceptSubmits: true,
		dispatch:         true,
	}
	for _, option := range options {
		option(&opts)
	}

	if r.browser.SupportsPushState() {
		if opts.popState {
			r.unbinders = append(r.unbinders, r.browser.AddPopStateListener(r.onPopState))
		}
		if opts.interceptClicks {
			r.unbinders = append(r.unbinders, r.browser.AddClickListener(r.onClick))
		}
		if opts.interceptSubmits {
			r.unbinders = append(r.unbinders, r.browser.AddSubmitListener(r.onSubmit))
		}
	}

	if opts.dispatch {
		return r.processGetRequest(intentFromLocation(r.browser.Location()), true)
	}
	return nil
}

// ChangeRoute navigates to rawURL, pushing a history entry unless
// WithReplace is given. Relative URLs resolve against the current location.
// An http or https URL on another origin cannot be routed and is loaded by
// the browser. Any other scheme is rejected with ErrInvalidURL. Errors from
// the dispatcher are returned.
func (r *Router) ChangeRoute(rawURL string, options ...NavigateOption) error {
	opts := navigateOptions{}
	for _, option := range options {
		option(&opts)
	}

	ref, err := url.Parse(rawURL)
	if err != nil {
		return invalidURLError(rawURL, err)
	}

	loc := r.browser.Location()
	target := loc.URL().ResolveReference(ref)
	if target.Scheme != "http" && target.Scheme != "https" {
		return invalidURLError(rawURL, errors.New("unsupported scheme "+strconv.Quote(target.Scheme)))
	}
	if target.Scheme+"://"+target.Host != loc.Origin() {
		r.logger.Debug("loading cross origin url", "url", target.String())
		r.browser.Assign(target.String())
		return nil
	}

	return r.processGetRequest(intentFromURL(target), opts.replace)
}

// Back moves one entry back in the browser history.
func (r *Router) Back() {
	r.browser.Go(-1)
}

// Forward moves one entry forward in the browser history.
func (r *Router) Forward() {
	r.browser.Go(1)
}

// Destroy removes every listener bound by Listen.
func (r *Router) Destroy() {
	for _, unbind := range r.unbinders {
		unbind()
	}
	r.unbinders = nil
}

// processGetRequest is the pipeline every navigation runs through.
func (r *Router) processGetRequest(intent NavigationIntent, replace bool) error {
	u := normalizeURL(intent, r.base)

	update, ok := r.updateLocation(u, replace)
	if !ok {
		r.logger.Debug("location unchanged, skipping dispatch", "path", u.Path, "search", u.Search)
		return nil
	}

	req, res := r.createRequestResponse(u)
	req.Method = "GET"

	r.logger.Debug("dispatching navigation",
		"id", req.ID,
		"path", req.Path,
		"url", req.OriginalURL,
		"replace", replace,
	)

	return r.routeMatching(req, res, update)
}

func (r *Router) createRequestResponse(u NormalizedURL) (*Request, *Response) {
	loc := r.browser.Location()
	protocol := strings.TrimSuffix(loc.Protocol, ":")

	req := &Request{
		ID:          uuid.NewString(),
		Path:        u.Path,
		URL:         r.currentLocation + u.Hash,
		OriginalURL: u.String(),
		BaseURL:     r.base,
		Protocol:    protocol,
		Secure:      protocol == "https",
		Hostname:    loc.Hostname,
		Referrer:    r.browser.Referrer(),
		Router:      r,
		rawQuery:    trimQueryPrefix(u.Search),
	}
	res := &Response{
		Router:  r,
		Locals:  map[string]any{},
		request: req,
	}
	return req, res
}

func (r *Router) routeMatching(req *Request, res *Response, update *locationUpdate) error {
	var dispatchErr error

	r.dispatcher.Dispatch(req, res, func(err error) {
		if err != nil {
			dispatchErr = err
			return
		}
		if !r.reloadOnUnhandled {
			r.logger.Debug("no handler for navigation", "id", req.ID, "path", req.Path)
			return
		}
		r.logger.Info("no handler for navigation, reloading page", "id", req.ID, "url", req.OriginalURL)
		r.rollbackLocation(update)
		r.browser.Assign(req.OriginalURL)
	})

	if dispatchErr != nil {
		r.logger.Error("navigation failed", "id", req.ID, "path", req.Path, "error", dispatchErr)
	}
	return dispatchErr
}
