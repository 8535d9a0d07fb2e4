package harrier

import (
	"log/slog"
	"sync"
)

// Option configures a Router at construction.
type Option func(*routerConfig)

type routerConfig struct {
	base              string
	queryParser       QueryParser
	parseQuerystring  bool
	reloadOnUnhandled bool
	dispatcher        Dispatcher
	logger            *slog.Logger
}

// WithBase sets the base path routes are relative to. Links outside the
// base are left to the browser.
func WithBase(base string) Option {
	return func(c *routerConfig) {
		c.base = base
	}
}

// WithQueryParser installs parser as the first middleware of the router so
// that every Request has its Query populated. url.ParseQuery satisfies
// QueryParser.
func WithQueryParser(parser QueryParser) Option {
	return func(c *routerConfig) {
		c.queryParser = parser
	}
}

// WithQuerystringParsing enables parsing with DefaultQueryParser.
//
// Deprecated: use WithQueryParser(harrier.DefaultQueryParser).
func WithQuerystringParsing() Option {
	return func(c *routerConfig) {
		c.parseQuerystring = true
	}
}

// WithReloadOnUnhandled makes navigations no handler finished fall back to a
// full page load of the target URL.
func WithReloadOnUnhandled() Option {
	return func(c *routerConfig) {
		c.reloadOnUnhandled = true
	}
}

// WithDispatcher replaces the default Mux with another Dispatcher.
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(c *routerConfig) {
		c.dispatcher = dispatcher
	}
}

// WithLogger sets the logger used by the router. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *routerConfig) {
		c.logger = logger
	}
}

var querystringDeprecation sync.Once

func (c *routerConfig) resolveQueryParser(logger *slog.Logger) QueryParser {
	if c.queryParser != nil {
		return c.queryParser
	}
	if c.parseQuerystring {
		querystringDeprecation.Do(func() {
			logger.Warn("WithQuerystringParsing is deprecated and will be removed, " +
				"use WithQueryParser(harrier.DefaultQueryParser)")
		})
		return DefaultQueryParser
	}
	return nil
}

// ListenOption configures Listen. Every binding is enabled unless an option
// turns it off.
type ListenOption func(*listenOptions)

type listenOptions struct {
	popState         bool
	interceptClicks  bool
	interceptSubmits bool
	dispatch         bool
}

// WithoutPopState leaves back and forward navigation to the browser.
func WithoutPopState() ListenOption {
	return func(o *listenOptions) {
		o.popState = false
	}
}

// WithoutClickInterception leaves link clicks to the browser.
func WithoutClickInterception() ListenOption {
	return func(o *listenOptions) {
		o.interceptClicks = false
	}
}

// WithoutSubmitInterception leaves form submissions to the browser.
func WithoutSubmitInterception() ListenOption {
	return func(o *listenOptions) {
		o.interceptSubmits = false
	}
}

// WithoutDispatch skips routing the current location when listening starts.
func WithoutDispatch() ListenOption {
	return func(o *listenOptions) {
		o.dispatch = false
	}
}

// NavigateOption configures ChangeRoute.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	replace bool
}

// WithReplace replaces the current history entry instead of pushing a new one.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) {
		o.replace = true
	}
}
