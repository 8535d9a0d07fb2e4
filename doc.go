// Package harrier provides a client side URL router for Go programs running
// in a browser.
//
// Harrier intercepts in page navigation (link clicks, form submissions and
// history traversal), keeps the browser history in step with it, and
// dispatches every navigation through a chain of handlers, much like a
// server side router dispatches HTTP requests.
//
// # Key Features
//
//   - Pattern-based routing with parameters and wildcards
//   - Composable middleware with Next, plus Transformers that wrap a chain
//   - History synchronisation with push and replace semantics
//   - Optional base path for apps served below the site root
//   - Pluggable Dispatcher and query string parser
//   - A Browser interface with an in-memory implementation for tests
//
// # Quick Start
//
// Create a router over a Browser, register handlers and listen:
//
//	router := harrier.NewRouter(dombrowser.New(), harrier.WithBase("/app"))
//
//	router.Get("/users/:id", func(ctx *harrier.Context) {
//	    renderUser(ctx.Params().Get("id"))
//	})
//
//	if err := router.Listen(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routing
//
// Routes support exact paths, named parameters, and wildcards:
//
//	router.Get("/users/list", handler)   // Exact match
//	router.Get("/users/:id", handler)    // Named parameter
//	router.Get("/files/**", handler)     // Wildcard
//
// A navigation no handler finishes is unhandled. By default it is dropped;
// with WithReloadOnUnhandled the browser loads the URL instead, so the
// server can answer it.
//
// # Middleware
//
// Middleware executes before handlers and can modify the context or
// short-circuit the chain:
//
//	router.Use(func(ctx *harrier.Context) {
//	    slog.Info("navigating", "path", ctx.Path())
//	    ctx.Next()
//	})
//
// # Context Storage
//
// Store values per navigation or for the lifetime of the router:
//
//	ctx.Set("startedAt", time.Now())    // Per-navigation
//	ctx.SetLocal("user", user)          // Per-router
package harrier
