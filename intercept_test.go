package harrier_test

import (
	"testing"

	"github.com/RobertWHurst/harrier"
)

func TestRouterClickInterception(t *testing.T) {
	tests := []struct {
		name        string
		href        string
		modify      func(*harrier.ClickEvent)
		shouldRoute bool
	}{
		{name: "same origin link", href: "/foo", shouldRoute: true},
		{name: "relative link", href: "foo?x=1", shouldRoute: true},
		{name: "absolute same origin link", href: "https://example.com/foo", shouldRoute: true},
		{name: "explicit self target", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link.Target = "_self" }, shouldRoute: true},
		{name: "other origin", href: "https://other.example.org/foo"},
		{name: "other scheme", href: "http://example.com/foo"},
		{name: "blank target", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link.Target = "_blank" }},
		{name: "named target", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link.Target = "preview" }},
		{name: "download", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link.Download = true }},
		{name: "external rel", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link.Rel = "noopener External" }},
		{name: "middle button", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Button = 1 }},
		{name: "meta key", href: "/foo", modify: func(e *harrier.ClickEvent) { e.MetaKey = true }},
		{name: "ctrl key", href: "/foo", modify: func(e *harrier.ClickEvent) { e.CtrlKey = true }},
		{name: "shift key", href: "/foo", modify: func(e *harrier.ClickEvent) { e.ShiftKey = true }},
		{name: "alt key", href: "/foo", modify: func(e *harrier.ClickEvent) { e.AltKey = true }},
		{name: "already prevented", href: "/foo", modify: func(e *harrier.ClickEvent) { e.DefaultPrevented = true }},
		{name: "not on a link", href: "/foo", modify: func(e *harrier.ClickEvent) { e.Link = nil }},
		{name: "same page anchor", href: "#section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, browser := setupRouter("https://example.com/")

			routed := false
			router.Use(func(ctx *harrier.Context) {
				routed = true
			})
			if err := router.Listen(harrier.WithoutDispatch()); err != nil {
				t.Fatal(err)
			}

			var modify []func(*harrier.ClickEvent)
			if tt.modify != nil {
				modify = append(modify, tt.modify)
			}
			event := browser.Click(tt.href, modify...)

			if routed != tt.shouldRoute {
				t.Errorf("expected routed=%v, got %v", tt.shouldRoute, routed)
			}
			if tt.shouldRoute && len(browser.Loads()) != 0 {
				t.Errorf("expected no page load for a routed click, got %v", browser.Loads())
			}
			if tt.shouldRoute && !event.DefaultPrevented {
				t.Error("expected a routed click to prevent the default action")
			}
		})
	}
}

func TestRouterClickWithBase(t *testing.T) {
	tests := []struct {
		href         string
		shouldRoute  bool
		expectedPath string
	}{
		{href: "/test", shouldRoute: true, expectedPath: "/"},
		{href: "/test/", shouldRoute: true, expectedPath: "/"},
		{href: "/test/foo", shouldRoute: true, expectedPath: "/foo"},
		{href: "/test?q=1", shouldRoute: true, expectedPath: "/"},
		{href: "/testing"},
		{href: "/other/test"},
		{href: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			router, browser := setupRouter("https://example.com/test/start", harrier.WithBase("/test"))

			var path string
			router.Use(func(ctx *harrier.Context) {
				path = ctx.Path()
			})
			if err := router.Listen(harrier.WithoutDispatch()); err != nil {
				t.Fatal(err)
			}

			event := browser.Click(tt.href)

			if event.DefaultPrevented != tt.shouldRoute {
				t.Errorf("expected prevented=%v, got %v", tt.shouldRoute, event.DefaultPrevented)
			}
			if path != tt.expectedPath {
				t.Errorf("expected path %q, got %q", tt.expectedPath, path)
			}
			if !tt.shouldRoute && len(browser.Loads()) != 1 {
				t.Errorf("expected the browser to load the link, got %v", browser.Loads())
			}
		})
	}
}

func TestRouterClickUpdatesHistory(t *testing.T) {
	router, browser := setupRouter("https://example.com/")
	router.Use(func(ctx *harrier.Context) {})

	if err := router.Listen(); err != nil {
		t.Fatal(err)
	}
	browser.Click("/a?x=1#top")
	browser.Click("/a?x=1#bottom")

	expectHistory(t, browser, []string{"/", "/a?x=1#top", "/a?x=1#bottom"})
}

func TestRouterSubmitInterception(t *testing.T) {
	tests := []struct {
		name         string
		action       string
		modify       func(*harrier.SubmitEvent)
		shouldRoute  bool
		expectedPath string
	}{
		{name: "same origin get", action: "/search?q=go", shouldRoute: true, expectedPath: "/search"},
		{name: "relative action", action: "results", shouldRoute: true, expectedPath: "/forms/results"},
		{name: "post is routed as get", action: "/save", modify: func(e *harrier.SubmitEvent) { e.Method = "post" }, shouldRoute: true, expectedPath: "/save"},
		{name: "other origin", action: "https://other.example.org/search"},
		{name: "blank target", action: "/search", modify: func(e *harrier.SubmitEvent) { e.Target = "_blank" }},
		{name: "already prevented", action: "/search", modify: func(e *harrier.SubmitEvent) { e.DefaultPrevented = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, browser := setupRouter("https://example.com/forms/")

			var method, path string
			router.Use(func(ctx *harrier.Context) {
				method = ctx.Method()
				path = ctx.Path()
			})
			if err := router.Listen(harrier.WithoutDispatch()); err != nil {
				t.Fatal(err)
			}

			var modify []func(*harrier.SubmitEvent)
			if tt.modify != nil {
				modify = append(modify, tt.modify)
			}
			event := browser.Submit(tt.action, modify...)

			if tt.shouldRoute && !event.DefaultPrevented {
				t.Error("expected a routed submission to prevent the default action")
			}
			if path != tt.expectedPath {
				t.Errorf("expected path %q, got %q", tt.expectedPath, path)
			}
			if tt.shouldRoute && method != "GET" {
				t.Errorf("expected method GET, got %q", method)
			}
		})
	}
}

func TestRouterSubmitWithBase(t *testing.T) {
	router, browser := setupRouter("https://example.com/test/", harrier.WithBase("/test"))

	var paths []string
	router.Use(func(ctx *harrier.Context) {
		paths = append(paths, ctx.Path())
	})
	if err := router.Listen(harrier.WithoutDispatch()); err != nil {
		t.Fatal(err)
	}

	browser.Submit("/testing/search")
	if len(paths) != 0 {
		t.Errorf("expected a submit outside the base not to be routed, got %v", paths)
	}

	// The unrouted submit loaded a new document, so listen again.
	if err := router.Listen(harrier.WithoutDispatch()); err != nil {
		t.Fatal(err)
	}
	browser.Submit("/test/search")

	if len(paths) != 1 || paths[0] != "/search" {
		t.Errorf("expected [/search], got %v", paths)
	}
}
