package set_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/RobertWHurst/harrier"
	memorybrowser "github.com/RobertWHurst/harrier/memory-browser"
	"github.com/RobertWHurst/harrier/middleware/set"
)

func setupRouter() *harrier.Router {
	browser := memorybrowser.New("https://example.com/")
	return harrier.NewRouter(browser, harrier.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestMiddleware(t *testing.T) {
	router := setupRouter()
	router.Use(set.Middleware("apiVersion", "v1"))
	router.Use(set.Middleware("config", map[string]int{"timeout": 30}))

	called := false
	router.Get("/test", func(ctx *harrier.Context) {
		called = true

		version, ok := ctx.Get("apiVersion")
		if !ok {
			t.Error("expected apiVersion to be set")
		}
		if version != "v1" {
			t.Errorf("expected 'v1', got %v", version)
		}

		config, ok := ctx.Get("config")
		if !ok {
			t.Fatal("expected config to be set")
		}
		if config.(map[string]int)["timeout"] != 30 {
			t.Errorf("expected timeout 30, got %d", config.(map[string]int)["timeout"])
		}
	})

	if err := router.ChangeRoute("/test"); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("expected the handler to run")
	}
}

func TestMiddlewareValueDoesNotPersistAcrossNavigations(t *testing.T) {
	router := setupRouter()
	router.Use(set.Middleware("counter", 0))

	router.Get("/increment", func(ctx *harrier.Context) {
		counter := ctx.MustGet("counter").(int)
		ctx.Set("counter", counter+1)
	})

	var counter int
	router.Get("/check", func(ctx *harrier.Context) {
		counter = ctx.MustGet("counter").(int)
	})

	for _, path := range []string{"/increment", "/check"} {
		if err := router.ChangeRoute(path); err != nil {
			t.Fatal(err)
		}
	}
	if counter != 0 {
		t.Errorf("expected counter to be 0 (reset), got %d", counter)
	}
}
