package localsetvalue_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/RobertWHurst/harrier"
	memorybrowser "github.com/RobertWHurst/harrier/memory-browser"
	"github.com/RobertWHurst/harrier/middleware/localsetvalue"
)

func setupRouter() *harrier.Router {
	browser := memorybrowser.New("https://example.com/")
	return harrier.NewRouter(browser, harrier.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestMiddlewareDereferencesOnce(t *testing.T) {
	router := setupRouter()

	limit := 10
	router.Use(localsetvalue.Middleware("limit", &limit))

	var seen []int
	router.Get("/:page", func(ctx *harrier.Context) {
		seen = append(seen, ctx.MustGetLocal("limit").(int))
	})

	if err := router.ChangeRoute("/a"); err != nil {
		t.Fatal(err)
	}
	limit = 20
	if err := router.ChangeRoute("/b"); err != nil {
		t.Fatal(err)
	}

	if len(seen) != 2 || seen[0] != 10 || seen[1] != 10 {
		t.Errorf("expected [10 10], got %v", seen)
	}
}
