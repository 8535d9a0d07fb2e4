//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/RobertWHurst/harrier"
	dombrowser "github.com/RobertWHurst/harrier/dom-browser"
	"github.com/RobertWHurst/harrier/middleware/localsetfn"
	"github.com/RobertWHurst/harrier/middleware/logging"
)

type user struct {
	Name string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	router := harrier.NewRouter(dombrowser.New(),
		harrier.WithBase("/app"),
		harrier.WithQueryParser(harrier.DefaultQueryParser),
		harrier.WithReloadOnUnhandled(),
		harrier.WithLogger(logger),
	)

	router.Use(logging.Middleware(logger))
	router.Use(localsetfn.Middleware("user", func() *user {
		return &user{Name: "guest"}
	}))

	router.Get("/", func(ctx *harrier.Context) {
		render("<h1>Home</h1><a href=\"/app/users/1\">First user</a>")
	})

	router.Get("/users/:id", func(ctx *harrier.Context) {
		current := ctx.MustGetLocal("user").(*user)
		render("<h1>User " + ctx.Params().Get("id") + "</h1><p>Viewing as " + current.Name + "</p>")
	})

	router.Get("/search", func(ctx *harrier.Context) {
		var query struct {
			Term string `query:"q"`
		}
		if err := ctx.Request.BindQuery(&query); err != nil {
			ctx.Error = err
			return
		}
		render("<h1>Results for " + query.Term + "</h1>")
	})

	if err := router.Listen(); err != nil {
		logger.Error("initial navigation failed", "error", err)
	}

	select {}
}

func render(html string) {
	js.Global().Get("document").Call("getElementById", "app").Set("innerHTML", html)
}
