package set

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets a value on the navigation context.
// The value is set once when the middleware is created and reused for every
// navigation. Values set on the context only exist for the duration of that
// navigation's handler chain.
//
// Example:
//
//	router.Use(set.Middleware("title", "Dashboard"))
//
//	router.Get("/", func(ctx *harrier.Context) {
//	    title := ctx.MustGet("title").(string)  // "Dashboard"
//	    render(title)
//	})
//
// See also: setfn.Middleware for dynamic values, setvalue.Middleware for pointer values.
func Middleware[V any](key string, value V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		ctx.Set(key, value)
		ctx.Next()
	}
}
