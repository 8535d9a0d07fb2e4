package localset

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets a router local. Locals live as
// long as the router, so every navigation sees the same value and changes
// made by one handler are visible to later navigations.
//
// Example:
//
//	router.Use(localset.Middleware("appVersion", "1.4.0"))
//
//	router.Get("/about", func(ctx *harrier.Context) {
//	    version := ctx.MustGetLocal("appVersion").(string)
//	    render(version)
//	})
//
// The local is only set if absent, so values replaced by handlers are kept.
//
// See also: localsetfn.Middleware for generated values, localsetvalue.Middleware for pointer values.
func Middleware[V any](key string, value V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		if _, ok := ctx.GetLocal(key); !ok {
			ctx.SetLocal(key, value)
		}
		ctx.Next()
	}
}
