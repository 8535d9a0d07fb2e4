package localsetfn

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets a generated router local. valueFn
// is called once, on the first navigation that reaches the middleware; the
// value is then shared by every later navigation.
//
// Example:
//
//	router.Use(localsetfn.Middleware("session", loadSession))
//
// See also: localset.Middleware for constant values, localsetvalue.Middleware for pointer values.
func Middleware[V any](key string, valueFn func() V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		if _, ok := ctx.GetLocal(key); !ok {
			ctx.SetLocal(key, valueFn())
		}
		ctx.Next()
	}
}
