package setfn

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets a generated value on the
// navigation context. valueFn is called for each navigation.
//
// Use this when each navigation needs a fresh value, such as a start time.
//
// Example:
//
//	router.Use(setfn.Middleware("startedAt", time.Now))
//
// See also: set.Middleware for constant values, setvalue.Middleware for pointer values.
func Middleware[V any](key string, valueFn func() V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		ctx.Set(key, valueFn())
		ctx.Next()
	}
}
