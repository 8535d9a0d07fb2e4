package localsetvalue

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets the value value points to as a
// router local. The pointer is dereferenced on the first navigation that
// reaches the middleware, so later updates to the pointed-to value are not
// reflected.
//
// See also: localset.Middleware for direct values, localsetfn.Middleware for generated values.
func Middleware[V any](key string, value *V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		if _, ok := ctx.GetLocal(key); !ok {
			ctx.SetLocal(key, *value)
		}
		ctx.Next()
	}
}
