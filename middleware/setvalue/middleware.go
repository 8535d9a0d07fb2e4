package setvalue

import "github.com/RobertWHurst/harrier"

// Middleware creates middleware that sets the value value points to on the
// navigation context. The pointer is dereferenced on every navigation, so
// changes to the pointed-to value show up in later navigations.
func Middleware[V any](key string, value *V) func(ctx *harrier.Context) {
	return func(ctx *harrier.Context) {
		ctx.Set(key, *value)
		ctx.Next()
	}
}
