package harrier

// CtxFree returns a context to the pool. It is for Dispatcher
// implementations that create their own contexts with NewContext and
// shouldn't be used in most cases.
func CtxFree(ctx *Context) {
	ctx.free()
}

// CtxAssociatedValues exposes the values stored with Context.Set, for
// dispatchers that need to carry them across chains.
func CtxAssociatedValues(ctx *Context) map[string]any {
	return ctx.associatedValues
}

// CtxUnhandled reports whether the chain run by ctx was exhausted. A custom
// Dispatcher uses it to decide whether to call next with a nil error.
func CtxUnhandled(ctx *Context) bool {
	return ctx.exhausted
}
