package harrier

// Handler is a handler object interface. Any object that implements this
// interface can be used as a handler in a handler chain.
type Handler interface {
	Handle(ctx *Context)
}

// HandlerFunc is a function adapter that allows ordinary functions to be used
// as handlers.
type HandlerFunc func(ctx *Context)

// Transformer is a handler object that runs on both sides of the rest of the
// chain: TransformRequest before it and TransformResponse once it has
// returned, whether or not a handler finished the navigation.
type Transformer interface {
	TransformRequest(ctx *Context)
	TransformResponse(ctx *Context)
}
