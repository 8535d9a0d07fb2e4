package harrier

import (
	"net/url"
	"sync"
)

// Context carries one navigation through a handler chain. Contexts are pooled
// and must not be retained once the handler that received one returns.
type Context struct {
	parentContext *Context

	Request  *Request
	Response *Response
	params   Params

	// Error fails the navigation. Handlers set it instead of calling Next;
	// panics in handlers set it too, with the stack in ErrorStack.
	Error      error
	ErrorStack string

	currentHandlerNode  *HandlerNode
	matchingHandlerNode *HandlerNode
	currentHandlerIndex int
	currentHandler      any
	exhausted           bool

	associatedValues map[string]any
}

// NewContext creates a context that runs handlers in order.
func NewContext(req *Request, res *Response, handlers ...any) *Context {
	return NewContextWithNode(req, res, &HandlerNode{Handlers: handlers})
}

// NewContextWithNode creates a context that walks the chain starting at
// firstHandlerNode.
func NewContextWithNode(req *Request, res *Response, firstHandlerNode *HandlerNode) *Context {
	ctx := contextFromPool()

	ctx.Request = req
	ctx.Response = res
	ctx.currentHandlerNode = firstHandlerNode

	return ctx
}

// NewSubContextWithNode creates a context for a nested chain. Its error and
// values are copied back to ctx as it runs.
func NewSubContextWithNode(ctx *Context, firstHandlerNode *HandlerNode) *Context {
	subCtx := contextFromPool()

	subCtx.parentContext = ctx

	subCtx.Request = ctx.Request
	subCtx.Response = ctx.Response

	for k, v := range ctx.params {
		subCtx.params[k] = v
	}

	subCtx.Error = ctx.Error
	subCtx.ErrorStack = ctx.ErrorStack

	for k, v := range ctx.associatedValues {
		subCtx.associatedValues[k] = v
	}

	subCtx.currentHandlerNode = firstHandlerNode

	return subCtx
}

var contextPool = sync.Pool{
	New: func() any {
		return &Context{
			params:           Params{},
			associatedValues: map[string]any{},
		}
	},
}

func contextFromPool() *Context {
	ctx := contextPool.Get().(*Context)

	ctx.parentContext = nil

	ctx.Request = nil
	ctx.Response = nil
	for k := range ctx.params {
		delete(ctx.params, k)
	}

	ctx.Error = nil
	ctx.ErrorStack = ""

	ctx.currentHandlerNode = nil
	ctx.matchingHandlerNode = nil
	ctx.currentHandlerIndex = 0
	ctx.currentHandler = nil
	ctx.exhausted = false

	for k := range ctx.associatedValues {
		delete(ctx.associatedValues, k)
	}

	return ctx
}

func (c *Context) free() {
	contextPool.Put(c)
}

func (c *Context) tryUpdateParent() {
	if c.parentContext == nil {
		return
	}

	c.parentContext.Error = c.Error
	c.parentContext.ErrorStack = c.ErrorStack

	for k, v := range c.associatedValues {
		c.parentContext.associatedValues[k] = v
	}
}

// Set stores a value for the rest of this navigation.
func (c *Context) Set(key string, value any) {
	c.associatedValues[key] = value
}

// Get returns a value stored with Set.
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.associatedValues[key]
	return value, ok
}

// MustGet is like Get but panics if key is not set.
func (c *Context) MustGet(key string) any {
	value, ok := c.associatedValues[key]
	if !ok {
		panic("context value \"" + key + "\" is not set")
	}
	return value
}

// SetLocal stores a value on the router, where it outlives the navigation.
// It panics if the request was not dispatched by a router.
func (c *Context) SetLocal(key string, value any) {
	if c.Request.Router == nil {
		panic(ErrDetachedResponse)
	}
	c.Request.Router.SetLocal(key, value)
}

// GetLocal returns a router local. It reports false if the key is not set or
// the request was not dispatched by a router.
func (c *Context) GetLocal(key string) (any, bool) {
	if c.Request.Router == nil {
		return nil, false
	}
	return c.Request.Router.GetLocal(key)
}

// MustGetLocal is like GetLocal but panics if key is not set.
func (c *Context) MustGetLocal(key string) any {
	value, ok := c.GetLocal(key)
	if !ok {
		panic("router local \"" + key + "\" is not set")
	}
	return value
}

// Path returns the base relative path of the navigation.
func (c *Context) Path() string {
	return c.Request.Path
}

// Method returns the request method.
func (c *Context) Method() string {
	return c.Request.Method
}

// Params returns the parameters extracted by the current handler's pattern.
func (c *Context) Params() Params {
	return c.params
}

// Query returns the parsed query. It is nil unless the router has a query
// parser.
func (c *Context) Query() url.Values {
	return c.Request.Query
}

// Unhandled reports whether the chain ran out without a handler finishing
// the navigation. Transformers use it in TransformResponse.
func (c *Context) Unhandled() bool {
	return c.exhausted
}
