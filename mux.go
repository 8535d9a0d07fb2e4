package harrier

import (
	"net/http"
	"reflect"
	"strings"
)

// Mux is the default Dispatcher. It keeps handlers in registration order and
// runs those whose method and pattern match a request until one of them
// stops calling Next.
//
// A Mux is itself a Handler, so one can be mounted inside another with Use.
type Mux struct {
	firstHandlerNode *HandlerNode
	lastHandlerNode  *HandlerNode
}

var _ Dispatcher = &Mux{}
var _ Handler = &Mux{}

// NewMux creates an empty Mux.
func NewMux() *Mux {
	return &Mux{}
}

// Use registers middleware handlers that run for every request, whatever
// its method. Middleware can be scoped to a path by giving a path as the
// first argument; it then runs for that path and everything below it:
//
//	mux.Use(loggingMiddleware)
//	mux.Use("/admin", requireLogin)
//
// Muxes can be mounted the same way to build modular routes. A mounted mux
// sees the full path:
//
//	admin := harrier.NewMux()
//	admin.Get("/admin/users", listUsers)
//	mux.Use("/admin", admin)
//
// Handlers must be of type Handler, Transformer, HandlerFunc, or
// func(*Context).
func (m *Mux) Use(handlers ...any) {
	mountPath := "/**"
	if len(handlers) != 0 {
		if customMountPath, ok := handlers[0].(string); ok {
			if !strings.HasSuffix(customMountPath, "/**") {
				customMountPath = strings.TrimSuffix(customMountPath, "/")
				customMountPath += "/**"
			}
			mountPath = customMountPath
			handlers = handlers[1:]
		}
	}

	m.bind("", mountPath, handlers...)
}

// Get registers handlers for GET requests matching the path pattern. The
// pattern supports parameters (:name), wildcards (*) and modifiers:
//
//	mux.Get("/users/:id", showUser)
//	mux.Get("/docs/:page*", showDocs)
//
// Panics if no handlers are provided, if a handler is of an invalid type, or
// if the pattern does not parse.
func (m *Mux) Get(path string, handlers ...any) {
	m.bind(http.MethodGet, path, handlers...)
}

// Post registers handlers for POST requests matching the path pattern.
func (m *Mux) Post(path string, handlers ...any) {
	m.bind(http.MethodPost, path, handlers...)
}

// All registers handlers for requests of any method matching the path
// pattern.
func (m *Mux) All(path string, handlers ...any) {
	m.bind("", path, handlers...)
}

// Method registers handlers for requests of the given method matching the
// path pattern.
func (m *Mux) Method(method, path string, handlers ...any) {
	m.bind(strings.ToUpper(method), path, handlers...)
}

// Dispatch runs the chain against req. See Dispatcher for when next is
// called.
func (m *Mux) Dispatch(req *Request, res *Response, next func(err error)) {
	ctx := NewContextWithNode(req, res, m.firstHandlerNode)
	ctx.Next()

	err, unhandled := ctx.Error, ctx.exhausted
	ctx.free()

	if err != nil {
		next(err)
		return
	}
	if unhandled {
		next(nil)
	}
}

// Handle implements Handler so a Mux can be mounted in another chain. If no
// handler in the mux finishes the navigation the outer chain continues.
func (m *Mux) Handle(ctx *Context) {
	subCtx := NewSubContextWithNode(ctx, m.firstHandlerNode)
	subCtx.Next()
	unhandled := subCtx.exhausted
	subCtx.free()
	if unhandled {
		ctx.Next()
	}
}

// Lookup finds the pattern a handler was registered with. Handlers are
// compared by identity, so only funcs and pointers can be looked up. Mounted
// muxes are searched too. Example:
//
//	if pattern, ok := mux.Lookup(showUser); ok {
//	    path, _ := pattern.Path(harrier.Params{"id": "42"}, nil)
//	}
func (m *Mux) Lookup(handler any) (*Pattern, bool) {
	targetPtr, ok := handlerPointer(handler)
	if !ok {
		return nil, false
	}

	currentNode := m.firstHandlerNode
	for currentNode != nil {
		for _, h := range currentNode.Handlers {
			if ptr, ok := handlerPointer(h); ok && ptr == targetPtr {
				return currentNode.Pattern, true
			}
			if mounted, ok := h.(*Mux); ok {
				if pattern, found := mounted.Lookup(handler); found {
					return pattern, true
				}
			}
		}
		currentNode = currentNode.Next
	}

	return nil, false
}

func (m *Mux) bind(method string, path string, handlers ...any) {
	if len(handlers) == 0 {
		panic("no handlers provided")
	}

	for _, handler := range handlers {
		switch handler.(type) {
		case Transformer, Handler, HandlerFunc, func(*Context):
			continue
		}
		panic("invalid handler type. Must be Handler, Transformer, HandlerFunc, or " +
			"func(*Context). Got: " + reflect.TypeOf(handler).String())
	}

	pattern, err := NewPattern(path)
	if err != nil {
		panic("invalid route pattern \"" + path + "\": " + err.Error())
	}

	nextHandlerNode := &HandlerNode{
		Method:   method,
		Pattern:  pattern,
		Handlers: handlers,
	}

	if m.firstHandlerNode == nil {
		m.firstHandlerNode = nextHandlerNode
		m.lastHandlerNode = nextHandlerNode
	} else {
		m.lastHandlerNode.Next = nextHandlerNode
		m.lastHandlerNode = nextHandlerNode
	}
}

func handlerPointer(handler any) (uintptr, bool) {
	v := reflect.ValueOf(handler)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer:
		return v.Pointer(), true
	}
	return 0, false
}
