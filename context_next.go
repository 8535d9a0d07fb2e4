package harrier

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
)

// Next continues execution to the next handler in the chain whose method and
// pattern match the request. Middleware calls Next to pass the navigation
// on, and can do more work after Next returns.
//
// If an error is set on the context (via the Error field or a panic),
// subsequent handlers are skipped. If no handler remains, the navigation is
// marked unhandled.
func (c *Context) Next() {
	// In the case that this is a sub context, we need to update the parent
	// context with the current context's state.
	defer c.tryUpdateParent()

	if c.Error != nil {
		return
	}

	c.currentHandler = nil

	// walk the chain looking for a handler node that matches the request, or
	// until we reach the end of the chain
	for c.currentHandlerNode != nil {

		// A matching node may hold several handlers. It stays on the context
		// until each of them has been handed out.
		if c.matchingHandlerNode == nil {
			for c.currentHandlerNode != nil {
				if c.currentHandlerNode.tryMatch(c) {
					c.matchingHandlerNode = c.currentHandlerNode
					break
				}
				c.currentHandlerNode = c.currentHandlerNode.Next
			}
			if c.matchingHandlerNode == nil {
				break
			}
		}

		if c.currentHandlerIndex < len(c.matchingHandlerNode.Handlers) {
			c.currentHandler = c.matchingHandlerNode.Handlers[c.currentHandlerIndex]
			c.currentHandlerIndex += 1
			break
		}

		// Every handler of the matching node has run, move on.
		c.matchingHandlerNode = nil
		c.currentHandlerNode = c.currentHandlerNode.Next
		c.currentHandlerIndex = 0
	}

	if c.currentHandler == nil {
		c.exhausted = true
		return
	}

	switch handler := c.currentHandler.(type) {
	case Transformer:
		execWithCtxRecovery(c, func() {
			handler.TransformRequest(c)
			c.Next()
			handler.TransformResponse(c)
		})
	case Handler:
		execWithCtxRecovery(c, func() {
			handler.Handle(c)
		})
	case HandlerFunc:
		execWithCtxRecovery(c, func() {
			handler(c)
		})
	case func(*Context):
		execWithCtxRecovery(c, func() {
			handler(c)
		})
	default:
		panic(fmt.Sprintf("Unknown handler type: %s", reflect.TypeOf(c.currentHandler)))
	}
}

func execWithCtxRecovery(ctx *Context, fn func()) {
	defer func() {
		if maybeErr := recover(); maybeErr != nil {
			if err, ok := maybeErr.(error); ok {
				ctx.Error = err
			} else {
				ctx.Error = fmt.Errorf("%s", maybeErr)
			}

			stack := string(debug.Stack())
			stackLines := strings.Split(stack, "\n")
			if len(stackLines) > 6 {
				stackLines = stackLines[6:]
			}
			ctx.ErrorStack = strings.Join(stackLines, "\n")
		}
	}()
	fn()
}
