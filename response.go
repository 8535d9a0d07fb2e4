package harrier

import "errors"

// ErrDetachedResponse is returned by Response methods that need a router
// when the response was not created by one.
var ErrDetachedResponse = errors.New("response is not attached to a router")

// Response is the handle handlers use to act on the navigation they are
// serving.
type Response struct {
	// Router is the router that dispatched the navigation.
	Router *Router

	// Locals holds values scoped to this navigation.
	Locals map[string]any

	request *Request
}

// NewResponse returns a response which is not attached to a router.
func NewResponse() *Response {
	return &Response{Locals: map[string]any{}}
}

// Redirect navigates to rawURL, replacing the history entry of the
// navigation being served.
func (r *Response) Redirect(rawURL string) error {
	if r.Router == nil {
		return ErrDetachedResponse
	}
	return r.Router.ChangeRoute(rawURL, WithReplace())
}

// Reload loads the requested URL from the server with a full page
// navigation.
func (r *Response) Reload() error {
	if r.Router == nil || r.request == nil {
		return ErrDetachedResponse
	}
	r.Router.browser.Assign(r.request.OriginalURL)
	return nil
}
