package harrier

// Dispatcher runs registered handlers against a navigation. The router
// composes a Dispatcher rather than implementing routing itself; Mux is the
// default.
//
// Dispatch runs synchronously. It calls next with a non-nil error when the
// chain failed, with nil when the chain ran out without a handler finishing
// the navigation, and not at all when a handler finished it.
type Dispatcher interface {
	Use(handlers ...any)
	Get(path string, handlers ...any)
	Post(path string, handlers ...any)
	Dispatch(req *Request, res *Response, next func(err error))
}
