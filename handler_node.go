package harrier

// HandlerNode is one registration in a Mux chain. An empty Method matches
// any method and a nil Pattern matches any path.
type HandlerNode struct {
	Method   string
	Pattern  *Pattern
	Handlers []any
	Next     *HandlerNode
}

func (n *HandlerNode) tryMatch(ctx *Context) bool {
	if n.Method != "" && n.Method != ctx.Method() {
		return false
	}
	if n.Pattern == nil {
		return true
	}
	return n.Pattern.MatchInto(ctx.Path(), &ctx.params)
}
