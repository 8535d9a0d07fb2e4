package harrier

import "strings"

// onClick routes clicks on same origin links under the base path. Anything
// else, including clicks the browser should handle itself (new tabs,
// downloads, modified clicks, in page anchors), is left alone.
func (r *Router) onClick(e *ClickEvent) {
	if !r.shouldInterceptClick(e) {
		return
	}
	if !hasBasePrefix(e.Link.Pathname, r.base) {
		return
	}

	e.PreventDefault()
	r.navigateFromEvent(e.Link.intent(), false)
}

func (r *Router) shouldInterceptClick(e *ClickEvent) bool {
	if e.DefaultPrevented || e.Button != 0 || e.modified() {
		return false
	}

	link := e.Link
	if link == nil || link.Href == "" || link.Download {
		return false
	}
	if link.Target != "" && link.Target != "_self" {
		return false
	}
	if hasRelToken(link.Rel, "external") {
		return false
	}

	loc := r.browser.Location()
	if link.Origin != loc.Origin() {
		return false
	}
	if link.Hash != "" && link.Pathname == loc.Pathname && link.Search == loc.Search {
		return false
	}

	return true
}

// onSubmit routes form submissions whose action resolves under the base path.
func (r *Router) onSubmit(e *SubmitEvent) {
	if e.DefaultPrevented {
		return
	}
	if e.Target != "" && e.Target != "_self" {
		return
	}

	loc := r.browser.Location()
	action, err := NewLink(loc, e.Action)
	if err != nil {
		r.logger.Debug("ignoring submit with unparsable action", "action", e.Action, "error", err)
		return
	}
	if action.Origin != loc.Origin() {
		return
	}
	if !hasBasePrefix(action.Pathname, r.base) {
		return
	}

	e.PreventDefault()
	r.navigateFromEvent(action.intent(), false)
}

// onPopState routes the entry the browser moved to. Entries written by the
// router carry their intent as state; others are routed from the location.
func (r *Router) onPopState(e *PopStateEvent) {
	intent := intentFromLocation(r.browser.Location())
	if e.State != nil {
		intent = e.State.intent()
	}
	r.navigateFromEvent(intent, true)
}

// navigateFromEvent runs a navigation triggered by the browser. There is no
// caller to return a dispatch error to, so it is raised as a panic.
func (r *Router) navigateFromEvent(intent NavigationIntent, replace bool) {
	if err := r.processGetRequest(intent, replace); err != nil {
		panic(err)
	}
}

func (l *Link) intent() NavigationIntent {
	return NavigationIntent{Pathname: l.Pathname, Search: l.Search, Hash: l.Hash}
}

func hasRelToken(rel, token string) bool {
	for _, t := range strings.Fields(rel) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
