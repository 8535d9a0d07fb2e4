package harrier

// locationUpdate holds what is needed to put the history entry back the way
// it was before a navigation wrote to it.
type locationUpdate struct {
	prevLocation string
	prevHref     string
	prevState    *HistoryState
}

// updateLocation records u as the current location and writes it to the
// browser history. The comparison key is the base relative path plus the
// search, so a navigation that only changes the hash, or that repeats the
// current location, reports false and must not be dispatched.
func (r *Router) updateLocation(u NormalizedURL, replace bool) (*locationUpdate, bool) {
	next := u.Path + u.Search
	if r.currentLocation == next {
		return nil, false
	}

	loc := r.browser.Location()
	update := &locationUpdate{
		prevLocation: r.currentLocation,
		prevHref:     loc.Pathname + loc.Search + loc.Hash,
		prevState:    r.browser.HistoryState(),
	}
	r.currentLocation = next

	if r.browser.SupportsPushState() {
		state := createHistoryState(u)
		if replace {
			r.browser.ReplaceState(state, u.String())
		} else {
			r.browser.PushState(state, u.String())
			if update.prevLocation != "" {
				r.browser.SetReferrer(loc.Href())
			}
		}
	}

	return update, true
}

// rollbackLocation restores the entry recorded by update.
func (r *Router) rollbackLocation(update *locationUpdate) {
	r.currentLocation = update.prevLocation
	if r.browser.SupportsPushState() {
		r.browser.ReplaceState(update.prevState, update.prevHref)
	}
}
