package memorybrowser

import (
	"github.com/RobertWHurst/harrier"
)

// Click simulates a primary button click on an anchor pointing at href,
// resolved against the current location. Each modify func can adjust the
// event before it is delivered, for example to set a modifier key or the
// link target. If no listener prevents the default action the browser
// follows the link: a same document hash link adds a history entry, a
// _self link is loaded, anything else is ignored.
func (b *Browser) Click(href string, modify ...func(*harrier.ClickEvent)) *harrier.ClickEvent {
	link, err := harrier.NewLink(b.Location(), href)
	if err != nil {
		panic("memorybrowser: " + err.Error())
	}

	event := &harrier.ClickEvent{Link: link}
	for _, fn := range modify {
		fn(event)
	}

	for _, l := range snapshot(b.clickListeners) {
		l.fn(event)
	}

	if !event.DefaultPrevented {
		b.followLink(event)
	}
	return event
}

func (b *Browser) followLink(event *harrier.ClickEvent) {
	link := event.Link
	if link == nil || event.Button != 0 || link.Download || (link.Target != "" && link.Target != "_self") {
		return
	}

	loc := b.Location()
	if link.Origin == loc.Origin() && link.Pathname == loc.Pathname &&
		link.Search == loc.Search && link.Hash != "" {
		b.push(entry{url: b.resolve(link.Href), document: b.document})
		return
	}

	b.Assign(link.Href)
}

// Submit simulates submitting a form with the given action. Each modify func
// can adjust the event before it is delivered. If no listener prevents the
// default action the resolved action is loaded, unless the form targets
// another window.
func (b *Browser) Submit(action string, modify ...func(*harrier.SubmitEvent)) *harrier.SubmitEvent {
	event := &harrier.SubmitEvent{Action: action, Method: "get"}
	for _, fn := range modify {
		fn(event)
	}

	for _, l := range snapshot(b.submitListeners) {
		l.fn(event)
	}

	if !event.DefaultPrevented && (event.Target == "" || event.Target == "_self") {
		b.Assign(event.Action)
	}
	return event
}
