//go:build js && wasm

package dombrowser

import (
	"syscall/js"

	"github.com/RobertWHurst/harrier"
)

// Browser binds harrier to the DOM of the page a js/wasm program runs in.
type Browser struct {
	window   js.Value
	document js.Value
	history  js.Value

	referrerGetter js.Func
	hasReferrer    bool
}

var _ harrier.Browser = &Browser{}

// New returns a Browser for the global window.
func New() *Browser {
	window := js.Global()
	return &Browser{
		window:   window,
		document: window.Get("document"),
		history:  window.Get("history"),
	}
}

// Location reads window.location.
func (b *Browser) Location() harrier.Location {
	location := b.window.Get("location")
	return harrier.Location{
		Protocol: location.Get("protocol").String(),
		Host:     location.Get("host").String(),
		Hostname: location.Get("hostname").String(),
		Port:     location.Get("port").String(),
		Pathname: location.Get("pathname").String(),
		Search:   location.Get("search").String(),
		Hash:     location.Get("hash").String(),
	}
}

// HistoryState reads history.state. Entries not written by harrier yield
// nil.
func (b *Browser) HistoryState() *harrier.HistoryState {
	if !b.SupportsPushState() {
		return nil
	}
	return decodeState(b.history.Get("state"))
}

// SupportsPushState reports whether history.pushState is available.
func (b *Browser) SupportsPushState() bool {
	return b.history.Type() == js.TypeObject && b.history.Get("pushState").Type() == js.TypeFunction
}

// PushState calls history.pushState.
func (b *Browser) PushState(state *harrier.HistoryState, url string) {
	b.history.Call("pushState", encodeState(state), "", url)
}

// ReplaceState calls history.replaceState.
func (b *Browser) ReplaceState(state *harrier.HistoryState, url string) {
	b.history.Call("replaceState", encodeState(state), "", url)
}

// Go calls history.go.
func (b *Browser) Go(delta int) {
	b.history.Call("go", delta)
}

// Assign calls location.assign.
func (b *Browser) Assign(url string) {
	b.window.Get("location").Call("assign", url)
}

// Referrer reads document.referrer.
func (b *Browser) Referrer() string {
	return b.document.Get("referrer").String()
}

// SetReferrer redefines document.referrer as an accessor returning referrer.
func (b *Browser) SetReferrer(referrer string) {
	getter := js.FuncOf(func(js.Value, []js.Value) any {
		return referrer
	})
	b.window.Get("Object").Call("defineProperty", b.document, "referrer", map[string]any{
		"get":          getter,
		"configurable": true,
	})
	if b.hasReferrer {
		b.referrerGetter.Release()
	}
	b.referrerGetter = getter
	b.hasReferrer = true
}

// AddPopStateListener listens for popstate on window.
func (b *Browser) AddPopStateListener(listener func(*harrier.PopStateEvent)) func() {
	return addEventListener(b.window, "popstate", func(event js.Value) {
		listener(&harrier.PopStateEvent{State: decodeState(event.Get("state"))})
	})
}

// AddClickListener listens for click on document. The link is found by
// walking up from the event target to the closest anchor.
func (b *Browser) AddClickListener(listener func(*harrier.ClickEvent)) func() {
	return addEventListener(b.document, "click", func(event js.Value) {
		listener(&harrier.ClickEvent{
			Link:             closestLink(event.Get("target")),
			Button:           event.Get("button").Int(),
			MetaKey:          event.Get("metaKey").Bool(),
			CtrlKey:          event.Get("ctrlKey").Bool(),
			ShiftKey:         event.Get("shiftKey").Bool(),
			AltKey:           event.Get("altKey").Bool(),
			DefaultPrevented: event.Get("defaultPrevented").Bool(),
			OnPreventDefault: func() { event.Call("preventDefault") },
		})
	})
}

// AddSubmitListener listens for submit on document.
func (b *Browser) AddSubmitListener(listener func(*harrier.SubmitEvent)) func() {
	return addEventListener(b.document, "submit", func(event js.Value) {
		form := event.Get("target")
		listener(&harrier.SubmitEvent{
			Action:           formAction(form),
			Method:           attribute(form, "method"),
			Target:           attribute(form, "target"),
			DefaultPrevented: event.Get("defaultPrevented").Bool(),
			OnPreventDefault: func() { event.Call("preventDefault") },
		})
	})
}

func addEventListener(target js.Value, kind string, handle func(event js.Value)) func() {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		handle(args[0])
		return nil
	})
	target.Call("addEventListener", kind, fn, false)
	return func() {
		target.Call("removeEventListener", kind, fn, false)
		fn.Release()
	}
}

func closestLink(target js.Value) *harrier.Link {
	if target.Type() != js.TypeObject || target.Get("closest").Type() != js.TypeFunction {
		return nil
	}
	anchor := target.Call("closest", "a")
	if anchor.IsNull() {
		return nil
	}
	href := anchor.Get("href")
	if href.Type() != js.TypeString {
		// SVG anchors expose href as an SVGAnimatedString.
		return nil
	}
	return &harrier.Link{
		Href:     href.String(),
		Origin:   anchor.Get("origin").String(),
		Pathname: anchor.Get("pathname").String(),
		Search:   anchor.Get("search").String(),
		Hash:     anchor.Get("hash").String(),
		Target:   attribute(anchor, "target"),
		Rel:      attribute(anchor, "rel"),
		Download: anchor.Call("hasAttribute", "download").Bool(),
	}
}

// formAction returns the resolved form action. A form control named
// "action" shadows the property, in which case the attribute is used.
func formAction(form js.Value) string {
	action := form.Get("action")
	if action.Type() == js.TypeString {
		return action.String()
	}
	return attribute(form, "action")
}

func attribute(el js.Value, name string) string {
	value := el.Call("getAttribute", name)
	if value.IsNull() {
		return ""
	}
	return value.String()
}

func encodeState(state *harrier.HistoryState) any {
	if state == nil {
		return nil
	}
	return map[string]any{
		"pathname": state.Pathname,
		"search":   state.Search,
		"hash":     state.Hash,
	}
}

func decodeState(value js.Value) *harrier.HistoryState {
	if value.Type() != js.TypeObject || value.Get("pathname").Type() != js.TypeString {
		return nil
	}
	return &harrier.HistoryState{
		Pathname: value.Get("pathname").String(),
		Search:   stringOrEmpty(value.Get("search")),
		Hash:     stringOrEmpty(value.Get("hash")),
	}
}

func stringOrEmpty(value js.Value) string {
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}
