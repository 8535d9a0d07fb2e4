package memorybrowser_test

import (
	"reflect"
	"testing"

	"github.com/RobertWHurst/harrier"
	memorybrowser "github.com/RobertWHurst/harrier/memory-browser"
)

func TestNewPanicsOnRelativeURL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a relative url")
		}
	}()
	memorybrowser.New("/relative")
}

func TestLocation(t *testing.T) {
	browser := memorybrowser.New("http://localhost:3000/a/b?c=d#e")

	expected := harrier.Location{
		Protocol: "http:",
		Host:     "localhost:3000",
		Hostname: "localhost",
		Port:     "3000",
		Pathname: "/a/b",
		Search:   "?c=d",
		Hash:     "#e",
	}
	if loc := browser.Location(); loc != expected {
		t.Errorf("expected %+v, got %+v", expected, loc)
	}
	if browser.Location().Href() != "http://localhost:3000/a/b?c=d#e" {
		t.Errorf("unexpected href %q", browser.Location().Href())
	}
}

func TestPushAndReplaceState(t *testing.T) {
	browser := memorybrowser.New("https://example.com/")
	state := &harrier.HistoryState{Pathname: "/b"}

	browser.PushState(nil, "/a")
	browser.PushState(state, "/b")
	browser.Back()
	browser.PushState(nil, "/c")
	browser.ReplaceState(nil, "/d?x=1")

	if history := browser.History(); !reflect.DeepEqual(history, []string{"/", "/a", "/d?x=1"}) {
		t.Errorf("expected forward entries to be dropped, got %v", history)
	}
	if browser.Index() != 2 {
		t.Errorf("expected index 2, got %d", browser.Index())
	}
}

func TestPushStateRejectsOtherOrigins(t *testing.T) {
	browser := memorybrowser.New("https://example.com/")

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a cross origin push")
		}
	}()
	browser.PushState(nil, "https://other.example.org/")
}

func TestGoFiresPopState(t *testing.T) {
	browser := memorybrowser.New("https://example.com/")
	stateA := &harrier.HistoryState{Pathname: "/a"}
	browser.PushState(stateA, "/a")
	browser.PushState(nil, "/b")

	var events []*harrier.PopStateEvent
	remove := browser.AddPopStateListener(func(e *harrier.PopStateEvent) {
		events = append(events, e)
	})

	browser.Back()
	browser.Go(-5)
	browser.Forward()

	if len(events) != 2 {
		t.Fatalf("expected 2 popstate events, got %d", len(events))
	}
	if events[0].State != stateA {
		t.Errorf("expected the first event to carry the /a state, got %+v", events[0].State)
	}
	if events[1].State != nil {
		t.Errorf("expected the second event to carry no state, got %+v", events[1].State)
	}

	remove()
	browser.Back()
	if len(events) != 2 {
		t.Error("expected no events after the listener was removed")
	}
}

func TestAssignStartsNewDocument(t *testing.T) {
	browser := memorybrowser.New("https://example.com/start")
	browser.AddClickListener(func(*harrier.ClickEvent) {})
	browser.PushState(nil, "/pushed")

	browser.Assign("https://other.example.org/page")

	if browser.ListenerCount() != 0 {
		t.Errorf("expected listeners to be dropped, got %d", browser.ListenerCount())
	}
	if browser.Referrer() != "https://example.com/pushed" {
		t.Errorf("expected the referrer to be the previous page, got %q", browser.Referrer())
	}
	if loads := browser.Loads(); !reflect.DeepEqual(loads, []string{"https://other.example.org/page"}) {
		t.Errorf("unexpected loads %v", loads)
	}

	popped := false
	browser.AddPopStateListener(func(*harrier.PopStateEvent) { popped = true })
	browser.Back()

	if popped {
		t.Error("expected moving back into the old document to load it, not fire popstate")
	}
	if len(browser.Loads()) != 2 || browser.Location().Pathname != "/pushed" {
		t.Errorf("expected /pushed to be loaded, got loads %v at %q", browser.Loads(), browser.Location().Pathname)
	}
}

func TestGoZeroReloads(t *testing.T) {
	browser := memorybrowser.New("https://example.com/page")
	browser.Go(0)

	if loads := browser.Loads(); !reflect.DeepEqual(loads, []string{"https://example.com/page"}) {
		t.Errorf("expected a reload, got %v", loads)
	}
	if history := browser.History(); !reflect.DeepEqual(history, []string{"/page"}) {
		t.Errorf("expected the reload to replace the entry, got %v", history)
	}
}

func TestClickWithoutListeners(t *testing.T) {
	tests := []struct {
		name            string
		href            string
		modify          func(*harrier.ClickEvent)
		expectedLoads   int
		expectedHistory []string
	}{
		{name: "link is followed", href: "/next", expectedLoads: 1, expectedHistory: []string{"/", "/next"}},
		{name: "hash adds an entry", href: "#part", expectedHistory: []string{"/", "/#part"}},
		{name: "new window is ignored", href: "/next", modify: func(e *harrier.ClickEvent) { e.Link.Target = "_blank" }, expectedHistory: []string{"/"}},
		{name: "download is ignored", href: "/file", modify: func(e *harrier.ClickEvent) { e.Link.Download = true }, expectedHistory: []string{"/"}},
		{name: "secondary button is ignored", href: "/next", modify: func(e *harrier.ClickEvent) { e.Button = 2 }, expectedHistory: []string{"/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser := memorybrowser.New("https://example.com/")

			var modify []func(*harrier.ClickEvent)
			if tt.modify != nil {
				modify = append(modify, tt.modify)
			}
			browser.Click(tt.href, modify...)

			if len(browser.Loads()) != tt.expectedLoads {
				t.Errorf("expected %d loads, got %v", tt.expectedLoads, browser.Loads())
			}
			if history := browser.History(); !reflect.DeepEqual(history, tt.expectedHistory) {
				t.Errorf("expected history %v, got %v", tt.expectedHistory, history)
			}
		})
	}
}

func TestClickPreventDefault(t *testing.T) {
	browser := memorybrowser.New("https://example.com/")

	var link *harrier.Link
	browser.AddClickListener(func(e *harrier.ClickEvent) {
		link = e.Link
		e.PreventDefault()
	})

	event := browser.Click("/next?x=1")

	if !event.DefaultPrevented {
		t.Error("expected the event to be prevented")
	}
	if len(browser.Loads()) != 0 {
		t.Errorf("expected no load, got %v", browser.Loads())
	}
	if link == nil || link.Pathname != "/next" || link.Search != "?x=1" || link.Origin != "https://example.com" {
		t.Errorf("unexpected link %+v", link)
	}
}

func TestSubmit(t *testing.T) {
	browser := memorybrowser.New("https://example.com/form")

	var method string
	remove := browser.AddSubmitListener(func(e *harrier.SubmitEvent) {
		method = e.Method
	})

	browser.Submit("/search", func(e *harrier.SubmitEvent) { e.Target = "_blank" })
	if method != "get" {
		t.Errorf("expected the default method 'get', got %q", method)
	}
	if len(browser.Loads()) != 0 {
		t.Errorf("expected a submit to another window not to load, got %v", browser.Loads())
	}

	remove()
	browser.Submit("/search?q=1")
	if loads := browser.Loads(); !reflect.DeepEqual(loads, []string{"https://example.com/search?q=1"}) {
		t.Errorf("expected the action to be loaded, got %v", loads)
	}
}

func TestWithoutPushState(t *testing.T) {
	browser := memorybrowser.New("https://example.com/", memorybrowser.WithoutPushState(), memorybrowser.WithReferrer("https://ref.example.net/"))

	if browser.SupportsPushState() {
		t.Error("expected push state to be unsupported")
	}
	if browser.Referrer() != "https://ref.example.net/" {
		t.Errorf("expected the initial referrer, got %q", browser.Referrer())
	}
}
