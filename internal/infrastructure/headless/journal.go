package headless

import (
	"fmt"

	"github.com/bnema/winshell/internal/domain/entity"
)

// EventKind names one kind of host event.
type EventKind string

const (
	EventViewCreated           EventKind = "view-created"
	EventWindowRequested       EventKind = "window-requested"
	EventWindowCentered        EventKind = "window-centered"
	EventWindowShown           EventKind = "window-shown"
	EventBrowserCreated        EventKind = "browser-created"
	EventPopupCreated          EventKind = "popup-created"
	EventPopupDenied           EventKind = "popup-denied"
	EventDevtoolsRequested     EventKind = "devtools-requested"
	EventBrowserCloseRequested EventKind = "browser-close-requested"
	EventBrowserClosed         EventKind = "browser-closed"
	EventCloseDeferred         EventKind = "close-deferred"
	EventWindowClosed          EventKind = "window-closed"
)

// Event is one entry of the host journal. Window and Browser are zero when
// not applicable.
type Event struct {
	Seq     int
	Kind    EventKind
	Window  int
	Browser entity.BrowserID
	Detail  string
}

func (e Event) String() string {
	s := fmt.Sprintf("#%d %s", e.Seq, e.Kind)
	if e.Window != 0 {
		s += fmt.Sprintf(" window=%d", e.Window)
	}
	if e.Browser != 0 {
		s += fmt.Sprintf(" browser=%d", e.Browser)
	}
	if e.Detail != "" {
		s += " " + e.Detail
	}
	return s
}

// Journal is an ordered list of host events.
type Journal []Event

// Count returns how many events of kind were recorded.
func (j Journal) Count(kind EventKind) int {
	n := 0
	for _, e := range j {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the events of kind in order.
func (j Journal) Filter(kind EventKind) Journal {
	var out Journal
	for _, e := range j {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
