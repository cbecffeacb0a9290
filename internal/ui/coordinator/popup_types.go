package coordinator

import "github.com/bnema/winshell/internal/domain/entity"

// pendingState tags the single popup slot of a window.
type pendingState int

const (
	// pendingEmpty means no popup handshake is in flight.
	pendingEmpty pendingState = iota
	// pendingInFlight means a delegate was handed out and the popup's
	// rendering surface has not been realized yet.
	pendingInFlight
)

// String returns a human-readable name for the slot state.
func (s pendingState) String() string {
	switch s {
	case pendingEmpty:
		return "empty"
	case pendingInFlight:
		return "in-flight"
	default:
		return "unknown"
	}
}

// pendingPopup tracks the popup window created in the delegate-request phase
// until the host reports its rendering surface: delegate → realized →
// (promoted into children).
type pendingPopup struct {
	state pendingState
	child entity.WindowID
}

func popupInFlight(child entity.WindowID) pendingPopup {
	return pendingPopup{state: pendingInFlight, child: child}
}

// inFlight returns the pending child, if any.
func (p pendingPopup) inFlight() (entity.WindowID, bool) {
	if p.state != pendingInFlight {
		return entity.NoWindow, false
	}
	return p.child, true
}
