package input

import "time"

// Event is one key state change on a column. The terminal backend only
// observes presses; the evdev backend reports presses and releases
// independently. Releases are unused by the session logic.
type Event struct {
	Column   int
	Pressed  bool
	Released bool
	At       time.Time
}
