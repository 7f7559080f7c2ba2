package game

import "time"

// Field is the playing field geometry in abstract length units.
// Positions grow downward; a note is hittable around Bottom.
type Field struct {
	Top    float64
	Bottom float64
	Lead   time.Duration // Travel time from Top to Bottom
}

// Velocity in length units per millisecond. Constant for every note.
func (f Field) Velocity() float64 {
	return (f.Bottom - f.Top) / float64(f.Lead.Milliseconds())
}

// AppearAt is the session-relative time the note shows up at Top.
// Negative for notes starting inside the lead window.
func (f Field) AppearAt(n *Note) time.Duration {
	return time.Duration((n.StartMs() - float64(f.Lead.Milliseconds())) * float64(time.Millisecond))
}

// PositionAt is the head position of n at elapsed session time.
func (f Field) PositionAt(n *Note, elapsed time.Duration) float64 {
	travelled := float64(elapsed-f.AppearAt(n)) / float64(time.Millisecond) * f.Velocity()
	return f.Top + travelled
}

// TailAt is the visible tail extent at elapsed session time. The tail
// grows with the distance travelled until it reaches the note's cap.
func (f Field) TailAt(n *Note, elapsed time.Duration) float64 {
	if !n.HasTail {
		return 0
	}
	travelled := f.PositionAt(n, elapsed) - f.Top
	if travelled < 0 {
		return 0
	}
	limit := n.TailLength()
	if travelled < limit {
		return travelled
	}
	return limit
}

// ExpireAt is when the note leaves the active set: its head has cleared
// the bottom edge by the late hit window plus its full tail extent.
func (f Field) ExpireAt(n *Note, lateWindow float64) time.Duration {
	over := lateWindow + n.TailLength()
	ms := n.StartMs() + over/f.Velocity()
	return time.Duration(ms * float64(time.Millisecond))
}
