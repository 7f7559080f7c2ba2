package game

import (
	"testing"
	"time"
)

var field = Field{Top: 0, Bottom: 600, Lead: 3 * time.Second}

func note(start, end float64) *Note {
	n := &Note{Start: start, End: end}
	if sustain := (end - start) * 1000; sustain > 250 {
		n.TailMs = sustain
		n.HasTail = true
	}
	return n
}

func TestVelocity(t *testing.T) {
	if v := field.Velocity(); v != 0.2 {
		t.Log("velocity", v)
		t.Log("expected", 0.2)
		t.Fail()
	}
}

func TestAppearAt(t *testing.T) {
	tests := map[float64]time.Duration{
		3.0: 0,
		5.5: 2500 * time.Millisecond,
		1.0: -2 * time.Second, // starts inside the lead window
	}
	for start, expected := range tests {
		if at := field.AppearAt(note(start, start)); at != expected {
			t.Log("start   ", start)
			t.Log("appear  ", at)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestPositionAt(t *testing.T) {
	n := note(5.0, 5.0)
	tests := map[time.Duration]float64{
		2 * time.Second:         0,   // top edge on appearance
		3500 * time.Millisecond: 300, // halfway down
		5 * time.Second:         600, // bottom edge exactly at start
		5100 * time.Millisecond: 620,
	}
	for elapsed, expected := range tests {
		if pos := field.PositionAt(n, elapsed); pos != expected {
			t.Log("elapsed ", elapsed)
			t.Log("position", pos)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestTailGrowsToCap(t *testing.T) {
	n := note(5.0, 6.0) // 1000ms sustain, tail cap 100 units
	if limit := n.TailLength(); limit != 100 {
		t.Fatalf("tail cap %v, want 100", limit)
	}

	tests := map[time.Duration]float64{
		2 * time.Second:         0,   // just appeared
		2250 * time.Millisecond: 50,  // grown half way
		2500 * time.Millisecond: 100, // reached the cap
		4 * time.Second:         100, // stays capped
	}
	for elapsed, expected := range tests {
		if tail := field.TailAt(n, elapsed); tail != expected {
			t.Log("elapsed ", elapsed)
			t.Log("tail    ", tail)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestNoTailWithoutSustain(t *testing.T) {
	n := note(5.0, 5.1)
	if n.HasTail || n.TailLength() != 0 {
		t.Fatalf("short note grew a tail: %+v", n)
	}
	if tail := field.TailAt(n, 4*time.Second); tail != 0 {
		t.Fatalf("tail extent %v for tailless note", tail)
	}
}

func TestExpireAt(t *testing.T) {
	// Head must clear bottom by the late window plus the tail extent
	n := note(5.0, 5.0)
	if at := field.ExpireAt(n, 120); at != 5600*time.Millisecond {
		t.Fatalf("expiry %v, want 5.6s", at)
	}

	tailed := note(5.0, 6.0) // cap 100 units, 500ms more travel
	if at := field.ExpireAt(tailed, 120); at != 6100*time.Millisecond {
		t.Fatalf("tailed expiry %v, want 6.1s", at)
	}
}

func TestChartDuration(t *testing.T) {
	c := Chart{Notes: []*Note{note(1, 2), note(3, 9.5), note(4, 5)}}
	if d := c.Duration(); d != 9500*time.Millisecond {
		t.Fatalf("duration %v, want 9.5s", d)
	}
}
