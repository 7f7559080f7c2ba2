package render

import (
	"image/color"
	"testing"
	"time"

	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/theme"
	"github.com/google/uuid"
)

type cell struct{ row, col int }

// recorder keeps the last glyph written to every cell.
type recorder struct {
	rows, cols int
	cells      map[cell]string
}

func newRecorder() *recorder {
	return &recorder{rows: 40, cols: 120, cells: map[cell]string{}}
}

func (r *recorder) Init() error      { return nil }
func (r *recorder) Deinit() error    { return nil }
func (r *recorder) Size() (int, int) { return r.rows, r.cols }
func (r *recorder) Flush()           {}

func (r *recorder) Fill(row, col int, message string) {
	if row < 1 || row > r.rows || col < 1 || col > r.cols {
		return
	}
	r.cells[cell{row, col}] = message
}

func (r *recorder) FillColor(row, col int, c color.RGBA, message string) {
	r.Fill(row, col, message)
}

var viewField = game.Field{Top: 0, Bottom: 600, Lead: 3 * time.Second}

func testNote(column int) *game.Note {
	return &game.Note{ID: uuid.New(), UserPlayed: true, Pitch: column, Column: column}
}

func TestMoveNoteTracksPosition(t *testing.T) {
	rec := newRecorder()
	th := &theme.DefaultTheme{}
	v := NewView(rec, th, viewField)
	n := testNote(0)

	// 40 rows, bar 4 from the bottom: the bottom edge lands on row 36
	v.MoveNote(n, viewField.Bottom, 0)
	lane := v.lanes[0]
	if got := rec.cells[cell{36, lane}]; got != th.NoteSym(0) {
		t.Fatalf("note at the bottom edge drawn as %q at row 36", got)
	}

	// Moving clears the old cell and repaints the bar glyph
	v.MoveNote(n, viewField.Bottom+100, 0)
	if got := rec.cells[cell{36, lane}]; got != th.HitFieldSym(0) {
		t.Fatalf("old cell not restored, holds %q", got)
	}
}

func TestRemoveNoteClearsSprite(t *testing.T) {
	rec := newRecorder()
	v := NewView(rec, &theme.DefaultTheme{}, viewField)
	n := testNote(2)

	v.MoveNote(n, 300, 40)
	if len(v.sprites[n.ID]) < 2 {
		t.Fatalf("tailed note drew %v cells", len(v.sprites[n.ID]))
	}
	occupied := append([]int{}, v.sprites[n.ID]...)

	v.RemoveNote(n)
	if _, ok := v.sprites[n.ID]; ok {
		t.Fatal("sprite bookkeeping survived removal")
	}
	for _, row := range occupied {
		if got := rec.cells[cell{row, v.lanes[2]}]; got != " " {
			t.Fatalf("row %v holds %q after removal", row, got)
		}
	}
}

func TestOffscreenDrawsAreDropped(t *testing.T) {
	rec := newRecorder()
	v := NewView(rec, &theme.DefaultTheme{}, viewField)
	n := testNote(1)

	before := len(rec.cells)
	v.MoveNote(n, viewField.Bottom*3, 0) // far past the terminal
	if len(rec.cells) != before {
		t.Fatal("off-screen draw reached the renderer grid")
	}
}

func TestEndBanner(t *testing.T) {
	rec := newRecorder()
	v := NewView(rec, &theme.DefaultTheme{}, viewField)

	v.SetEndBanner(true)
	found := false
	for c, s := range rec.cells {
		if c.row == topRow && s == endBanner {
			found = true
		}
	}
	if !found {
		t.Fatal("banner not drawn")
	}

	v.SetEndBanner(false)
	for c, s := range rec.cells {
		if c.row == topRow && s == endBanner {
			t.Fatalf("banner still visible at %v", s)
		}
	}
}
