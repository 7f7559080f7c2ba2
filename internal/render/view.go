package render

import (
	"fmt"
	"strings"
	"sync"

	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/theme"
	"github.com/google/uuid"
)

const (
	laneSpacing = 6
	topRow      = 2
	barOffset   = 4 // Rows between the hit bar and the bottom of the terminal
)

const endBanner = " ♪ session complete ♪ "

// View maps field length units onto terminal cells and owns the sprite
// bookkeeping for active notes.
type View struct {
	mu sync.Mutex

	r     Renderer
	th    theme.Theme
	field game.Field

	hitRow      int
	lanes       [4]int
	sideCol     int
	unitsPerRow float64

	// Rows currently occupied by each note, cleared on the next move
	sprites map[uuid.UUID][]int
}

func NewView(r Renderer, th theme.Theme, field game.Field) *View {
	rows, cols := r.Size()
	mc := cols >> 1
	v := &View{
		r:      r,
		th:     th,
		field:  field,
		hitRow: rows - barOffset,
		lanes: [4]int{
			mc - laneSpacing*3,
			mc - laneSpacing,
			mc + laneSpacing,
			mc + laneSpacing*3,
		},
		sprites: map[uuid.UUID][]int{},
	}
	v.sideCol = v.lanes[0] - 30
	if v.sideCol < 2 {
		v.sideCol = 2
	}
	v.unitsPerRow = (field.Bottom - field.Top) / float64(v.hitRow-topRow)
	return v
}

func (v *View) rowFor(pos float64) int {
	return topRow + int((pos-v.field.Top)/v.unitsPerRow+0.5)
}

func (v *View) DrawStatic() {
	for i, col := range v.lanes {
		v.r.Fill(v.hitRow, col, v.th.HitFieldSym(i))
	}
}

// MoveNote redraws a note at its sampled position. Off-screen rows fall
// out through the renderer's bounds check.
func (v *View) MoveNote(n *game.Note, pos, tail float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	col := v.lanes[n.Column&3]
	for _, row := range v.sprites[n.ID] {
		if row == v.hitRow {
			v.r.Fill(row, col, v.th.HitFieldSym(n.Column))
		} else {
			v.r.Fill(row, col, " ")
		}
	}

	head := v.rowFor(pos)
	rows := []int{head}
	for r := head - 1; r > head-1-int(tail/v.unitsPerRow); r-- {
		rows = append(rows, r)
	}

	c := v.th.NoteColor(n.Column)
	v.r.FillColor(head, col, c, v.th.NoteSym(n.Column))
	for _, row := range rows[1:] {
		v.r.FillColor(row, col, c, v.th.TailSym(n.Column))
	}
	v.sprites[n.ID] = rows
}

// RemoveNote clears a note's cells, on hit or expiry.
func (v *View) RemoveNote(n *game.Note) {
	v.mu.Lock()
	defer v.mu.Unlock()

	col := v.lanes[n.Column&3]
	for _, row := range v.sprites[n.ID] {
		if row == v.hitRow {
			v.r.Fill(row, col, v.th.HitFieldSym(n.Column))
		} else {
			v.r.Fill(row, col, " ")
		}
	}
	delete(v.sprites, n.ID)
}

func (v *View) UpdateScore(s game.State) {
	v.r.Fill(4, v.sideCol, fmt.Sprintf("     Score:  %6v", s.Score))
	v.r.Fill(5, v.sideCol, fmt.Sprintf("Multiplier:  %6.1f", s.Multiplier))
	v.r.Fill(6, v.sideCol, fmt.Sprintf("    Streak:  %6v", s.HitStreak))
	v.r.Fill(7, v.sideCol, fmt.Sprintf("      High:  %6v", s.HighScore))
}

// SetEndBanner shows or hides the session-ended indicator.
func (v *View) SetEndBanner(show bool) {
	_, cols := v.r.Size()
	col := (cols - len([]rune(endBanner))) >> 1
	if show {
		v.r.Fill(topRow, col, endBanner)
	} else {
		v.r.Fill(topRow, col, strings.Repeat(" ", len([]rune(endBanner))))
	}
}

func (v *View) Flush() {
	v.r.Flush()
}
