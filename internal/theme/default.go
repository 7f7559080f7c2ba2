package theme

import "image/color"

type DefaultTheme struct{}

var (
	noteSyms = [...]string{"⬤", "⬤", "⬤", "⬤"}
	tailSyms = [...]string{"│", "│", "│", "│"}
	barSyms  = [...]string{"─", "─", "─", "─"}

	// One color per lane
	laneColors = [...]color.RGBA{
		{R: 236, G: 30, B: 0},  // red
		{R: 0, G: 118, B: 236}, // blue
		{R: 236, G: 195, B: 0}, // yellow
		{R: 0, G: 236, B: 128}, // green
	}
	fallback = color.RGBA{R: 255, G: 255, B: 255}
)

func (t *DefaultTheme) NoteColor(column int) color.RGBA {
	if column < 0 || column >= len(laneColors) {
		return fallback
	}
	return laneColors[column]
}

func (t *DefaultTheme) NoteSym(column int) string {
	return noteSyms[column&3]
}

func (t *DefaultTheme) TailSym(column int) string {
	return tailSyms[column&3]
}

func (t *DefaultTheme) HitFieldSym(column int) string {
	return barSyms[column&3]
}
