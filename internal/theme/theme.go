package theme

import "image/color"

type Theme interface {
	NoteColor(column int) color.RGBA
	NoteSym(column int) string
	TailSym(column int) string
	HitFieldSym(column int) string
}
