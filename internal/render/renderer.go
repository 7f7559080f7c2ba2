package render

import "image/color"

type Renderer interface {
	Init() error
	Deinit() error

	// Size of the drawable area in rows and columns.
	Size() (rows, cols int)

	// Fill places text at a cell. Out-of-bounds targets are dropped.
	Fill(row, col int, message string)
	FillColor(row, col int, c color.RGBA, message string)

	// Flush pushes buffered draws to the terminal.
	Flush()
}
