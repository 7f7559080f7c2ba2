package parser

import (
	"fmt"
	"strings"
)

// RowError records a single malformed chart row.
type RowError struct {
	Row int // 1-based, counting the header as row 1
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ParseError aborts a chart load. Every bad row is collected so the
// caller sees the full damage, not just the first field that failed.
type ParseError struct {
	Rows []RowError
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d malformed note row(s)", len(e.Rows))
	for _, r := range e.Rows {
		b.WriteString("\n\t")
		b.WriteString(r.Error())
	}
	return b.String()
}
