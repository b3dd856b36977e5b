// Package linewidth computes the rendered width of a text line under a
// fixed tab-stop model.
package linewidth

// Default limits.
const (
	DefaultMaxWidth = 80
	DefaultTabStop  = 4
)

// Measure returns the width of line with tab stops every tabStop columns.
// A tab advances to the next multiple of tabStop, a newline adds nothing and
// every other rune counts as one column, including wide characters.
// A tabStop below 1 is treated as 1.
func Measure(line string, tabStop int) int {
	if tabStop < 1 {
		tabStop = 1
	}

	width := 0

	for _, r := range line {
		switch r {
		case '\t':
			width += tabStop - width%tabStop
		case '\n':
		default:
			width++
		}
	}

	return width
}

// Exceeds reports whether width is strictly above maxWidth.
func Exceeds(width, maxWidth int) bool {
	return width > maxWidth
}
