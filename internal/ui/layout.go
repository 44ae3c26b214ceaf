package ui

const (
	// StatsLines is the number of text lines in the stats panel.
	StatsLines = 4

	lineHeight   = 16
	panelPadding = 6
)

// Height returns the pixel height of a panel holding n text lines.
func Height(n int) int {
	if n <= 0 {
		return 0
	}
	return 2*panelPadding + n*lineHeight
}

// baseline returns the text baseline of line i inside a panel starting at top.
func baseline(top, i int) int {
	return top + panelPadding + (i+1)*lineHeight - 4
}
