package chart

import "gonum.org/v1/plot/vg"

// MaxCols caps the number of panels per grid row.
const MaxCols = 4

// GridShape returns rows and columns for n panels: cols = min(4, n) and
// rows = ceil(n / cols).
func GridShape(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = min(MaxCols, n)
	rows = (n + cols - 1) / cols
	return rows, cols
}

// GridSize is the figure size of an n-panel grid with the given panel size.
func GridSize(n int, panelW, panelH vg.Length) (vg.Length, vg.Length) {
	rows, cols := GridShape(n)
	return vg.Length(cols) * panelW, vg.Length(rows) * panelH
}
