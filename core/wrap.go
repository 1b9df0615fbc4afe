package core

// WrapLine splits content into visual rows of at most width runes. It prefers
// to break at the last space inside the window and drops that space; a window
// without a space is hard-broken at width. A width below one disables
// wrapping. Empty content yields one empty row.
func WrapLine(content string, width int) []string {
	rows, _ := wrapSegments(content, width)
	return rows
}

// wrapSegments returns the rows plus, for every boundary between rows,
// whether a space was consumed there.
func wrapSegments(content string, width int) ([]string, []bool) {
	runes := []rune(content)
	if width < 1 || len(runes) <= width {
		return []string{content}, nil
	}
	var rows []string
	var consumed []bool
	start := 0
	for len(runes)-start > width {
		end := start + width
		brk := -1
		for i := end; i > start; i-- {
			if runes[i] == ' ' {
				brk = i
				break
			}
		}
		if brk < 0 {
			rows = append(rows, string(runes[start:end]))
			consumed = append(consumed, false)
			start = end
			continue
		}
		rows = append(rows, string(runes[start:brk]))
		consumed = append(consumed, true)
		start = brk + 1
	}
	rows = append(rows, string(runes[start:]))
	return rows, consumed
}
