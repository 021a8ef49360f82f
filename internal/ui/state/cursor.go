package state

// MoveCursor moves the cursor by delta, clamped to the visible rows.
func (l *List) MoveCursor(delta int) bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+delta, 0, len(l.Rows)-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *List) MoveCursorHome() bool {
	return l.MoveCursor(-len(l.Rows))
}

// MoveCursorEnd moves the cursor to the last row.
func (l *List) MoveCursorEnd() bool {
	return l.MoveCursor(len(l.Rows))
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursor(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursor(l.pageSize(maxVisible))
}

func (l *List) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Rows) {
		return len(l.Rows)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Rows)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor > offset+maxVisible-1 {
		offset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
	l.ViewportOffset = offset
}

// Visible returns the rows inside the viewport.
func (l *List) Visible(maxVisible int) []Row {
	if maxVisible <= 0 || len(l.Rows) <= maxVisible {
		return l.Rows
	}
	start := clamp(l.ViewportOffset, 0, len(l.Rows)-maxVisible)
	return l.Rows[start : start+maxVisible]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
