package layout

// PaneLayout holds calculated pane widths. MapWidth is 0 when the terminal
// is too narrow for the map pane.
type PaneLayout struct {
	ListWidth int
	MapWidth  int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidths splits the terminal width between list and map.
func CalculatePaneWidths(terminalWidth int, cfg PaneConfig) PaneLayout {
	inner := terminalWidth - cfg.WidthOffset
	if inner < cfg.MinListWidth {
		return PaneLayout{ListWidth: cfg.MinListWidth}
	}

	list := inner * cfg.ListWidthPercent / 100
	if list < cfg.MinListWidth {
		list = cfg.MinListWidth
	}

	mapWidth := inner - list
	if mapWidth < cfg.MinMapWidth {
		// Not enough room for a useful map: give the list everything
		return PaneLayout{ListWidth: inner}
	}

	return PaneLayout{ListWidth: list, MapWidth: mapWidth}
}

// CalculateItemWidth computes the width available for row content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// ListCapacity computes how many full rows fit into a terminal of the
// given height. Returns 0 when not even one row fits.
func ListCapacity(terminalHeight int, cfg PaneConfig) int {
	if cfg.RowHeight <= 0 {
		return 0
	}
	available := CalculatePaneHeight(terminalHeight, cfg) - cfg.ListHeaderLines
	if available < cfg.RowHeight {
		return 0
	}
	return available / cfg.RowHeight
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}
	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
