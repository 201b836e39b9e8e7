package layout

// OverlayWidth sizes an overlay box to its widest content line plus the
// box's horizontal padding. The result stays within MinWidth..MaxWidth and
// leaves ScreenMargin columns of the terminal free.
func OverlayWidth(terminalWidth, contentWidth int, cfg ModalConfig) int {
	width := max(contentWidth+cfg.HorizontalPadding, cfg.MinWidth)
	width = min(width, cfg.MaxWidth, terminalWidth-cfg.ScreenMargin)
	return max(width, 1)
}
