package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + breadcrumb (1) + pane borders (2) + help bar (2) = 6
	HeightReduction int
	// MinHeight is the minimum pane height.
	MinHeight int
	// ListHeaderLines is the number of lines above the first row in the list pane.
	ListHeaderLines int
	// RowHeight is the number of lines one row may occupy: title plus two
	// secondary lines.
	RowHeight int
	// WidthOffset is subtracted from terminal width before splitting.
	// Accounts for app padding (4) and the borders of both panes (4).
	WidthOffset int
	// ListWidthPercent is the share of the inner width given to the list.
	ListWidthPercent int
	// MinListWidth is the minimum list pane width.
	MinListWidth int
	// MinMapWidth is the narrowest map pane worth drawing; below it the map is hidden.
	MinMapWidth int
	// ContentPadding is subtracted from pane width for row rendering.
	// Accounts for pane padding on each side.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// HorizontalPadding is the modal style's left plus right padding.
	HorizontalPadding int
	// ScreenMargin is the number of terminal columns kept clear of the modal.
	ScreenMargin int
	// MinWidth is the minimum modal width in characters.
	MinWidth int
	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
	// HelpKeyColumnWidth: width for the key column of the help overlay.
	HelpKeyColumnWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:  6, // app padding (1) + breadcrumb (1) + pane borders (2) + help bar (2)
			MinHeight:        5,
			ListHeaderLines:  2,
			RowHeight:        3,
			WidthOffset:      8,
			ListWidthPercent: 60,
			MinListWidth:     24,
			MinMapWidth:      20,
			ContentPadding:   2,
		},
		Modal: ModalConfig{
			HorizontalPadding:  4,
			ScreenMargin:       4,
			MinWidth:           36,
			MaxWidth:           60,
			HelpKeyColumnWidth: 12,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
