package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
)

// breadcrumbSeparator joins screen titles in the breadcrumb.
const breadcrumbSeparator = " › "

// renderView creates the list and map panes.
func (a App) renderView() string {
	top := a.stack.Top()
	if top == nil {
		return ""
	}

	if a.showHelp {
		return a.renderHelpOverlay()
	}

	cfg := a.layoutConfig.Pane
	paneHeight := layout.CalculatePaneHeight(a.height, cfg)
	widths := layout.CalculatePaneWidths(a.width, cfg)

	list := ListRenderer{
		Styles:  a.styles,
		Text:    a.layoutConfig.Text,
		Width:   layout.CalculateItemWidth(widths.ListWidth, cfg),
		Height:  paneHeight,
		Cursor:  a.Cursor(),
		Empty:   a.deps.Locale.Label(locale.LabelEmpty),
		RowSize: cfg.RowHeight,
	}.Render(top.Render())

	columns := a.styles.PaneActive.
		Width(widths.ListWidth).
		Height(paneHeight).
		Render(list)

	if widths.MapWidth > 0 {
		mapContent := a.mapPane.View(layout.CalculateItemWidth(widths.MapWidth, cfg), a.styles, a.layoutConfig.Text)
		mapPane := a.styles.Pane.
			Width(widths.MapWidth).
			Height(paneHeight).
			Render(mapContent)
		columns = lipgloss.JoinHorizontal(lipgloss.Top, columns, mapPane)
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderBreadcrumb(), columns, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderBreadcrumb renders the screen titles from the root to the current screen.
func (a App) renderBreadcrumb() string {
	path := strings.Join(a.stack.Breadcrumbs(), breadcrumbSeparator)

	// Terminal width minus app padding (left=2, right=2) and breadcrumb padding
	availableWidth := a.width - 5
	path = layout.TruncateFromLeft(path, availableWidth, a.layoutConfig.Text)

	return a.styles.Breadcrumb.Render(path)
}

// renderHelpBar renders the message line and the key hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, a.renderHints(a.getContextualHints()))

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderHelpOverlay renders the key binding reference centred on screen.
func (a App) renderHelpOverlay() string {
	cfg := a.layoutConfig.Modal
	bindings := a.keys.HelpBindings()

	contentWidth := layout.VisibleWidth("Keys")
	for _, binding := range bindings {
		contentWidth = max(contentWidth, cfg.HelpKeyColumnWidth+layout.VisibleWidth(binding.Help().Desc))
	}
	width := layout.OverlayWidth(a.width, contentWidth, cfg)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	keyColumn := lipgloss.NewStyle().Width(cfg.HelpKeyColumnWidth)
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString(keyColumn.Render(a.styles.HintKey.Render(h.Key)))
		b.WriteString(a.styles.HintDesc.Render(h.Desc))
		b.WriteString("\n")
	}

	modal := a.styles.Modal.Width(width).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
