package tui

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/bmcar/internal/icon"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/storage"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
)

// App is the bubbletea model hosting the bookmark browsing screens.
type App struct {
	store    *model.Store
	storage  storage.Storage
	stack    *screen.Stack
	deps     screen.Deps
	mapPane  *MapPane
	limiter  *TerminalLimiter
	updates  <-chan struct{}
	copyText func(string) error
	logger   *slog.Logger

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	// cursors holds one cursor per stack level; the last one is current.
	cursors []int

	// openCollection is drilled into once the root screen exists.
	openCollection string

	showHelp bool

	messageText string
	messageType MessageType
	messageSeq  int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store          *model.Store
	Storage        storage.Storage     // optional, enables reload
	Locator        screen.Locator      // optional
	Updates        <-chan struct{}     // optional, location change signal
	Icons          screen.IconRenderer // optional, uses icon.NewRenderer if nil
	Locale         *locale.Localizer   // optional, English if nil
	Units          locale.Units
	ListLimit      int    // positive value overrides the terminal height
	OpenCollection string // optional collection to show first
	Logger         *slog.Logger
	Copy           func(string) error   // optional, uses the system clipboard if nil
	Keys           *KeyMap              // optional, uses default if nil
	Styles         *Styles              // optional, uses default if nil
	LayoutConfig   *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters. Screens are built
// once the terminal size is known.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loc := params.Locale
	if loc == nil {
		loc = locale.New("en")
	}

	var icons screen.IconRenderer = icon.NewRenderer()
	if params.Icons != nil {
		icons = params.Icons
	}

	copyFn := params.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	stack := screen.NewStack()
	limiter := NewTerminalLimiter(layoutConfig.Pane)
	mapPane := NewMapPane(MapPaneParams{
		Store:   params.Store,
		Locator: params.Locator,
		Locale:  loc,
		Units:   params.Units,
		Logger:  logger,
	})

	deps := screen.Deps{
		Store:   params.Store,
		Map:     mapPane,
		Nav:     stack,
		Locator: params.Locator,
		Limiter: limiter,
		Icons:   icons,
		Locale:  loc,
		Units:   params.Units,
		Logger:  logger,
	}
	if params.ListLimit > 0 {
		deps.Limiter = screen.FixedLimit(params.ListLimit)
	}

	return App{
		store:          params.Store,
		storage:        params.Storage,
		stack:          stack,
		deps:           deps,
		mapPane:        mapPane,
		limiter:        limiter,
		updates:        params.Updates,
		copyText:       copyFn,
		logger:         logger,
		keys:           keys,
		styles:         styles,
		layoutConfig:   layoutConfig,
		openCollection: params.OpenCollection,
		width:          80,
		height:         24,
	}
}

// WithDimensions returns a copy of the app sized to width x height, with
// its screens built. Used for testing and snapshot generation.
func (a App) WithDimensions(width, height int) App {
	a.resize(width, height)
	return a
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.limiter.SetHeight(height)
	a.start()
	a.clampCursor()
}

// start pushes the root screen the first time a size is known.
func (a *App) start() {
	if a.stack.Len() > 0 {
		return
	}
	root := screen.New(a.deps)
	a.stack.Push(root)
	a.cursors = []int{0}

	if a.openCollection != "" {
		root.Open(a.openCollection)
		a.syncCursors()
	}
	a.logger.Debug("browser started", slog.Int("limit", root.Limit()))
}

// syncCursors gives every newly pushed screen a cursor at the top.
func (a *App) syncCursors() {
	for len(a.cursors) < a.stack.Len() {
		a.cursors = append(a.cursors, 0)
	}
	if len(a.cursors) > a.stack.Len() {
		a.cursors = a.cursors[:a.stack.Len()]
	}
}

// Cursor returns the cursor position on the current screen.
func (a App) Cursor() int {
	if len(a.cursors) == 0 {
		return 0
	}
	return a.cursors[len(a.cursors)-1]
}

func (a *App) setCursor(c int) {
	if len(a.cursors) == 0 {
		return
	}
	a.cursors[len(a.cursors)-1] = c
}

// clampCursor keeps the cursor on an existing row after data or size changes.
func (a *App) clampCursor() {
	n := a.rowCount()
	c := a.Cursor()
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	a.setCursor(c)
}

func (a App) rowCount() int {
	top := a.stack.Top()
	if top == nil {
		return 0
	}
	return top.Render().List.Len()
}

// Depth returns the number of screens on the navigation stack.
func (a App) Depth() int {
	return a.stack.Len()
}

// Top returns the current screen, or nil before the first resize.
func (a App) Top() *screen.Screen {
	return a.stack.Top()
}

// MapPane returns the map pane.
func (a App) MapPane() *MapPane {
	return a.mapPane
}

// Message returns the status message currently shown.
func (a App) Message() string {
	return a.messageText
}

// Shutdown disposes all screens.
func (a App) Shutdown() {
	a.stack.Unwind()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return waitForLocation(a.updates)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case locationMsg:
		// View reads the location afresh; waiting again is all that's needed
		return a, waitForLocation(a.updates)

	case clearMessageMsg:
		if msg.seq == a.messageSeq {
			a.messageText = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	if a.stack.Len() == 0 {
		return a, nil
	}

	if a.showHelp {
		if key.Matches(msg, a.keys.Help, a.keys.Back) {
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Down):
		if c := a.Cursor(); c < a.rowCount()-1 {
			a.setCursor(c + 1)
		}

	case key.Matches(msg, a.keys.Up):
		if c := a.Cursor(); c > 0 {
			a.setCursor(c - 1)
		}

	case key.Matches(msg, a.keys.Top):
		a.setCursor(0)

	case key.Matches(msg, a.keys.Bottom):
		if n := a.rowCount(); n > 0 {
			a.setCursor(n - 1)
		}

	case key.Matches(msg, a.keys.Click):
		a.click()

	case key.Matches(msg, a.keys.Back):
		if a.stack.Pop() {
			a.syncCursors()
			a.clampCursor()
		}

	case key.Matches(msg, a.keys.Refresh):
		return a, a.reload()

	case key.Matches(msg, a.keys.Copy):
		return a, a.copyCoordinates()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	}

	return a, nil
}

// click activates the row under the cursor.
func (a *App) click() {
	rows := a.stack.Top().Render().List.Rows
	c := a.Cursor()
	if c < 0 || c >= len(rows) {
		return
	}
	rows[c].Click()
	a.syncCursors()
}

// reload replaces the store contents with what storage holds now. Screens
// keep their pointer to the store and see the new data on the next render.
func (a *App) reload() tea.Cmd {
	if a.storage == nil {
		return a.setMessage(MessageWarning, "Nothing to reload from")
	}
	loaded, err := a.storage.Load()
	if err != nil {
		a.logger.Error("reload store", slog.Any("err", err))
		return a.setMessage(MessageError, "Reload failed: "+err.Error())
	}
	*a.store = *loaded
	if _, ok := a.mapPane.Focused(); !ok {
		a.mapPane.Clear()
	}
	a.clampCursor()
	return a.setMessage(MessageSuccess, "Reloaded")
}

func (a *App) copyCoordinates() tea.Cmd {
	coords, ok := a.mapPane.Coordinates()
	if !ok {
		return a.setMessage(MessageWarning, "No bookmark on the map")
	}
	if err := a.copyText(coords); err != nil {
		a.logger.Warn("copy coordinates", slog.Any("err", err))
		return a.setMessage(MessageError, "Copy failed: "+err.Error())
	}
	return a.setMessage(MessageSuccess, "Copied "+coords)
}

// setMessage shows a status message and schedules its removal.
func (a *App) setMessage(t MessageType, text string) tea.Cmd {
	a.messageSeq++
	a.messageType = t
	a.messageText = text
	return clearMessageAfter(a.messageSeq)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
