package tui_test

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/tui"
	"github.com/nikbrunner/bmcar/internal/tui/layout"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func testStore() *model.Store {
	return &model.Store{
		Collections: []model.Collection{
			{ID: "c1", Name: "Food", Description: "Places to eat", Visible: true},
			{ID: "c2", Name: "Empty", Visible: true},
			{ID: "c3", Name: "Hidden", Visible: false},
			{ID: "c4", Name: "Work", Visible: true},
		},
		Bookmarks: []model.Bookmark{
			{ID: "b1", CollectionID: "c1", Name: "Cafe Luna", Address: "12 Main St", Feature: "Cafe",
				Icon: model.Icon{Color: "blue", Type: "cafe"}, Lat: 52.52, Lon: 13.405},
			{ID: "b2", CollectionID: "c1", Name: "Noodle Bar", Lat: 52.51, Lon: 13.41},
			{ID: "h1", CollectionID: "c3", Name: "Secret", Lat: 1, Lon: 1},
			{ID: "w1", CollectionID: "c4", Name: "Office", Lat: 48.1, Lon: 11.6},
		},
	}
}

type fixedLocator struct {
	pos geo.Position
	ok  bool
}

func (f fixedLocator) CurrentLocation() (geo.Position, bool) { return f.pos, f.ok }

type fakeStorage struct {
	store *model.Store
	err   error
}

func (f *fakeStorage) Load() (*model.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.store
	return &s, nil
}

func (f *fakeStorage) Save(*model.Store) error { return nil }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, app tui.App, msgs ...tea.Msg) tui.App {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := app.Update(msg)
		app = updated.(tui.App)
	}
	return app
}

func titles(app tui.App) []string {
	rows := app.Top().Render().List.Rows
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func newTestApp(params tui.AppParams) tui.App {
	if params.Store == nil {
		params.Store = testStore()
	}
	return tui.NewApp(params).WithDimensions(100, 30)
}

func TestApp_NoScreensBeforeSize(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	assert.Equal(t, app.Depth(), 0)
	assert.Assert(t, app.Top() == nil)
	assert.Equal(t, app.View(), "")

	// Keys other than quit are ignored until screens exist
	app = press(t, app, keyRune('j'), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, app.Depth(), 0)
}

func TestApp_WindowSizeBuildsRoot(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})
	app = press(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, app.Depth(), 1)
	assert.Equal(t, app.Top().State(), screen.Categories())
	assert.DeepEqual(t, titles(app), []string{"Food", "Work"})
}

func TestApp_Navigation_JK(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	assert.Equal(t, app.Cursor(), 0)

	app = press(t, app, keyRune('j'))
	assert.Equal(t, app.Cursor(), 1)

	// j at bottom stays put
	app = press(t, app, keyRune('j'))
	assert.Equal(t, app.Cursor(), 1)

	app = press(t, app, keyRune('k'))
	assert.Equal(t, app.Cursor(), 0)

	// k at top should stay at 0 (no wrap)
	app = press(t, app, keyRune('k'))
	assert.Equal(t, app.Cursor(), 0)

	app = press(t, app, keyRune('G'))
	assert.Equal(t, app.Cursor(), 1)

	app = press(t, app, keyRune('g'))
	assert.Equal(t, app.Cursor(), 0)
}

func TestApp_OpenCollection(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, app.Depth(), 2)
	assert.Equal(t, app.Top().State(), screen.Bookmarks("c1"))
	assert.Equal(t, app.Cursor(), 0)
	assert.DeepEqual(t, titles(app), []string{"Cafe Luna", "Noodle Bar"})
}

func TestApp_ClickFocusesMap(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app = press(t, app, keyRune('l'), keyRune('j'), keyRune('l'))

	// Focusing does not navigate
	assert.Equal(t, app.Depth(), 2)

	focused, ok := app.MapPane().Focused()
	assert.Assert(t, ok)
	assert.Equal(t, focused.ID, "b2")
}

func TestApp_BackRestoresCursor(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app = press(t, app, keyRune('j'), keyRune('l'))
	assert.Equal(t, app.Top().State(), screen.Bookmarks("c4"))
	child := app.Top()

	app = press(t, app, keyRune('h'))

	assert.Equal(t, app.Depth(), 1)
	assert.Equal(t, app.Cursor(), 1)
	assert.Assert(t, child.Disposed())
}

func TestApp_BackAtRootIsNoop(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, app.Depth(), 1)
	assert.Equal(t, app.Top().State(), screen.Categories())
}

func TestApp_OpenCollectionParam(t *testing.T) {
	app := newTestApp(tui.AppParams{OpenCollection: "c4"})

	assert.Equal(t, app.Depth(), 2)
	assert.Equal(t, app.Top().State(), screen.Bookmarks("c4"))
	assert.DeepEqual(t, titles(app), []string{"Office"})
}

func TestApp_ListLimitOverride(t *testing.T) {
	app := newTestApp(tui.AppParams{ListLimit: 1})

	assert.Equal(t, app.Top().Limit(), 1)
	assert.DeepEqual(t, titles(app), []string{"Food"})
}

func TestApp_LimitFromTerminalHeight(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()}).WithDimensions(100, 8)

	want := layout.ListCapacity(8, layout.DefaultConfig().Pane)
	assert.Equal(t, app.Top().Limit(), want)
	assert.Assert(t, is.Len(titles(app), want))
}

func TestApp_CopyCoordinates(t *testing.T) {
	var copied []string
	app := newTestApp(tui.AppParams{
		Copy: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})

	// Nothing focused yet
	app = press(t, app, keyRune('y'))
	assert.Assert(t, is.Len(copied, 0))
	assert.Equal(t, app.Message(), "No bookmark on the map")

	app = press(t, app, keyRune('l'), keyRune('l'), keyRune('y'))
	assert.DeepEqual(t, copied, []string{"52.52000, 13.40500"})
	assert.Equal(t, app.Message(), "Copied 52.52000, 13.40500")
}

func TestApp_CopyFailure(t *testing.T) {
	app := newTestApp(tui.AppParams{
		Copy: func(string) error { return errors.New("no clipboard") },
	})

	app = press(t, app, keyRune('l'), keyRune('l'), keyRune('y'))
	assert.Equal(t, app.Message(), "Copy failed: no clipboard")
}

func TestApp_Reload(t *testing.T) {
	store := testStore()
	next := testStore()
	next.Collections = append(next.Collections, model.Collection{ID: "c5", Name: "Trips", Visible: true})
	next.Bookmarks = append(next.Bookmarks, model.Bookmark{ID: "t1", CollectionID: "c5", Name: "Beach"})

	app := newTestApp(tui.AppParams{Store: store, Storage: &fakeStorage{store: next}})
	assert.DeepEqual(t, titles(app), []string{"Food", "Work"})

	app = press(t, app, keyRune('r'))

	assert.Equal(t, app.Message(), "Reloaded")
	assert.DeepEqual(t, titles(app), []string{"Food", "Work", "Trips"})
}

func TestApp_ReloadClampsCursorAndFocus(t *testing.T) {
	next := testStore()
	next.Bookmarks = next.Bookmarks[:1] // only Cafe Luna remains

	app := newTestApp(tui.AppParams{Storage: &fakeStorage{store: next}})
	app = press(t, app, keyRune('l'), keyRune('j'), keyRune('l'))
	assert.Equal(t, app.Cursor(), 1)

	app = press(t, app, keyRune('r'))

	assert.Equal(t, app.Cursor(), 0)
	_, ok := app.MapPane().Focused()
	assert.Assert(t, !ok)
}

func TestApp_ReloadErrors(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = press(t, app, keyRune('r'))
	assert.Equal(t, app.Message(), "Nothing to reload from")

	app = newTestApp(tui.AppParams{Storage: &fakeStorage{err: errors.New("disk gone")}})
	app = press(t, app, keyRune('r'))
	assert.Equal(t, app.Message(), "Reload failed: disk gone")
	assert.DeepEqual(t, titles(app), []string{"Food", "Work"})
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	_, cmd := app.Update(keyRune('q'))
	assert.Assert(t, cmd != nil)
	assert.Equal(t, cmd(), tea.Msg(tea.QuitMsg{}))
}

func TestApp_LocationUpdatesKeepListening(t *testing.T) {
	updates := make(chan struct{}, 1)
	app := newTestApp(tui.AppParams{Updates: updates})

	updates <- struct{}{}
	cmd := app.Init()
	assert.Assert(t, cmd != nil)

	msg := cmd()
	assert.Assert(t, msg != nil)

	_, next := app.Update(msg)
	assert.Assert(t, next != nil)

	close(updates)
	assert.Assert(t, next() == nil)
}

func TestApp_NoUpdatesNoInitCmd(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	assert.Assert(t, app.Init() == nil)
}

func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = press(t, app, keyRune('l'))
	child := app.Top()

	app.Shutdown()

	assert.Assert(t, child.Disposed())
	assert.Equal(t, app.Depth(), 0)
}

func TestApp_HelpOverlay(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app = press(t, app, keyRune('?'))
	view := layout.StripANSI(app.View())
	assert.Assert(t, is.Contains(view, "copy coordinates"))

	// Navigation keys are swallowed while help is open
	app = press(t, app, keyRune('j'))
	assert.Equal(t, app.Cursor(), 0)

	app = press(t, app, keyRune('?'))
	view = layout.StripANSI(app.View())
	assert.Assert(t, !strings.Contains(view, "copy coordinates"))
}
