package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/bmcar/internal/geo"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/storage"
)

type testPaths struct {
	config string
	data   string
}

func seedStore() *model.Store {
	return &model.Store{
		Collections: []model.Collection{
			{ID: "c1", Name: "Food", Description: "Places to eat", Visible: true},
			{ID: "c2", Name: "Empty", Visible: true},
			{ID: "c3", Name: "Hidden", Visible: false},
			{ID: "c4", Name: "Work", Description: "Office", Visible: true},
		},
		Bookmarks: []model.Bookmark{
			{ID: "b1", CollectionID: "c1", Name: "Cafe Luna", Address: "12 Main St", Feature: "Cafe",
				Icon: model.Icon{Color: "blue", Type: "food"}, Lat: 52.52, Lon: 13.405},
			{ID: "b2", CollectionID: "c1", Name: "Noodle Bar", Lat: 52.51, Lon: 13.39},
			{ID: "h1", CollectionID: "c3", Name: "Secret", Lat: 1, Lon: 1},
			{ID: "w1", CollectionID: "c4", Name: "Office", Address: "1 Work Rd", Lat: 52.5, Lon: 13.4},
		},
	}
}

// setup writes a config and a seeded JSON store into a temp directory.
func setup(t *testing.T, cfg storage.Config) testPaths {
	t.Helper()
	dir := t.TempDir()
	p := testPaths{
		config: filepath.Join(dir, "config.json"),
		data:   filepath.Join(dir, "data"),
	}

	raw, err := json.Marshal(cfg)
	assert.NilError(t, err)
	assert.NilError(t, os.WriteFile(p.config, raw, 0644))

	st := storage.NewJSONStorage(filepath.Join(p.data, "bookmarks.json"))
	assert.NilError(t, st.Save(seedStore()))
	return p
}

func run(t *testing.T, p testPaths, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", p.config, "--data", p.data}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func home(lat, lon float64) *geo.Position {
	return &geo.Position{Lat: lat, Lon: lon}
}
