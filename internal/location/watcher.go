package location

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nikbrunner/bmcar/internal/geo"
)

// FileWatcher tracks a JSON fix file such as {"lat": 52.5, "lon": 13.4}
// written by a positioning daemon. Every change re-reads the file; an
// unreadable or malformed file means "no fix".
type FileWatcher struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	updates chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error

	mu  sync.RWMutex
	pos *geo.Position
}

// WatchFile starts watching path. The parent directory is watched so the
// file may be created or atomically replaced later.
func WatchFile(path string, logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	fw := &FileWatcher{
		path:    filepath.Clean(path),
		logger:  logger,
		watcher: w,
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	fw.reload()

	go fw.loop()
	return fw, nil
}

// CurrentLocation implements the screen locator.
func (fw *FileWatcher) CurrentLocation() (geo.Position, bool) {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	if fw.pos == nil {
		return geo.Position{}, false
	}
	return *fw.pos, true
}

// Updates signals after each change to the fix. Signals coalesce when the
// reader falls behind.
func (fw *FileWatcher) Updates() <-chan struct{} {
	return fw.updates
}

// Close stops watching. It is safe to call more than once.
func (fw *FileWatcher) Close() error {
	fw.closeOnce.Do(func() {
		close(fw.done)
		fw.closeErr = fw.watcher.Close()
	})
	return fw.closeErr
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fw.reload()
				fw.notify()
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("location watcher error", slog.Any("err", err))
		}
	}
}

func (fw *FileWatcher) reload() {
	pos, err := ReadFix(fw.path)
	if err != nil && !os.IsNotExist(err) {
		fw.logger.Debug("location fix unreadable", slog.String("path", fw.path), slog.Any("err", err))
	}

	fw.mu.Lock()
	fw.pos = pos
	fw.mu.Unlock()
}

func (fw *FileWatcher) notify() {
	select {
	case fw.updates <- struct{}{}:
	default:
	}
}

// fixFile is the on-disk fix. Both coordinates must be present.
type fixFile struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// ReadFix reads a fix file. It returns nil without error for an empty file.
func ReadFix(path string) (*geo.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var fix fixFile
	if err := json.Unmarshal(data, &fix); err != nil {
		return nil, fmt.Errorf("parse fix: %w", err)
	}
	if fix.Lat == nil || fix.Lon == nil {
		return nil, fmt.Errorf("parse fix: lat and lon are required")
	}
	pos := geo.Position{Lat: *fix.Lat, Lon: *fix.Lon}
	if !pos.Valid() {
		return nil, fmt.Errorf("fix out of range: %v", pos)
	}
	return &pos, nil
}
