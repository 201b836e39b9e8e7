package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/location"
	"github.com/nikbrunner/bmcar/internal/logging"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/search"
	"github.com/nikbrunner/bmcar/internal/storage"
)

// env is everything a command needs once config and data are loaded.
type env struct {
	cfg     *storage.Config
	storage storage.Storage
	store   *model.Store
	logger  *slog.Logger
	locale  *locale.Localizer
	units   locale.Units

	closers []func() error
}

func loadEnv(opts *rootOptions) (*env, error) {
	configPath := opts.configPath
	if configPath == "" {
		p, err := storage.DefaultConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		configPath = p
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.locationFile != "" {
		cfg.LocationFile = opts.locationFile
	}
	if opts.units != "" {
		cfg.Units = opts.units
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	e := &env{
		cfg:     cfg,
		logger:  logger,
		locale:  locale.New(cfg.Locale),
		units:   locale.ParseUnits(cfg.Units),
		closers: []func() error{closeLog},
	}

	dataDir := opts.dataDir
	if dataDir == "" {
		dataDir, err = storage.DefaultDir()
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
	}

	st, err := storage.OpenStorage(dataDir)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	e.storage = st
	e.closers = append(e.closers, func() error { return storage.Close(st) })

	e.store, err = st.Load()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	logger.Debug("environment loaded",
		slog.String("config", configPath),
		slog.String("data", dataDir),
		slog.Int("collections", len(e.store.Collections)),
		slog.Int("bookmarks", len(e.store.Bookmarks)))

	return e, nil
}

// Close releases storage and the log file, newest first.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// locator returns the configured location source. updates is nil unless a
// fix file is followed.
func (e *env) locator() (screen.Locator, <-chan struct{}, error) {
	if e.cfg.LocationFile != "" {
		fw, err := location.WatchFile(e.cfg.LocationFile, e.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("follow location: %w", err)
		}
		e.closers = append(e.closers, fw.Close)
		return fw, fw.Updates(), nil
	}
	if e.cfg.Home != nil {
		return location.NewStatic(e.cfg.Home), nil, nil
	}
	return nil, nil, nil
}

// limiter returns a fixed limit when the config sets one.
func (e *env) limiter() screen.ContentLimiter {
	if e.cfg.ListLimit > 0 {
		return screen.FixedLimit(e.cfg.ListLimit)
	}
	return nil
}

// browsable returns the collections the root screen would list.
func (e *env) browsable() []model.Collection {
	return screen.VisibleCategories(e.store.ListCollections())
}

// resolveCollection finds a collection by query among all collections,
// erroring when nothing or more than one collection matches.
func resolveCollection(collections []model.Collection, query string) (model.Collection, error) {
	c, results := search.Resolve(collections, query)
	if c != nil {
		return *c, nil
	}
	if len(results) == 0 {
		return model.Collection{}, fmt.Errorf("no collection matches %q", query)
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Collection.Name
	}
	return model.Collection{}, fmt.Errorf("%q matches several collections: %v", query, names)
}
