package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/bmcar/internal/model"
)

const currentSchemaVersion = 2

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %q: %w", pragma, err)
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the applied schema version.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < currentSchemaVersion {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS collections (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			visible INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			collection_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			feature TEXT NOT NULL DEFAULT '',
			icon_color TEXT NOT NULL DEFAULT '',
			icon_type TEXT NOT NULL DEFAULT '',
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (collection_id) REFERENCES collections(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_bookmarks_collection_id ON bookmarks(collection_id);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds position columns so list order survives a round trip.
func (s *SQLiteStorage) migrateV2() error {
	migration := `
		ALTER TABLE collections ADD COLUMN position INTEGER NOT NULL DEFAULT 0;
		ALTER TABLE bookmarks ADD COLUMN position INTEGER NOT NULL DEFAULT 0;
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Load reads the store from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := model.NewStore()

	rows, err := s.db.Query(`
		SELECT id, name, description, visible
		FROM collections
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Collection
		var visible int

		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &visible); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		c.Visible = visible == 1

		store.Collections = append(store.Collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT id, collection_id, name, address, feature, icon_color, icon_type, lat, lon, created_at
		FROM bookmarks
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Bookmark
		var createdAtStr string

		if err := rows.Scan(
			&b.ID, &b.CollectionID, &b.Name, &b.Address, &b.Feature,
			&b.Icon.Color, &b.Icon.Type, &b.Lat, &b.Lon, &createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}

		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

		store.Bookmarks = append(store.Bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store, nil
}

// Save writes the store to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(store *model.Store) error {
	return withLock(s.path, func() error {
		return s.save(store)
	})
}

func (s *SQLiteStorage) lockPath() string {
	return s.path
}

func (s *SQLiteStorage) save(store *model.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Bookmarks cascade with their collections
	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM collections"); err != nil {
		return err
	}

	collectionStmt, err := tx.Prepare(`
		INSERT INTO collections (id, name, description, visible, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer collectionStmt.Close()

	for i, c := range store.Collections {
		visible := 0
		if c.Visible {
			visible = 1
		}
		if _, err := collectionStmt.Exec(c.ID, c.Name, c.Description, visible, i); err != nil {
			return fmt.Errorf("insert collection %s: %w", c.ID, err)
		}
	}

	bookmarkStmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, collection_id, name, address, feature, icon_color, icon_type, lat, lon, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer bookmarkStmt.Close()

	for i, b := range store.Bookmarks {
		if _, err := bookmarkStmt.Exec(
			b.ID, b.CollectionID, b.Name, b.Address, b.Feature,
			b.Icon.Color, b.Icon.Type, b.Lat, b.Lon,
			b.CreatedAt.Format(time.RFC3339), i,
		); err != nil {
			return fmt.Errorf("insert bookmark %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the SQLite database path inside dir.
func DefaultSQLitePath(dir string) string {
	return filepath.Join(dir, dbFileName)
}
