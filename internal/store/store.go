package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// WordStatRepo returns a WordStatRepo backed by this store.
func (s *Store) WordStatRepo() WordStatRepo {
	return &wordStatRepo{client: s.client}
}

// CategoryRepo returns a CategoryRepo backed by this store.
func (s *Store) CategoryRepo() CategoryRepo {
	return &categoryRepo{client: s.client}
}

// ProgressRepo returns a ProgressRepo backed by this store.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{client: s.client}
}

// HistoryRepo returns the bounded view-history log backed by this store.
func (s *Store) HistoryRepo() (HistoryRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &historyRepo{client: s.client, seq: seq}, nil
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() (EventRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &eventRepo{client: s.client, seq: seq}, nil
}

// Reset deletes all persisted learning data: word stats, the category
// tree, aggregate progress, and every event table.
func (s *Store) Reset(ctx context.Context) error {
	type deleter struct {
		name string
		fn   func() (int, error)
	}
	deleters := []deleter{
		{"word stats", func() (int, error) { return s.client.WordStat.Delete().Exec(ctx) }},
		{"lessons", func() (int, error) { return s.client.Lesson.Delete().Exec(ctx) }},
		{"categories", func() (int, error) { return s.client.Category.Delete().Exec(ctx) }},
		{"progress", func() (int, error) { return s.client.Progress.Delete().Exec(ctx) }},
		{"view events", func() (int, error) { return s.client.ViewEvent.Delete().Exec(ctx) }},
		{"answer events", func() (int, error) { return s.client.AnswerEvent.Delete().Exec(ctx) }},
		{"lesson events", func() (int, error) { return s.client.LessonEvent.Delete().Exec(ctx) }},
		{"sync events", func() (int, error) { return s.client.SyncEvent.Delete().Exec(ctx) }},
	}
	for _, d := range deleters {
		if _, err := d.fn(); err != nil {
			return fmt.Errorf("delete %s: %w", d.name, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. WORDTRAIL_DB environment variable
// 2. $XDG_DATA_HOME/wordtrail/wordtrail.db
// 3. ~/.local/share/wordtrail/wordtrail.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("WORDTRAIL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "wordtrail", "wordtrail.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
