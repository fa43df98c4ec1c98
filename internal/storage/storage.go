package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEntryIndex = errors.New("history entry index out of range")
)

type Storage struct {
	DB *sql.DB
}

// Open connects to a remote libsql/Turso database (libsql://, https://, wss://)
// or to a local SQLite file, and makes sure the schema exists.
func Open(conn, authToken string) (*Storage, error) {
	driver, dsn, err := driverFor(conn, authToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := InitializeDB(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logrus.WithField("driver", driver).Debug("database ready")
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(conn, authToken string) (string, string, error) {
	if conn == "" {
		return "", "", errors.New("empty connection string")
	}

	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if !strings.HasPrefix(conn, scheme) {
			continue
		}
		if authToken == "" || strings.Contains(conn, "authToken=") {
			return "libsql", conn, nil
		}
		sep := "?"
		if strings.Contains(conn, "?") {
			sep = "&"
		}
		return "libsql", conn + sep + "authToken=" + url.QueryEscape(authToken), nil
	}

	dsn := conn
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return "sqlite", dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
}

// Tables lists every table of the schema, parents first.
var Tables = []string{"exercises", "history_entries", "settings"}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS exercises (
            id TEXT PRIMARY KEY,
            position INTEGER NOT NULL,
            name TEXT NOT NULL UNIQUE COLLATE NOCASE,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            muscle_group TEXT NOT NULL,
            priority INTEGER NOT NULL DEFAULT 0,
            is_selected INTEGER NOT NULL DEFAULT 1,
            weekly_sets INTEGER NOT NULL DEFAULT 0,
            target_rpe REAL NOT NULL DEFAULT 0,
            distance REAL NOT NULL DEFAULT 0,
            one_rep_max REAL NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS history_entries (
            id TEXT PRIMARY KEY,
            exercise_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            date TEXT NOT NULL,
            sets INTEGER NOT NULL DEFAULT 0,
            reps INTEGER NOT NULL DEFAULT 0,
            weight REAL NOT NULL DEFAULT 0,
            rpe REAL NOT NULL DEFAULT 0,
            distance REAL NOT NULL DEFAULT 0,
            notes TEXT NOT NULL DEFAULT '',
            FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
        );

        CREATE INDEX IF NOT EXISTS history_entries_exercise
            ON history_entries (exercise_id, position);

        CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );
    `)
	return err
}
