package inventory

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current audit schema version. Bump on schema changes;
// the database is an audit cache, so mismatches ask the user to delete it.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store persists asset audit snapshots in SQLite so `assets status` works
// without re-probing the content store.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// OpenStore initializes or connects to the inventory database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == nil:
		if version != schemaVersion {
			return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
				ErrSchemaMismatch, version, schemaVersion, s.path)
		}
		return nil
	case errors.Is(err, sql.ErrNoRows) || isMissingTable(err):
		return s.createSchema(ctx)
	default:
		return fmt.Errorf("read schema version: %w", err)
	}
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("reset schema version: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// SaveSnapshot upserts the current state of every asset in one transaction.
// Timestamps are stored as RFC 3339 text so they round-trip regardless of the
// driver's column type handling.
func (s *Store) SaveSnapshot(ctx context.Context, assets []Asset) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin snapshot tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO assets (key, name, kind, category, subfolder, file_name, status, error_message, checked_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
    name = excluded.name,
    kind = excluded.kind,
    category = excluded.category,
    subfolder = excluded.subfolder,
    file_name = excluded.file_name,
    status = excluded.status,
    error_message = excluded.error_message,
    checked_at = excluded.checked_at,
    updated_at = excluded.updated_at`)
		if err != nil {
			return fmt.Errorf("prepare snapshot upsert: %w", err)
		}
		defer stmt.Close()

		for _, a := range assets {
			if _, err := stmt.ExecContext(ctx,
				a.Key, a.Name, string(a.Kind), a.Category, a.Subfolder, a.FileName,
				string(a.Status), a.Error, now, now,
			); err != nil {
				return fmt.Errorf("upsert asset %q: %w", a.Key, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit snapshot: %w", err)
		}
		return nil
	})
}

// LoadSnapshot returns the persisted audit rows.
func (s *Store) LoadSnapshot(ctx context.Context) ([]SnapshotRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, status, error_message, checked_at, updated_at FROM assets ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var row SnapshotRow
		var status string
		var checkedAt, updatedAt sql.NullString
		if err := rows.Scan(&row.Key, &status, &row.Error, &checkedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		parsed, ok := ParseStatus(status)
		if !ok {
			// Unknown statuses from a newer build degrade to pending.
			parsed = StatusPending
		}
		row.Status = parsed
		// Timestamps come back as TEXT; parse here instead of scanning into
		// time.Time directly. Unparseable values degrade to the zero time.
		raw := checkedAt.String
		if raw == "" {
			raw = updatedAt.String
		}
		if t, err := parseTimeString(raw); err == nil {
			row.CheckedAt = t
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// CategoryCount aggregates statuses for one display category.
type CategoryCount struct {
	Category  string `json:"category"`
	Total     int    `json:"total"`
	Exists    int    `json:"exists"`
	Generated int    `json:"generated"`
	Pending   int    `json:"pending"`
	Errors    int    `json:"errors"`
}

// Summary aggregates persisted statuses per category, ordered by category.
func (s *Store) Summary(ctx context.Context) ([]CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT category,
       COUNT(*),
       SUM(CASE WHEN status = 'exists' THEN 1 ELSE 0 END),
       SUM(CASE WHEN status = 'generated' THEN 1 ELSE 0 END),
       SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END),
       SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END)
FROM assets
GROUP BY category
ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Total, &c.Exists, &c.Generated, &c.Pending, &c.Errors); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
