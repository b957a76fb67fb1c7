package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
	_ "modernc.org/sqlite"
)

// Store persists the completed workshop ids in a local SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ ports.ProgressStore = (*Store)(nil)

// Open creates the database file if needed and initialises the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps writers serialised within the process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS completed_workshops (
		position     INTEGER NOT NULL,
		workshop_id  TEXT PRIMARY KEY,
		completed_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_completed_workshops_position ON completed_workshops(position);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return err
	}

	return nil
}

func (s *Store) Load(ctx context.Context) ([]domain.WorkshopID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT workshop_id FROM completed_workshops ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query completed workshops: %w", err)
	}
	defer rows.Close()

	var ids []domain.WorkshopID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completed workshop: %w", err)
		}
		ids = append(ids, domain.WorkshopID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed workshops: %w", err)
	}

	return ids, nil
}

// Save replaces the stored set in one transaction. Timestamps of ids that
// were already present are kept.
func (s *Store) Save(ctx context.Context, ids []domain.WorkshopID) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing := map[string]int64{}
	rows, err := tx.QueryContext(ctx, `SELECT workshop_id, completed_at FROM completed_workshops`)
	if err != nil {
		return fmt.Errorf("query completed workshops: %w", err)
	}
	for rows.Next() {
		var id string
		var completedAt int64
		if err = rows.Scan(&id, &completedAt); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan completed workshop: %w", err)
		}
		existing[id] = completedAt
	}
	if err = rows.Close(); err != nil {
		return fmt.Errorf("close rows: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM completed_workshops`); err != nil {
		return fmt.Errorf("reset completed workshops: %w", err)
	}

	now := s.now().Unix()
	for position, id := range ids {
		completedAt, ok := existing[string(id)]
		if !ok {
			completedAt = now
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO completed_workshops (position, workshop_id, completed_at) VALUES (?, ?, ?)`,
			position, string(id), completedAt,
		); err != nil {
			return fmt.Errorf("insert completed workshop %q: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// CompletedAt reports when the workshop was first stored as completed.
func (s *Store) CompletedAt(ctx context.Context, id domain.WorkshopID) (time.Time, bool, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx,
		`SELECT completed_at FROM completed_workshops WHERE workshop_id = ?`, string(id),
	).Scan(&unix)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query completed workshop: %w", err)
	}

	return time.Unix(unix, 0).UTC(), true, nil
}
