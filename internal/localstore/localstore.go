// Package localstore is a single-file SQLite implementation of the
// library and calibration stores, used by the local CLI where running
// PostgreSQL would be overkill.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/claude/liftplan/internal/models"
	_ "modernc.org/sqlite"
)

// DB is a SQLite-backed store at dir/liftplan.db.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the local database.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "liftplan.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening local db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS user_libraries (
			user_id       TEXT PRIMARY KEY,
			payload       TEXT NOT NULL,
			last_modified TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS calibration_records (
			user_id     TEXT NOT NULL,
			exercise_id TEXT NOT NULL,
			payload     TEXT NOT NULL,
			PRIMARY KEY (user_id, exercise_id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating local schema: %w", err)
		}
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Library implements library.Store.
func (d *DB) Library(ctx context.Context, userID string) (models.UserLibrary, bool, error) {
	var payload string
	err := d.db.QueryRowContext(ctx,
		`SELECT payload FROM user_libraries WHERE user_id = ?`, userID).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.UserLibrary{}, false, nil
	}
	if err != nil {
		return models.UserLibrary{}, false, fmt.Errorf("querying local library: %w", err)
	}

	var lib models.UserLibrary
	if err := json.Unmarshal([]byte(payload), &lib); err != nil {
		return models.UserLibrary{}, false, fmt.Errorf("decoding local library: %w", err)
	}
	return lib, true, nil
}

// SaveLibrary implements library.Store. The whole library lands in one
// statement, so batched additions stay atomic.
func (d *DB) SaveLibrary(ctx context.Context, lib models.UserLibrary) error {
	payload, err := json.Marshal(lib)
	if err != nil {
		return fmt.Errorf("encoding local library: %w", err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_libraries (user_id, payload, last_modified) VALUES (?, ?, ?)`,
		lib.UserID, string(payload), lib.LastModified)
	if err != nil {
		return fmt.Errorf("saving local library: %w", err)
	}
	return nil
}

// CalibrationRecord implements calibration.Store.
func (d *DB) CalibrationRecord(ctx context.Context, userID, exerciseID string) (calibration.Record, bool, error) {
	var payload string
	err := d.db.QueryRowContext(ctx,
		`SELECT payload FROM calibration_records WHERE user_id = ? AND exercise_id = ?`,
		userID, exerciseID).Scan(&payload)
	if err == sql.ErrNoRows {
		return calibration.Record{}, false, nil
	}
	if err != nil {
		return calibration.Record{}, false, fmt.Errorf("querying local calibration: %w", err)
	}

	var rec calibration.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return calibration.Record{}, false, fmt.Errorf("decoding local calibration: %w", err)
	}
	return rec, true, nil
}

// PutCalibrationRecord stores or replaces a calibration record.
func (d *DB) PutCalibrationRecord(ctx context.Context, rec calibration.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding local calibration: %w", err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO calibration_records (user_id, exercise_id, payload) VALUES (?, ?, ?)`,
		rec.UserID, rec.ExerciseID, string(payload))
	if err != nil {
		return fmt.Errorf("saving local calibration: %w", err)
	}
	return nil
}
