package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/liftplan/internal/models"
	"github.com/jackc/pgx/v5"
)

// Library retrieves a user's library. found=false when the user has
// never saved one.
func (db *DB) Library(ctx context.Context, userID string) (models.UserLibrary, bool, error) {
	var (
		lib           models.UserLibrary
		exercisesJSON []byte
		protocolsJSON []byte
	)
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, exercises, protocols, last_modified
		 FROM user_libraries
		 WHERE user_id = $1`,
		userID).Scan(&lib.UserID, &exercisesJSON, &protocolsJSON, &lib.LastModified)
	if err == pgx.ErrNoRows {
		return models.UserLibrary{}, false, nil
	}
	if err != nil {
		return models.UserLibrary{}, false, fmt.Errorf("querying library: %w", err)
	}

	if err := json.Unmarshal(exercisesJSON, &lib.ExerciseIDs); err != nil {
		return models.UserLibrary{}, false, fmt.Errorf("decoding library exercises: %w", err)
	}
	if err := json.Unmarshal(protocolsJSON, &lib.Protocols); err != nil {
		return models.UserLibrary{}, false, fmt.Errorf("decoding library protocols: %w", err)
	}
	return lib, true, nil
}

// SaveLibrary upserts a user's library in one statement, so a batched
// multi-id addition lands as a single atomic write.
func (db *DB) SaveLibrary(ctx context.Context, lib models.UserLibrary) error {
	exercisesJSON, err := json.Marshal(lib.ExerciseIDs)
	if err != nil {
		return fmt.Errorf("encoding library exercises: %w", err)
	}
	protocolsJSON, err := json.Marshal(lib.Protocols)
	if err != nil {
		return fmt.Errorf("encoding library protocols: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO user_libraries (user_id, exercises, protocols, last_modified)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET exercises = EXCLUDED.exercises,
		     protocols = EXCLUDED.protocols,
		     last_modified = EXCLUDED.last_modified`,
		lib.UserID, exercisesJSON, protocolsJSON, lib.LastModified)
	if err != nil {
		return fmt.Errorf("saving library: %w", err)
	}
	return nil
}
