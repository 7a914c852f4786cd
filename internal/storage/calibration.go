package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/jackc/pgx/v5"
)

// CalibrationRecord retrieves the calibration data for one
// (user, exercise) pair. found=false means no data exists yet.
func (db *DB) CalibrationRecord(ctx context.Context, userID, exerciseID string) (calibration.Record, bool, error) {
	var rec calibration.Record
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, exercise_id, one_rm_kg, estimated, range_low_kg, range_high_kg, updated_at
		 FROM calibration_records
		 WHERE user_id = $1 AND exercise_id = $2`,
		userID, exerciseID).Scan(
		&rec.UserID, &rec.ExerciseID, &rec.OneRMKg, &rec.Estimated,
		&rec.RangeLowKg, &rec.RangeHighKg, &rec.UpdatedAt)
	if err == pgx.ErrNoRows {
		return calibration.Record{}, false, nil
	}
	if err != nil {
		return calibration.Record{}, false, fmt.Errorf("querying calibration record: %w", err)
	}
	return rec, true, nil
}

// PutCalibrationRecord upserts a calibration record.
func (db *DB) PutCalibrationRecord(ctx context.Context, rec calibration.Record) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO calibration_records (user_id, exercise_id, one_rm_kg, estimated, range_low_kg, range_high_kg, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, exercise_id) DO UPDATE
		 SET one_rm_kg = EXCLUDED.one_rm_kg,
		     estimated = EXCLUDED.estimated,
		     range_low_kg = EXCLUDED.range_low_kg,
		     range_high_kg = EXCLUDED.range_high_kg,
		     updated_at = EXCLUDED.updated_at`,
		rec.UserID, rec.ExerciseID, rec.OneRMKg, rec.Estimated,
		rec.RangeLowKg, rec.RangeHighKg, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving calibration record: %w", err)
	}
	return nil
}
