package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

const recordColumns = `user_id, id, type, data, content_hash, version, deleted, updated_at, changed_at`

// ApplyPush applies one pushed record atomically.
// Version check and write happen in one transaction, so concurrent pushes
// of the same record cannot both be applied against the same base.
func (s *Storage) ApplyPush(ctx context.Context, incoming *models.StoredRecord, baseVersion int64, now time.Time) (*models.PushApplied, error) {
	var applied *models.PushApplied

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := getRecord(ctx, tx, incoming.UserID, incoming.ID)
		if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
			return err
		}

		outcome, err := models.DecidePush(existing, incoming, baseVersion)
		if err != nil {
			return err
		}

		applied = &models.PushApplied{Outcome: outcome}

		switch outcome {
		case models.OutcomeCreated:
			rec := *incoming
			rec.Version = 1
			rec.ChangedAt = now
			if err := insertRecord(ctx, tx, &rec); err != nil {
				return err
			}
			applied.Record = &rec

		case models.OutcomeUpdated:
			rec := *incoming
			rec.Version = existing.Version + 1
			rec.ChangedAt = now
			if err := updateRecord(ctx, tx, &rec); err != nil {
				return err
			}
			applied.Record = &rec

		case models.OutcomeUnchanged:
			applied.Record = existing

		case models.OutcomeConflict:
			conflict, err := upsertConflict(ctx, tx, existing, incoming, baseVersion, now)
			if err != nil {
				return err
			}
			applied.Record = existing
			applied.Conflict = conflict
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}

// GetRecord retrieves a record (tombstones included)
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) GetRecord(ctx context.Context, userID, id string) (*models.StoredRecord, error) {
	return getRecord(ctx, s.db, userID, id)
}

// ChangedSince retrieves records changed after since, ordered by changed_at
func (s *Storage) ChangedSince(ctx context.Context, userID string, since time.Time, types []models.RecordType) ([]*models.StoredRecord, error) {
	if len(types) == 0 {
		return []*models.StoredRecord{}, nil
	}

	placeholders := make([]string, len(types))
	args := make([]any, 0, len(types)+2)
	args = append(args, userID, timeToNano(since))
	for i, t := range types {
		placeholders[i] = "?"
		args = append(args, string(t))
	}

	query := `SELECT ` + recordColumns + `
		FROM records
		WHERE user_id = ? AND changed_at > ? AND type IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY changed_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records since: %w", err)
	}
	defer rows.Close()

	records := []*models.StoredRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func getRecord(ctx context.Context, q querier, userID, id string) (*models.StoredRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE user_id = ? AND id = ?`

	rec, err := scanRecord(q.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func insertRecord(ctx context.Context, q querier, rec *models.StoredRecord) error {
	query := `INSERT INTO records (` + recordColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := q.ExecContext(ctx, query,
		rec.UserID,
		rec.ID,
		string(rec.Type),
		[]byte(rec.Data),
		rec.ContentHash,
		rec.Version,
		boolToInt(rec.Deleted),
		timeToNano(rec.UpdatedAt),
		timeToNano(rec.ChangedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func updateRecord(ctx context.Context, q querier, rec *models.StoredRecord) error {
	query := `
		UPDATE records
		SET data = ?, content_hash = ?, version = ?, deleted = ?, updated_at = ?, changed_at = ?
		WHERE user_id = ? AND id = ?
	`

	result, err := q.ExecContext(ctx, query,
		[]byte(rec.Data),
		rec.ContentHash,
		rec.Version,
		boolToInt(rec.Deleted),
		timeToNano(rec.UpdatedAt),
		timeToNano(rec.ChangedAt),
		rec.UserID,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.StoredRecord, error) {
	rec := &models.StoredRecord{}
	var (
		recordType           string
		data                 []byte
		deleted              int
		updatedAt, changedAt int64
	)

	err := row.Scan(
		&rec.UserID,
		&rec.ID,
		&recordType,
		&data,
		&rec.ContentHash,
		&rec.Version,
		&deleted,
		&updatedAt,
		&changedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.Type = models.RecordType(recordType)
	if data != nil {
		rec.Data = data
	}
	rec.Deleted = intToBool(deleted)
	rec.UpdatedAt = nanoToTime(updatedAt)
	rec.ChangedAt = nanoToTime(changedAt)

	return rec, nil
}
