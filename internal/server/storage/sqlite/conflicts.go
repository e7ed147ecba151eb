package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

const conflictColumns = `id, user_id, record_id, type, local_snapshot, server_snapshot, created_at, resolved_at, resolution`

// GetConflict retrieves an outstanding conflict of the user
func (s *Storage) GetConflict(ctx context.Context, userID, id string) (*models.ServerConflict, error) {
	return getOpenConflict(ctx, s.db, userID, id)
}

// ListConflicts retrieves outstanding conflicts of the user, oldest first
func (s *Storage) ListConflicts(ctx context.Context, userID string) ([]*models.ServerConflict, error) {
	query := `SELECT ` + conflictColumns + `
		FROM conflicts
		WHERE user_id = ? AND resolved_at IS NULL
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	conflicts := []*models.ServerConflict{}
	for rows.Next() {
		c, err := scanConflict(rows)
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return conflicts, nil
}

// ResolveConflict writes the resolved record and closes the conflict in one transaction
func (s *Storage) ResolveConflict(ctx context.Context, userID, id string, resolution models.Resolution, data []byte, now time.Time) (*models.StoredRecord, error) {
	var result *models.StoredRecord

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		conflict, err := getOpenConflict(ctx, tx, userID, id)
		if err != nil {
			return err
		}

		current, err := getRecord(ctx, tx, userID, conflict.RecordID)
		if err != nil {
			return fmt.Errorf("failed to load conflicting record: %w", err)
		}

		rec := *current
		switch resolution {
		case models.ResolutionServer:
			// Серверная ревизия остается как есть
		case models.ResolutionLocal:
			rec.Data = conflict.Local.Data
			rec.ContentHash = conflict.Local.ContentHash
			rec.Deleted = conflict.Local.Deleted
			rec.UpdatedAt = conflict.Local.UpdatedAt
		case models.ResolutionMerge:
			rec.Data = data
			rec.ContentHash = models.HashData(data)
			rec.Deleted = false
			rec.UpdatedAt = now
		default:
			return fmt.Errorf("unknown resolution %q", resolution)
		}

		if resolution != models.ResolutionServer {
			rec.Version = current.Version + 1
			rec.ChangedAt = now
			if err := updateRecord(ctx, tx, &rec); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE conflicts SET resolved_at = ?, resolution = ? WHERE id = ?`,
			timeToNano(now), string(resolution), conflict.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to close conflict: %w", err)
		}

		result = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// upsertConflict создает открытый конфликт по записи или обновляет снимки существующего
func upsertConflict(ctx context.Context, tx *sql.Tx, existing, incoming *models.StoredRecord, baseVersion int64, now time.Time) (*models.ServerConflict, error) {
	local := incoming.Snapshot()
	local.Version = baseVersion

	conflict := &models.ServerConflict{
		UserID:    existing.UserID,
		RecordID:  existing.ID,
		Type:      existing.Type,
		Local:     local,
		Server:    existing.Snapshot(),
		CreatedAt: now,
	}

	localJSON, err := json.Marshal(conflict.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal local snapshot: %w", err)
	}
	serverJSON, err := json.Marshal(conflict.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server snapshot: %w", err)
	}

	var (
		openID    string
		createdAt int64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT id, created_at FROM conflicts WHERE user_id = ? AND record_id = ? AND resolved_at IS NULL`,
		existing.UserID, existing.ID,
	).Scan(&openID, &createdAt)

	switch {
	case err == nil:
		conflict.ID = openID
		conflict.CreatedAt = nanoToTime(createdAt)
		_, err = tx.ExecContext(ctx,
			`UPDATE conflicts SET type = ?, local_snapshot = ?, server_snapshot = ? WHERE id = ?`,
			string(conflict.Type), string(localJSON), string(serverJSON), openID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh conflict: %w", err)
		}

	case errors.Is(err, sql.ErrNoRows):
		conflict.ID = uuid.New().String()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO conflicts (`+conflictColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, NULL, NULL)`,
			conflict.ID, conflict.UserID, conflict.RecordID, string(conflict.Type),
			string(localJSON), string(serverJSON), timeToNano(now),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert conflict: %w", err)
		}

	default:
		return nil, fmt.Errorf("failed to look up open conflict: %w", err)
	}

	return conflict, nil
}

func getOpenConflict(ctx context.Context, q querier, userID, id string) (*models.ServerConflict, error) {
	query := `SELECT ` + conflictColumns + `
		FROM conflicts
		WHERE id = ? AND user_id = ? AND resolved_at IS NULL`

	c, err := scanConflict(q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanConflict(row rowScanner) (*models.ServerConflict, error) {
	c := &models.ServerConflict{}
	var (
		recordType, localJSON, serverJSON string
		createdAt                         int64
		resolvedAt                        sql.NullInt64
		resolution                        sql.NullString
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.RecordID,
		&recordType,
		&localJSON,
		&serverJSON,
		&createdAt,
		&resolvedAt,
		&resolution,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan conflict: %w", err)
	}

	if err := json.Unmarshal([]byte(localJSON), &c.Local); err != nil {
		return nil, fmt.Errorf("failed to unmarshal local snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(serverJSON), &c.Server); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server snapshot: %w", err)
	}

	c.Local.Data = nullToNil(c.Local.Data)
	c.Server.Data = nullToNil(c.Server.Data)
	c.Type = models.RecordType(recordType)
	c.CreatedAt = nanoToTime(createdAt)
	if resolvedAt.Valid {
		t := nanoToTime(resolvedAt.Int64)
		c.ResolvedAt = &t
	}
	c.Resolution = models.Resolution(resolution.String)

	return c, nil
}

// nullToNil возвращает tombstone-снимкам пустые данные после JSON round-trip
func nullToNil(data json.RawMessage) json.RawMessage {
	if string(data) == "null" {
		return nil
	}
	return data
}
