package sync

import (
	"fmt"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

// toSyncRecord конвертирует локальную запись в формат API.
// Version в push - базовая ревизия, от которой сделаны локальные изменения.
func toSyncRecord(r *models.Record) api.SyncRecord {
	return api.SyncRecord{
		ID:          r.ID,
		Type:        string(r.Type),
		ContentHash: r.ContentHash,
		Data:        r.Data,
		Version:     r.ServerVersion,
		UpdatedAt:   r.UpdatedAt,
		Deleted:     r.Deleted,
	}
}

// fromSyncRecord конвертирует серверную запись в локальную
func fromSyncRecord(sr api.SyncRecord, recordType models.RecordType) *models.Record {
	return &models.Record{
		ID:            sr.ID,
		Type:          recordType,
		ContentHash:   sr.ContentHash,
		Data:          sr.Data,
		ServerVersion: sr.Version,
		UpdatedAt:     sr.UpdatedAt,
		Deleted:       sr.Deleted,
	}
}

// snapshotOf снимок серверной версии записи
func snapshotOf(sr api.SyncRecord) models.Snapshot {
	return models.Snapshot{
		Data:        sr.Data,
		ContentHash: sr.ContentHash,
		UpdatedAt:   sr.UpdatedAt,
		Version:     sr.Version,
		Deleted:     sr.Deleted,
	}
}

func pulledFor(resp *api.PullResponse, t models.RecordType) []api.SyncRecord {
	switch t {
	case models.RecordTypeNote:
		return resp.Notes
	case models.RecordTypeCategory:
		return resp.Categories
	case models.RecordTypeAiAssistant:
		return resp.AiAssistants
	}
	return nil
}

func setPushBatch(req *api.PushRequest, t models.RecordType, records []api.SyncRecord) error {
	switch t {
	case models.RecordTypeNote:
		req.Notes = records
	case models.RecordTypeCategory:
		req.Categories = records
	case models.RecordTypeAiAssistant:
		req.AiAssistants = records
	default:
		return fmt.Errorf("unknown record type %q", t)
	}
	return nil
}

func pushResultFor(resp *api.PushResponse, t models.RecordType) *api.PushTypeResult {
	switch t {
	case models.RecordTypeNote:
		return &resp.Notes
	case models.RecordTypeCategory:
		return &resp.Categories
	case models.RecordTypeAiAssistant:
		return &resp.AiAssistants
	}
	return &api.PushTypeResult{}
}
