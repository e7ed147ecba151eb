package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
	"github.com/iudanet/notekeeper/pkg/api"
)

// maxPushBodySize ограничение размера тела push запроса
const maxPushBodySize = 16 << 20

// Notifier уведомляет другие устройства пользователя об изменениях
type Notifier interface {
	Notify(userID, originDeviceID string, types []models.RecordType)
}

// SyncObserver собирает статистику синхронизации (метрики)
type SyncObserver interface {
	ObservePushRecord(recordType models.RecordType, outcome string)
	ObserveConflictResolved(resolution models.Resolution)
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger    *slog.Logger
	records   storage.RecordStorage
	conflicts storage.ConflictStorage
	notifier  Notifier
	observer  SyncObserver
	validate  *validator.Validate
	now       func() time.Time
}

// NewSyncHandler creates a new sync handler.
// notifier и observer могут быть nil.
func NewSyncHandler(logger *slog.Logger, records storage.RecordStorage, conflicts storage.ConflictStorage, notifier Notifier, observer SyncObserver) *SyncHandler {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &SyncHandler{
		logger:    logger,
		records:   records,
		conflicts: conflicts,
		notifier:  notifier,
		observer:  observer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Pull обрабатывает GET /api/v1/sync/pull?since=RFC3339Nano&types=notes,categories
// Возвращает записи (включая tombstones), измененные после since
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		sendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "unauthorized")
		return
	}

	var since time.Time
	if s := r.URL.Query().Get("since"); s != "" {
		var err error
		since, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			h.logger.Warn("Invalid since parameter", "since", s, "error", err)
			sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, "invalid since parameter")
			return
		}
	}

	types, err := parseTypes(r.URL.Query().Get("types"))
	if err != nil {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	// server_time фиксируется до чтения: всё, что изменится позже, попадет в следующий pull
	serverTime := h.now()

	records, err := h.records.ChangedSince(ctx, userID, since, types)
	if err != nil {
		h.logger.Error("Failed to get changed records", "error", err, "user_id", userID)
		sendError(h.logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
		return
	}

	resp := api.PullResponse{
		ServerTime:   serverTime,
		Notes:        []api.SyncRecord{},
		Categories:   []api.SyncRecord{},
		AiAssistants: []api.SyncRecord{},
	}
	for _, rec := range records {
		sr := toSyncRecord(rec)
		switch rec.Type {
		case models.RecordTypeNote:
			resp.Notes = append(resp.Notes, sr)
		case models.RecordTypeCategory:
			resp.Categories = append(resp.Categories, sr)
		case models.RecordTypeAiAssistant:
			resp.AiAssistants = append(resp.AiAssistants, sr)
		}
	}

	h.logger.Info("Pull completed", "user_id", userID, "since", since, "records", len(records))
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Push обрабатывает POST /api/v1/sync/push
// Применяет локальные изменения клиента и сообщает о конфликтах
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		sendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "unauthorized")
		return
	}
	deviceID := GetDeviceID(ctx)

	var req api.PushRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPushBodySize)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode push request", "error", err)
		sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, "invalid request body")
		return
	}

	now := h.now()
	var (
		resp    api.PushResponse
		changed []models.RecordType
	)

	batches := []struct {
		result  *api.PushTypeResult
		records []api.SyncRecord
		t       models.RecordType
	}{
		{t: models.RecordTypeNote, records: req.Notes, result: &resp.Notes},
		{t: models.RecordTypeCategory, records: req.Categories, result: &resp.Categories},
		{t: models.RecordTypeAiAssistant, records: req.AiAssistants, result: &resp.AiAssistants},
	}

	for _, batch := range batches {
		for _, sr := range batch.records {
			if err := h.checkRecord(batch.t, &sr); err != nil {
				batch.result.Failed = append(batch.result.Failed, api.RecordError{ID: sr.ID, Message: err.Error()})
				h.observer.ObservePushRecord(batch.t, "rejected")
				continue
			}

			incoming := &models.StoredRecord{
				UserID:      userID,
				ID:          sr.ID,
				Type:        batch.t,
				Data:        sr.Data,
				ContentHash: sr.ContentHash,
				UpdatedAt:   sr.UpdatedAt,
				Deleted:     sr.Deleted,
			}
			if sr.Deleted {
				incoming.Data = nil
			}

			applied, err := h.records.ApplyPush(ctx, incoming, sr.Version, now)
			if err != nil {
				if errors.Is(err, models.ErrTypeMismatch) || errors.Is(err, models.ErrVersionAhead) {
					batch.result.Failed = append(batch.result.Failed, api.RecordError{ID: sr.ID, Message: err.Error()})
					h.observer.ObservePushRecord(batch.t, "rejected")
					continue
				}
				h.logger.Error("Failed to apply pushed record", "error", err, "user_id", userID, "record_id", sr.ID)
				sendError(h.logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
				return
			}

			h.observer.ObservePushRecord(batch.t, applied.Outcome.String())

			switch applied.Outcome {
			case models.OutcomeCreated:
				batch.result.Created++
			case models.OutcomeUpdated, models.OutcomeUnchanged:
				batch.result.Updated++
			case models.OutcomeConflict:
				batch.result.Conflicts = append(batch.result.Conflicts, api.ConflictInfo{
					ID:       applied.Conflict.ID,
					RecordID: sr.ID,
					Server:   toSyncRecord(applied.Record),
				})
				continue
			}

			batch.result.Applied = append(batch.result.Applied, api.AppliedRecord{
				ID:      sr.ID,
				Version: applied.Record.Version,
			})
		}

		batch.result.Errors = len(batch.result.Failed)
		if batch.result.Created+batch.result.Updated > 0 {
			changed = append(changed, batch.t)
		}
	}

	if len(changed) > 0 {
		h.notifier.Notify(userID, deviceID, changed)
	}

	h.logger.Info("Push completed",
		"user_id", userID,
		"device_id", deviceID,
		"notes", len(req.Notes),
		"categories", len(req.Categories),
		"ai_assistants", len(req.AiAssistants),
		"conflicts", len(resp.Notes.Conflicts)+len(resp.Categories.Conflicts)+len(resp.AiAssistants.Conflicts))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// checkRecord проверяет запись из push: поля, тип батча, content hash и payload
func (h *SyncHandler) checkRecord(batchType models.RecordType, sr *api.SyncRecord) error {
	if err := h.validate.Struct(sr); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	if models.RecordType(sr.Type) != batchType {
		return fmt.Errorf("record type %q in %s batch", sr.Type, batchType)
	}
	if sr.Deleted {
		if !models.VerifyHash(nil, sr.ContentHash) {
			return errors.New("content hash mismatch")
		}
		return nil
	}
	if !models.VerifyHash(sr.Data, sr.ContentHash) {
		return errors.New("content hash mismatch")
	}
	return validatePayload(h.validate, batchType, sr.Data)
}

// ListConflicts обрабатывает GET /api/v1/sync/conflicts
func (h *SyncHandler) ListConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "unauthorized")
		return
	}

	conflicts, err := h.conflicts.ListConflicts(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list conflicts", "error", err, "user_id", userID)
		sendError(h.logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
		return
	}

	items := make([]api.ConflictListItem, 0, len(conflicts))
	for _, c := range conflicts {
		items = append(items, api.ConflictListItem{
			ID:        c.ID,
			Type:      string(c.Type),
			RecordID:  c.RecordID,
			CreatedAt: c.CreatedAt,
			Local:     snapshotToSyncRecord(c.RecordID, c.Type, c.Local),
			Server:    snapshotToSyncRecord(c.RecordID, c.Type, c.Server),
		})
	}

	sendJSON(h.logger, w, items, http.StatusOK)
}

// ResolveConflict обрабатывает POST /api/v1/sync/conflicts/{id}/resolve
func (h *SyncHandler) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "unauthorized")
		return
	}

	conflictID := mux.Vars(r)["id"]
	if conflictID == "" {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, "conflict id is required")
		return
	}

	var req api.ResolveConflictRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPushBodySize)).Decode(&req); err != nil {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	resolution := models.Resolution(req.Resolution)
	if resolution == models.ResolutionMerge && len(req.Data) == 0 {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeMergeDataRequired, "merge resolution requires data")
		return
	}

	conflict, err := h.conflicts.GetConflict(ctx, userID, conflictID)
	if err != nil {
		h.sendConflictError(w, err, userID, conflictID)
		return
	}

	if req.Type != "" && models.RecordType(req.Type) != conflict.Type {
		sendError(h.logger, w, http.StatusBadRequest, api.CodeTypeMismatch,
			fmt.Sprintf("conflict %s is of type %s", conflictID, conflict.Type))
		return
	}

	if resolution == models.ResolutionMerge {
		if err := validatePayload(h.validate, conflict.Type, req.Data); err != nil {
			sendError(h.logger, w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
			return
		}
	}

	rec, err := h.conflicts.ResolveConflict(ctx, userID, conflictID, resolution, req.Data, h.now())
	if err != nil {
		h.sendConflictError(w, err, userID, conflictID)
		return
	}

	h.observer.ObserveConflictResolved(resolution)
	if resolution != models.ResolutionServer {
		h.notifier.Notify(userID, GetDeviceID(ctx), []models.RecordType{rec.Type})
	}

	h.logger.Info("Conflict resolved",
		"user_id", userID,
		"conflict_id", conflictID,
		"record_id", rec.ID,
		"resolution", resolution,
		"version", rec.Version)

	sendJSON(h.logger, w, api.ResolveConflictResponse{Record: toSyncRecord(rec)}, http.StatusOK)
}

func (h *SyncHandler) sendConflictError(w http.ResponseWriter, err error, userID, conflictID string) {
	if errors.Is(err, storage.ErrConflictNotFound) {
		sendError(h.logger, w, http.StatusNotFound, api.CodeUnknownConflict, "conflict not found")
		return
	}
	h.logger.Error("Failed to resolve conflict", "error", err, "user_id", userID, "conflict_id", conflictID)
	sendError(h.logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
}

// parseTypes разбирает список типов; пустой список означает все типы
func parseTypes(s string) ([]models.RecordType, error) {
	if s == "" {
		return models.AllRecordTypes, nil
	}

	var types []models.RecordType
	for _, part := range strings.Split(s, ",") {
		t := models.RecordType(strings.TrimSpace(part))
		if !t.Valid() {
			return nil, fmt.Errorf("unknown record type %q", part)
		}
		types = append(types, t)
	}
	return types, nil
}

func toSyncRecord(rec *models.StoredRecord) api.SyncRecord {
	return api.SyncRecord{
		ID:          rec.ID,
		Type:        string(rec.Type),
		ContentHash: rec.ContentHash,
		Data:        rec.Data,
		Version:     rec.Version,
		UpdatedAt:   rec.UpdatedAt,
		Deleted:     rec.Deleted,
	}
}

func snapshotToSyncRecord(id string, t models.RecordType, s models.Snapshot) api.SyncRecord {
	return api.SyncRecord{
		ID:          id,
		Type:        string(t),
		ContentHash: s.ContentHash,
		Data:        s.Data,
		Version:     s.Version,
		UpdatedAt:   s.UpdatedAt,
		Deleted:     s.Deleted,
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, []models.RecordType) {}

type nopObserver struct{}

func (nopObserver) ObservePushRecord(models.RecordType, string) {}
func (nopObserver) ObserveConflictResolved(models.Resolution) {}
