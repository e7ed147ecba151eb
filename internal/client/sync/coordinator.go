package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

// DefaultSyncInterval период автоматической синхронизации по умолчанию
const DefaultSyncInterval = 60 * time.Second

// Options настройки координатора
type Options struct {
	Now             func() time.Time         // часы для отметки последней синхронизации
	OnSyncStart     func()                   // начало цикла
	OnSyncComplete  func(*models.SyncResult) // успешное завершение цикла
	OnSyncError     func(error)              // ошибка цикла
	OnConflict      func([]*models.Conflict) // обнаружены конфликты (только непустой список)
	SyncInterval    time.Duration            // период автосинхронизации
	DisableAutoSync bool                     // не запускать автосинхронизацию при создании
}

// DefaultOptions возвращает настройки по умолчанию: автосинхронизация раз в минуту
func DefaultOptions() *Options {
	return &Options{
		SyncInterval: DefaultSyncInterval,
	}
}

// withDefaults заполняет пустые поля
func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.OnSyncStart == nil {
		o.OnSyncStart = func() {}
	}
	if o.OnSyncComplete == nil {
		o.OnSyncComplete = func(*models.SyncResult) {}
	}
	if o.OnSyncError == nil {
		o.OnSyncError = func(error) {}
	}
	if o.OnConflict == nil {
		o.OnConflict = func([]*models.Conflict) {}
	}
	if o.SyncInterval <= 0 {
		o.SyncInterval = DefaultSyncInterval
	}
	return o
}

// Coordinator синхронизирует локальный offline кеш с сервером.
// Одновременно выполняется не больше одного цикла.
type Coordinator struct {
	remote   RemoteAPI
	records  storage.RecordStorage
	metadata storage.MetadataStorage
	logger   *slog.Logger

	// loop state
	cancel   context.CancelFunc
	loopDone chan struct{}

	opts Options
	mu   sync.Mutex

	syncing   atomic.Bool
	destroyed atomic.Bool
}

// NewCoordinator создает координатор синхронизации.
// nil opts означает DefaultOptions(). Периодическая синхронизация запускается сразу, если не задан DisableAutoSync.
func NewCoordinator(remote RemoteAPI, records storage.RecordStorage, metadata storage.MetadataStorage, logger *slog.Logger, opts *Options) *Coordinator {
	if opts == nil {
		opts = DefaultOptions()
	}

	c := &Coordinator{
		remote:   remote,
		records:  records,
		metadata: metadata,
		logger:   logger,
		opts:     opts.withDefaults(),
	}

	if !c.opts.DisableAutoSync {
		// новый координатор не может быть destroyed
		_ = c.StartAutoSync()
	}

	return c
}

// IsSyncing сообщает, выполняется ли сейчас цикл синхронизации
func (c *Coordinator) IsSyncing() bool {
	return c.syncing.Load()
}

// FullSync выполняет полный цикл синхронизации: pull, push, обнаружение конфликтов.
// Повторный вызов во время выполнения сразу возвращает ErrSyncInProgress.
func (c *Coordinator) FullSync(ctx context.Context) (*models.SyncResult, error) {
	if c.destroyed.Load() {
		return nil, ErrCoordinatorDestroyed
	}
	if !c.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer c.syncing.Store(false)

	c.logger.Info("Starting synchronization")
	c.opts.OnSyncStart()

	result, err := c.runCycle(ctx)
	if err != nil {
		c.logger.Error("Synchronization failed", "error", err)
		c.opts.OnSyncError(err)
		return nil, err
	}

	c.logger.Info("Synchronization completed",
		"pulled", result.TotalPulled(),
		"pushed", result.TotalPushed(),
		"conflicts", len(result.AllConflicts()),
		"duration", result.FinishedAt.Sub(result.StartedAt))

	c.opts.OnSyncComplete(result)
	return result, nil
}

func (c *Coordinator) runCycle(ctx context.Context) (*models.SyncResult, error) {
	result := &models.SyncResult{StartedAt: c.opts.Now()}

	lastSyncAt, err := c.metadata.GetLastSyncAt(ctx)
	if err != nil {
		return nil, localErr("get last sync time", err)
	}

	// 1. Pull: удалённое состояние учитываем до оценки pending записей
	diverged, err := c.pull(ctx, lastSyncAt, result)
	if err != nil {
		return nil, err
	}

	// 2. Push
	batch, resp, err := c.pushPending(ctx)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		for _, t := range models.AllRecordTypes {
			tr := pushResultFor(resp, t)
			result.For(t).Pushed = tr.Created + tr.Updated
		}
	}

	// 3. Конфликты: только после ответа на push
	conflicts, err := c.storeConflicts(ctx, batch, resp, diverged)
	if err != nil {
		return nil, err
	}
	for _, t := range models.AllRecordTypes {
		result.For(t).Conflicts = conflicts[t]
	}
	if all := result.AllConflicts(); len(all) > 0 {
		c.logger.Warn("Conflicts detected", "count", len(all))
		c.opts.OnConflict(all)
	}

	// 4. Отметка последней синхронизации строго растёт
	now := c.opts.Now()
	if !now.After(lastSyncAt) {
		now = lastSyncAt.Add(time.Nanosecond)
	}
	if err := c.metadata.SaveLastSyncAt(ctx, now); err != nil {
		return nil, localErr("save last sync time", err)
	}
	result.FinishedAt = now

	return result, nil
}

// pull загружает изменения с сервера и записывает их в локальный кеш.
// Возвращает серверные версии записей, которые локально ожидают отправки.
func (c *Coordinator) pull(ctx context.Context, since time.Time, result *models.SyncResult) (recordSet, error) {
	resp, err := c.remote.Pull(ctx, since, models.AllRecordTypes)
	if err != nil {
		return nil, fmt.Errorf("pull failed: %w", err)
	}

	diverged := recordSet{}
	for _, t := range models.AllRecordTypes {
		remote := pulledFor(resp, t)
		if len(remote) == 0 {
			continue
		}

		records := make([]*models.Record, 0, len(remote))
		for _, sr := range remote {
			records = append(records, fromSyncRecord(sr, t))
		}

		applied, pending, err := c.records.ApplyRemote(ctx, t, records)
		if err != nil {
			return nil, localErr(fmt.Sprintf("apply pulled %s", t), err)
		}

		// Pulled считает все полученные записи, включая неизменные и ожидающие отправки
		result.For(t).Pulled = len(remote)
		diverged.add(t, pending...)

		c.logger.Debug("Pulled records", "type", t, "received", len(remote), "applied", applied, "diverged", len(pending))
	}

	return diverged, nil
}

// pushPending отправляет все pending записи одним запросом и подтверждает принятые.
// Если отправлять нечего, сервер не вызывается и resp == nil.
func (c *Coordinator) pushPending(ctx context.Context) (recordSet, *api.PushResponse, error) {
	batch := recordSet{}
	req := &api.PushRequest{}

	for _, t := range models.AllRecordTypes {
		pending, err := c.records.GetPendingRecords(ctx, t)
		if err != nil {
			return nil, nil, localErr(fmt.Sprintf("get pending %s", t), err)
		}
		if len(pending) == 0 {
			continue
		}

		batch.add(t, pending...)

		wire := make([]api.SyncRecord, 0, len(pending))
		for _, r := range pending {
			wire = append(wire, toSyncRecord(r))
		}
		if err := setPushBatch(req, t, wire); err != nil {
			return nil, nil, err
		}
	}

	if req.Empty() {
		c.logger.Debug("Nothing to push")
		return batch, nil, nil
	}

	resp, err := c.remote.Push(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("push failed: %w", err)
	}

	for _, t := range models.AllRecordTypes {
		tr := pushResultFor(resp, t)

		var acks []models.PushAck
		for _, applied := range tr.Applied {
			local := batch.get(t, applied.ID)
			if local == nil {
				c.logger.Warn("Server acknowledged unknown record", "type", t, "id", applied.ID)
				continue
			}
			acks = append(acks, models.PushAck{
				ID:            applied.ID,
				ServerVersion: applied.Version,
				UpdatedAt:     local.UpdatedAt,
			})
		}
		if err := c.records.ClearPending(ctx, t, acks); err != nil {
			return nil, nil, localErr(fmt.Sprintf("clear pending %s", t), err)
		}

		var failures []models.PushFailure
		for _, f := range tr.Failed {
			failure := models.PushFailure{ID: f.ID, Message: f.Message}
			if local := batch.get(t, f.ID); local != nil {
				failure.UpdatedAt = local.UpdatedAt
			}
			failures = append(failures, failure)
			c.logger.Warn("Server rejected record", "type", t, "id", f.ID, "error", f.Message)
		}
		if err := c.records.SetSyncErrors(ctx, t, failures); err != nil {
			return nil, nil, localErr(fmt.Sprintf("set sync errors %s", t), err)
		}

		c.logger.Debug("Pushed records", "type", t,
			"created", tr.Created, "updated", tr.Updated, "errors", tr.Errors, "conflicts", len(tr.Conflicts))
	}

	return batch, resp, nil
}

// storeConflicts строит конфликты по ответу на push и сохраняет их в локальном кеше.
// Конфликт есть только у записи, которая была в батче (изменена локально)
// и чья базовая ревизия на сервере устарела (изменена на сервере).
func (c *Coordinator) storeConflicts(ctx context.Context, batch recordSet, resp *api.PushResponse, diverged recordSet) (map[models.RecordType][]*models.Conflict, error) {
	if resp == nil {
		return nil, nil
	}

	detectedAt := c.opts.Now()
	out := make(map[models.RecordType][]*models.Conflict)

	for _, t := range models.AllRecordTypes {
		var conflicts []*models.Conflict

		for _, info := range pushResultFor(resp, t).Conflicts {
			local := batch.get(t, info.RecordID)
			if local == nil || info.ID == "" {
				c.logger.Warn("Ignoring conflict for record outside push batch", "type", t, "record_id", info.RecordID)
				continue
			}

			conflict := &models.Conflict{
				ID:         info.ID,
				Type:       t,
				RecordID:   info.RecordID,
				Local:      local.Snapshot(),
				DetectedAt: detectedAt,
			}
			switch {
			case info.Server.ID != "":
				conflict.Server = snapshotOf(info.Server)
			case diverged.get(t, info.RecordID) != nil:
				conflict.Server = diverged.get(t, info.RecordID).Snapshot()
			}

			conflicts = append(conflicts, conflict)
		}

		if len(conflicts) == 0 {
			continue
		}
		if err := c.records.SetConflicts(ctx, t, conflicts); err != nil {
			return nil, localErr(fmt.Sprintf("store %s conflicts", t), err)
		}
		out[t] = conflicts
	}

	return out, nil
}

// PushChanges отправляет pending записи без pull.
// Подчиняется тому же взаимному исключению, что и FullSync.
func (c *Coordinator) PushChanges(ctx context.Context) (*models.PushResult, error) {
	if c.destroyed.Load() {
		return nil, ErrCoordinatorDestroyed
	}
	if !c.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer c.syncing.Store(false)

	result := &models.PushResult{}

	batch, resp, err := c.pushPending(ctx)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return result, nil
	}

	for _, t := range models.AllRecordTypes {
		tr := pushResultFor(resp, t)
		*result.For(t) = models.PushCounts{Created: tr.Created, Updated: tr.Updated, Errors: tr.Errors}
	}

	conflicts, err := c.storeConflicts(ctx, batch, resp, nil)
	if err != nil {
		return nil, err
	}
	var all []*models.Conflict
	for _, t := range models.AllRecordTypes {
		all = append(all, conflicts[t]...)
	}
	if len(all) > 0 {
		c.opts.OnConflict(all)
	}

	return result, nil
}

// ResolveConflict разрешает конфликт через сервер и сохраняет итоговую запись локально.
// Неизвестный серверу конфликт возвращает api.ErrUnknownConflict без изменения локального состояния.
func (c *Coordinator) ResolveConflict(ctx context.Context, conflictID string, resolution models.Resolution, data json.RawMessage) (*models.Record, error) {
	if c.destroyed.Load() {
		return nil, ErrCoordinatorDestroyed
	}
	if !resolution.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}
	if resolution == models.ResolutionMerge && len(data) == 0 {
		return nil, ErrMergeDataRequired
	}

	req := &api.ResolveConflictRequest{
		Resolution: string(resolution),
		Data:       data,
	}

	// Тип берём из локального кеша; если конфликт там не известен, решает сервер
	local, err := c.records.FindConflict(ctx, conflictID)
	switch {
	case err == nil:
		req.Type = string(local.Type)
	case errors.Is(err, storage.ErrConflictNotFound):
	default:
		return nil, localErr("find conflict", err)
	}

	resp, err := c.remote.ResolveConflict(ctx, conflictID, req)
	if err != nil {
		return nil, fmt.Errorf("resolve conflict %s: %w", conflictID, err)
	}

	recordType, err := models.ParseRecordType(resp.Record.Type)
	if err != nil {
		return nil, fmt.Errorf("resolve conflict %s: %w", conflictID, err)
	}

	record := fromSyncRecord(resp.Record, recordType)
	if err := c.records.ApplyResolved(ctx, record); err != nil {
		return nil, localErr("apply resolved record", err)
	}

	c.logger.Info("Conflict resolved", "conflict_id", conflictID, "resolution", resolution, "record_id", record.ID)
	return record, nil
}

// StartAutoSync запускает периодическую синхронизацию. Повторный вызов ничего не делает.
func (c *Coordinator) StartAutoSync() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed.Load() {
		return ErrCoordinatorDestroyed
	}
	if c.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel = cancel
	c.loopDone = done

	go c.autoSyncLoop(ctx, done)

	c.logger.Info("Auto sync started", "interval", c.opts.SyncInterval)
	return nil
}

// StopAutoSync останавливает периодическую синхронизацию.
// Выполняющийся цикл не прерывается. Безопасно вызывать без запущенного таймера.
func (c *Coordinator) StopAutoSync() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

func (c *Coordinator) stopLocked() <-chan struct{} {
	if c.cancel == nil {
		return nil
	}

	c.cancel()
	done := c.loopDone
	c.cancel = nil
	c.loopDone = nil

	c.logger.Info("Auto sync stopped")
	return done
}

// AutoSyncActive сообщает, запущена ли периодическая синхронизация
func (c *Coordinator) AutoSyncActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Destroy останавливает таймер и дожидается завершения его горутины.
// После Destroy все операции возвращают ErrCoordinatorDestroyed.
func (c *Coordinator) Destroy() {
	c.mu.Lock()
	c.destroyed.Store(true)
	done := c.stopLocked()
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (c *Coordinator) autoSyncLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.opts.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Остановка таймера не прерывает уже начатый цикл
			c.runScheduled(context.WithoutCancel(ctx))
		}
	}
}

// runScheduled выполняет цикл по таймеру. Ошибки и паники уходят только в OnSyncError.
func (c *Coordinator) runScheduled(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in scheduled sync", "panic", r)
			c.reportError(fmt.Errorf("scheduled sync panic: %v", r))
		}
	}()

	_, err := c.FullSync(ctx)
	switch {
	case err == nil, errors.Is(err, ErrCoordinatorDestroyed):
	case errors.Is(err, ErrSyncInProgress):
		// FullSync сам об этом не сообщает
		c.logger.Debug("Scheduled sync skipped: sync in progress")
		c.reportError(err)
	}
}

func (c *Coordinator) reportError(err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in OnSyncError callback", "panic", r)
		}
	}()
	c.opts.OnSyncError(err)
}

// Status состояние синхронизации для отображения пользователю
type Status struct {
	LastSyncAt time.Time
	Pending    map[models.RecordType]int
	Conflicts  int
	Syncing    bool
	AutoSync   bool
}

// Status возвращает количество несинхронизированных записей и конфликтов
func (c *Coordinator) Status(ctx context.Context) (*Status, error) {
	if c.destroyed.Load() {
		return nil, ErrCoordinatorDestroyed
	}

	st := &Status{
		Pending:  make(map[models.RecordType]int, len(models.AllRecordTypes)),
		Syncing:  c.IsSyncing(),
		AutoSync: c.AutoSyncActive(),
	}

	lastSyncAt, err := c.metadata.GetLastSyncAt(ctx)
	if err != nil {
		return nil, localErr("get last sync time", err)
	}
	st.LastSyncAt = lastSyncAt

	for _, t := range models.AllRecordTypes {
		pending, err := c.records.GetPendingRecords(ctx, t)
		if err != nil {
			return nil, localErr(fmt.Sprintf("get pending %s", t), err)
		}
		st.Pending[t] = len(pending)
	}

	conflicts, err := c.records.ListConflicts(ctx)
	if err != nil {
		return nil, localErr("list conflicts", err)
	}
	st.Conflicts = len(conflicts)

	return st, nil
}

// Conflicts возвращает конфликты, ожидающие разрешения, в порядке обнаружения
func (c *Coordinator) Conflicts(ctx context.Context) ([]*models.Conflict, error) {
	if c.destroyed.Load() {
		return nil, ErrCoordinatorDestroyed
	}

	records, err := c.records.ListConflicts(ctx)
	if err != nil {
		return nil, localErr("list conflicts", err)
	}

	out := make([]*models.Conflict, 0, len(records))
	for _, r := range records {
		if r.Conflict != nil {
			out = append(out, r.Conflict.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DetectedAt.Before(out[j].DetectedAt)
	})
	return out, nil
}

// localErr помечает ошибку как ошибку локального хранилища
func localErr(op string, err error) error {
	if errors.Is(err, storage.ErrLocalStore) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", storage.ErrLocalStore, op, err)
}

// recordSet записи по типу и ID
type recordSet map[models.RecordType]map[string]*models.Record

func (s recordSet) add(t models.RecordType, records ...*models.Record) {
	if len(records) == 0 {
		return
	}
	if s[t] == nil {
		s[t] = make(map[string]*models.Record, len(records))
	}
	for _, r := range records {
		s[t][r.ID] = r
	}
}

func (s recordSet) get(t models.RecordType, id string) *models.Record {
	if s == nil {
		return nil
	}
	return s[t][id]
}
