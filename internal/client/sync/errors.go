package sync

import "errors"

var (
	// ErrSyncInProgress цикл синхронизации уже выполняется; вызов не ставится в очередь
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrCoordinatorDestroyed координатор остановлен через Destroy
	ErrCoordinatorDestroyed = errors.New("sync coordinator destroyed")

	// ErrMergeDataRequired для разрешения merge нужны слитые данные
	ErrMergeDataRequired = errors.New("merge resolution requires data")

	// ErrInvalidResolution неизвестный способ разрешения конфликта
	ErrInvalidResolution = errors.New("invalid conflict resolution")
)
