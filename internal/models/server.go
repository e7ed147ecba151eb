package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Ошибки применения push на сервере (относятся к отдельной записи, а не ко всему запросу)
var (
	ErrTypeMismatch = errors.New("record type does not match stored record")
	ErrVersionAhead = errors.New("base version is ahead of server version")
)

// StoredRecord ревизия записи на сервере.
// Version монотонно растет при каждом принятом изменении,
// ChangedAt - серверное время изменения, по нему работает pull.
type StoredRecord struct {
	ChangedAt   time.Time       `json:"changed_at"`   // ChangedAt серверное время последнего изменения
	UpdatedAt   time.Time       `json:"updated_at"`   // UpdatedAt время изменения на клиенте
	UserID      string          `json:"user_id"`      // UserID владелец записи
	ID          string          `json:"id"`           // ID идентификатор записи (выдает клиент)
	Type        RecordType      `json:"type"`         // Type тип записи
	ContentHash string          `json:"content_hash"` // ContentHash BLAKE2b-256 от Data
	Data        json.RawMessage `json:"data"`         // Data JSON payload
	Version     int64           `json:"version"`      // Version серверная ревизия
	Deleted     bool            `json:"deleted"`      // Deleted tombstone
}

// Snapshot возвращает снимок серверной ревизии
func (r *StoredRecord) Snapshot() Snapshot {
	return Snapshot{
		Data:        cloneRaw(r.Data),
		ContentHash: r.ContentHash,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
		Deleted:     r.Deleted,
	}
}

// SameContent сообщает, что содержимое ревизий совпадает
func (r *StoredRecord) SameContent(other *StoredRecord) bool {
	return r.ContentHash == other.ContentHash && r.Deleted == other.Deleted
}

// PushOutcome результат применения одной записи из push
type PushOutcome int

const (
	OutcomeCreated   PushOutcome = iota + 1 // новая запись, версия 1
	OutcomeUpdated                          // базовая ревизия актуальна, версия +1
	OutcomeUnchanged                        // базовая ревизия устарела, но содержимое уже совпадает с серверным
	OutcomeConflict                         // базовая ревизия устарела, содержимое разошлось
)

// String возвращает название результата для логов
func (o PushOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeConflict:
		return "conflict"
	}
	return "unknown"
}

// DecidePush определяет, что делать с входящей записью.
// existing - текущая ревизия на сервере (nil, если записи нет),
// baseVersion - ревизия, от которой клиент делал изменения.
func DecidePush(existing, incoming *StoredRecord, baseVersion int64) (PushOutcome, error) {
	if existing == nil {
		return OutcomeCreated, nil
	}
	if existing.Type != incoming.Type {
		return 0, ErrTypeMismatch
	}

	switch {
	case baseVersion == existing.Version:
		return OutcomeUpdated, nil
	case baseVersion > existing.Version:
		return 0, ErrVersionAhead
	case existing.SameContent(incoming):
		// Повтор push после потерянного ответа
		return OutcomeUnchanged, nil
	default:
		return OutcomeConflict, nil
	}
}

// PushApplied итог применения записи: текущая серверная ревизия
// и, для OutcomeConflict, зарегистрированный конфликт
type PushApplied struct {
	Record   *StoredRecord
	Conflict *ServerConflict
	Outcome  PushOutcome
}

// ServerConflict конфликт, зарегистрированный сервером.
// На одну запись пользователя открыт не более чем один конфликт;
// повторный устаревший push обновляет снимки существующего.
type ServerConflict struct {
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	RecordID   string     `json:"record_id"`
	Type       RecordType `json:"type"`
	Resolution Resolution `json:"resolution,omitempty"`
	Local      Snapshot   `json:"local"`  // Local отклоненная версия клиента
	Server     Snapshot   `json:"server"` // Server ревизия сервера на момент обнаружения
}

// Resolved сообщает, разрешен ли конфликт
func (c *ServerConflict) Resolved() bool {
	return c.ResolvedAt != nil
}
