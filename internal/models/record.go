package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordType тип синхронизируемой записи
type RecordType string

const (
	RecordTypeNote        RecordType = "notes"         // заметки
	RecordTypeCategory    RecordType = "categories"    // категории
	RecordTypeAiAssistant RecordType = "ai_assistants" // AI ассистенты
)

// AllRecordTypes перечисляет все синхронизируемые типы в фиксированном порядке.
// Порядок важен: категории и ассистенты обрабатываются после заметок,
// результаты синхронизации всегда выводятся в этом порядке.
var AllRecordTypes = []RecordType{
	RecordTypeNote,
	RecordTypeCategory,
	RecordTypeAiAssistant,
}

// Valid проверяет, что тип записи известен
func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeNote, RecordTypeCategory, RecordTypeAiAssistant:
		return true
	}
	return false
}

// ParseRecordType разбирает строковое представление типа записи.
// Принимает как каноничные имена ("notes"), так и единственное число ("note").
func ParseRecordType(s string) (RecordType, error) {
	switch s {
	case "notes", "note":
		return RecordTypeNote, nil
	case "categories", "category":
		return RecordTypeCategory, nil
	case "ai_assistants", "ai_assistant", "assistants", "assistant":
		return RecordTypeAiAssistant, nil
	}
	return "", fmt.Errorf("unknown record type %q", s)
}

// Record представляет синхронизируемую запись любого типа (Note, Category, AiAssistant)
// в локальном offline-хранилище.
type Record struct {
	UpdatedAt     time.Time       `json:"updated_at"`               // UpdatedAt время последнего локального изменения
	Conflict      *Conflict       `json:"conflict,omitempty"`       // Conflict расхождение с сервером, ожидающее разрешения
	ID            string          `json:"id"`                       // ID уникальный идентификатор записи (UUID)
	Type          RecordType      `json:"type"`                     // Type тип записи
	ContentHash   string          `json:"content_hash"`             // ContentHash BLAKE2b-256 от Data (hex)
	SyncError     string          `json:"sync_error,omitempty"`     // SyncError последняя ошибка отправки на сервер
	Data          json.RawMessage `json:"data,omitempty"`           // Data JSON сериализованный Note/Category/AiAssistant
	ServerVersion int64           `json:"server_version,omitempty"` // ServerVersion последняя известная ревизия на сервере (0 = ещё не синхронизирована)
	PendingSync   bool            `json:"pending_sync"`             // PendingSync изменена локально, но сервер ещё не подтвердил
	Deleted       bool            `json:"deleted"`                  // Deleted tombstone (soft delete)
}

// Snapshot возвращает снимок содержимого записи
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Data:        cloneRaw(r.Data),
		ContentHash: r.ContentHash,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.ServerVersion,
		Deleted:     r.Deleted,
	}
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	c := *r
	c.Data = cloneRaw(r.Data)
	if r.Conflict != nil {
		conflict := r.Conflict.Clone()
		c.Conflict = conflict
	}
	return &c
}

// HasConflict сообщает, есть ли у записи неразрешённый конфликт
func (r *Record) HasConflict() bool {
	return r.Conflict != nil
}

// PushAck подтверждение сервера о принятой записи.
// UpdatedAt - значение, захваченное в момент формирования батча:
// флаг pending снимается только если запись с тех пор не менялась.
type PushAck struct {
	UpdatedAt     time.Time
	ID            string
	ServerVersion int64
}

// PushFailure ошибка сервера для конкретной записи батча
type PushFailure struct {
	UpdatedAt time.Time
	ID        string
	Message   string
}

func cloneRaw(data json.RawMessage) json.RawMessage {
	if data == nil {
		return nil
	}
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out
}
