package api

import (
	"encoding/json"
	"time"
)

// SyncRecord представляет одну запись в запросах синхронизации.
// В push Version - базовая серверная ревизия, от которой клиент делал изменения
// (0 для новых записей). В pull и ответах - текущая ревизия на сервере.
type SyncRecord struct {
	UpdatedAt   time.Time       `json:"updated_at" validate:"required"`
	ID          string          `json:"id" validate:"required,max=128"`
	Type        string          `json:"type" validate:"required,oneof=notes categories ai_assistants"`
	ContentHash string          `json:"content_hash" validate:"required,hexadecimal,len=64"`
	Data        json.RawMessage `json:"data,omitempty"`
	Version     int64           `json:"version" validate:"gte=0"`
	Deleted     bool            `json:"deleted"`
}

// PullResponse изменения на сервере начиная с since
type PullResponse struct {
	ServerTime   time.Time    `json:"server_time"`
	Notes        []SyncRecord `json:"notes"`
	Categories   []SyncRecord `json:"categories"`
	AiAssistants []SyncRecord `json:"ai_assistants"`
}

// PushRequest локальные изменения, ожидающие подтверждения сервера
type PushRequest struct {
	Notes        []SyncRecord `json:"notes"`
	Categories   []SyncRecord `json:"categories"`
	AiAssistants []SyncRecord `json:"ai_assistants"`
}

// Empty сообщает, что в запросе нет ни одной записи
func (r *PushRequest) Empty() bool {
	return len(r.Notes) == 0 && len(r.Categories) == 0 && len(r.AiAssistants) == 0
}

// AppliedRecord запись, принятая сервером, и её новая ревизия
type AppliedRecord struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// RecordError ошибка обработки конкретной записи
type RecordError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ConflictInfo конфликт, зарегистрированный сервером при push:
// базовая ревизия клиента устарела
type ConflictInfo struct {
	ID       string     `json:"id"`
	RecordID string     `json:"record_id"`
	Server   SyncRecord `json:"server"`
}

// PushTypeResult результат push для одного типа записей
type PushTypeResult struct {
	Applied   []AppliedRecord `json:"applied,omitempty"`
	Failed    []RecordError   `json:"failed,omitempty"`
	Conflicts []ConflictInfo  `json:"conflicts,omitempty"`
	Created   int             `json:"created"`
	Updated   int             `json:"updated"`
	Errors    int             `json:"errors"`
}

// PushResponse ответ сервера на push
type PushResponse struct {
	Notes        PushTypeResult `json:"notes"`
	Categories   PushTypeResult `json:"categories"`
	AiAssistants PushTypeResult `json:"ai_assistants"`
}

// ResolveConflictRequest запрос на разрешение конфликта.
// Type опционален: если указан, сервер проверяет, что он совпадает с типом конфликта.
type ResolveConflictRequest struct {
	Type       string          `json:"type,omitempty" validate:"omitempty,oneof=notes categories ai_assistants"`
	Resolution string          `json:"resolution" validate:"required,oneof=local server merge"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// ResolveConflictResponse итоговая запись после разрешения конфликта
type ResolveConflictResponse struct {
	Record SyncRecord `json:"record"`
}

// ConflictListItem конфликт в списке открытых конфликтов пользователя
type ConflictListItem struct {
	CreatedAt time.Time  `json:"created_at"`
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	RecordID  string     `json:"record_id"`
	Local     SyncRecord `json:"local"`
	Server    SyncRecord `json:"server"`
}
