package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// NoteFormat формат содержимого заметки
type NoteFormat string

const (
	NoteFormatMarkdown NoteFormat = "markdown"
	NoteFormatRichText NoteFormat = "richtext"
	NoteFormatMindMap  NoteFormat = "mindmap"
	NoteFormatDrawIO   NoteFormat = "drawio"
)

// Note представляет заметку пользователя.
// Содержимое хранится как есть: редакторы разных форматов на клиенте.
type Note struct {
	CreatedAt  time.Time  `json:"created_at"`                                                        // CreatedAt время создания
	UpdatedAt  time.Time  `json:"updated_at"`                                                        // UpdatedAt время последнего изменения
	ID         string     `json:"id"`                                                                // ID уникальный идентификатор (UUID)
	Title      string     `json:"title" validate:"required,max=512"`                                 // Title заголовок
	Content    string     `json:"content"`                                                           // Content содержимое в формате Format
	Format     NoteFormat `json:"format" validate:"required,oneof=markdown richtext mindmap drawio"` // Format формат содержимого
	CategoryID string     `json:"category_id,omitempty"`                                             // CategoryID категория заметки (опционально)
	Tags       []string   `json:"tags,omitempty" validate:"max=64,dive,required,max=64"`             // Tags теги
}

// Category представляет категорию заметок
type Category struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=128"`
	Color     string    `json:"color,omitempty" validate:"omitempty,hexcolor"` // Color цвет в формате #RRGGBB
	ParentID  string    `json:"parent_id,omitempty"`                           // ParentID родительская категория
}

// AiAssistant представляет настройки AI ассистента (внешний LLM endpoint)
type AiAssistant struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,max=128"`
	Model        string    `json:"model" validate:"required"`
	Endpoint     string    `json:"endpoint" validate:"required,url"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	Temperature  float64   `json:"temperature" validate:"gte=0,lte=2"`
}

// Payload ограничивает типы, которые можно хранить в Record.Data
type Payload interface {
	Note | Category | AiAssistant
}

// RecordTypeOf возвращает тип записи для типизированного payload
func RecordTypeOf[T Payload]() RecordType {
	var zero T
	switch any(zero).(type) {
	case Note:
		return RecordTypeNote
	case Category:
		return RecordTypeCategory
	default:
		return RecordTypeAiAssistant
	}
}

// NewRecord упаковывает payload в Record, вычисляя content hash.
// Флаги синхронизации (PendingSync, ServerVersion) не выставляются.
func NewRecord[T Payload](id string, payload *T, updatedAt time.Time) (*Record, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", RecordTypeOf[T](), err)
	}

	return &Record{
		ID:          id,
		Type:        RecordTypeOf[T](),
		Data:        data,
		ContentHash: HashData(data),
		UpdatedAt:   updatedAt,
	}, nil
}

// DecodePayload распаковывает Record.Data в типизированный payload
func DecodePayload[T Payload](r *Record) (*T, error) {
	if r.Type != RecordTypeOf[T]() {
		return nil, fmt.Errorf("record %s has type %s, expected %s", r.ID, r.Type, RecordTypeOf[T]())
	}

	var out T
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", r.Type, err)
	}
	return &out, nil
}
