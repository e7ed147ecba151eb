package models

import "time"

// TypeResult результат синхронизации для одного типа записей
type TypeResult struct {
	Conflicts []*Conflict // обнаруженные конфликты этого типа
	Pushed    int         // количество записей, принятых сервером
	Pulled    int         // количество записей, полученных с сервера
}

// SyncResult результат одного полного цикла синхронизации.
// Создается заново на каждый цикл и нигде не сохраняется.
type SyncResult struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Notes        TypeResult
	Categories   TypeResult
	AiAssistants TypeResult
}

// For возвращает результат для указанного типа
func (r *SyncResult) For(t RecordType) *TypeResult {
	switch t {
	case RecordTypeNote:
		return &r.Notes
	case RecordTypeCategory:
		return &r.Categories
	case RecordTypeAiAssistant:
		return &r.AiAssistants
	}
	return nil
}

// AllConflicts возвращает конфликты всех типов одним списком
func (r *SyncResult) AllConflicts() []*Conflict {
	var out []*Conflict
	for _, t := range AllRecordTypes {
		out = append(out, r.For(t).Conflicts...)
	}
	return out
}

// TotalPushed суммарное количество отправленных записей
func (r *SyncResult) TotalPushed() int {
	return r.Notes.Pushed + r.Categories.Pushed + r.AiAssistants.Pushed
}

// TotalPulled суммарное количество полученных записей
func (r *SyncResult) TotalPulled() int {
	return r.Notes.Pulled + r.Categories.Pulled + r.AiAssistants.Pulled
}

// PushCounts счётчики отправки для одного типа
type PushCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}

// PushResult результат шага push для всех типов
type PushResult struct {
	Notes        PushCounts `json:"notes"`
	Categories   PushCounts `json:"categories"`
	AiAssistants PushCounts `json:"ai_assistants"`
}

// For возвращает счётчики для указанного типа
func (r *PushResult) For(t RecordType) *PushCounts {
	switch t {
	case RecordTypeNote:
		return &r.Notes
	case RecordTypeCategory:
		return &r.Categories
	case RecordTypeAiAssistant:
		return &r.AiAssistants
	}
	return nil
}
