package models

import (
	"encoding/json"
	"time"
)

// Resolution способ разрешения конфликта
type Resolution string

const (
	ResolutionLocal  Resolution = "local"  // оставить локальную версию
	ResolutionServer Resolution = "server" // принять серверную версию
	ResolutionMerge  Resolution = "merge"  // применить слитые данные, переданные клиентом
)

// Valid проверяет способ разрешения
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionLocal, ResolutionServer, ResolutionMerge:
		return true
	}
	return false
}

// Snapshot снимок содержимого записи на одной из сторон
type Snapshot struct {
	UpdatedAt   time.Time       `json:"updated_at"`
	ContentHash string          `json:"content_hash"`
	Data        json.RawMessage `json:"data,omitempty"`
	Version     int64           `json:"version"`
	Deleted     bool            `json:"deleted"`
}

// Conflict запись, изменённая и локально, и на сервере в одном интервале синхронизации.
// ID выдаёт сервер; он используется для разрешения через API.
type Conflict struct {
	DetectedAt time.Time  `json:"detected_at"`
	ID         string     `json:"id"`
	Type       RecordType `json:"type"`
	RecordID   string     `json:"record_id"`
	Local      Snapshot   `json:"local"`
	Server     Snapshot   `json:"server"`
}

// Clone создает глубокую копию конфликта
func (c *Conflict) Clone() *Conflict {
	out := *c
	out.Local.Data = cloneRaw(c.Local.Data)
	out.Server.Data = cloneRaw(c.Server.Data)
	return &out
}
