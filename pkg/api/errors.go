package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Code    string `json:"code,omitempty"`    // машиночитаемый код ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// Коды ошибок API
const (
	CodeBadRequest        = "bad_request"
	CodeUnauthorized      = "unauthorized"
	CodeUnknownConflict   = "unknown_conflict"
	CodeMergeDataRequired = "merge_data_required"
	CodeTypeMismatch      = "type_mismatch"
	CodeRateLimited       = "rate_limited"
	CodeInternal          = "internal"
)

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Event уведомление, отправляемое сервером через websocket
type Event struct {
	Type   string   `json:"type"`
	Types  []string `json:"types,omitempty"`  // типы записей, которые изменились
	Origin string   `json:"origin,omitempty"` // device id клиента, внёсшего изменения
}

// EventChanges тип события: на сервере появились изменения
const EventChanges = "changes"
