package api

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteUnavailable сервер недоступен: сетевая ошибка, 5xx или нечитаемый ответ
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrUnauthorized токен отсутствует, истёк или отклонён сервером
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnknownConflict конфликт не найден на сервере или уже разрешён
	ErrUnknownConflict = errors.New("unknown conflict")
)

// APIError ответ сервера 4xx, не имеющий отдельной sentinel ошибки
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}
