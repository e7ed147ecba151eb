package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

// DeviceHeader заголовок с идентификатором устройства клиента.
// Сервер передаёт его в websocket событиях, чтобы клиент мог игнорировать свои изменения.
const DeviceHeader = "X-Device-ID"

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	deviceID   string
}

// NewClient создает новый API клиент
func NewClient(baseURL, token, deviceID string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthHeader возвращает заголовки авторизации для сторонних соединений (websocket)
func (c *Client) AuthHeader() http.Header {
	h := http.Header{}
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
	if c.deviceID != "" {
		h.Set(DeviceHeader, c.deviceID)
	}
	return h
}

// Pull получает изменения на сервере начиная с since.
// Нулевое since означает полную выгрузку.
func (c *Client) Pull(ctx context.Context, since time.Time, types []models.RecordType) (*api.PullResponse, error) {
	query := url.Values{}
	if !since.IsZero() {
		query.Set("since", since.UTC().Format(time.RFC3339Nano))
	}
	if len(types) > 0 {
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, string(t))
		}
		query.Set("types", strings.Join(names, ","))
	}

	path := "/api/v1/sync/pull"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет локальные изменения на сервер
func (c *Client) Push(ctx context.Context, req *api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/push", req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// ResolveConflict разрешает конфликт на сервере
func (c *Client) ResolveConflict(ctx context.Context, conflictID string, req *api.ResolveConflictRequest) (*api.ResolveConflictResponse, error) {
	var resp api.ResolveConflictResponse
	path := fmt.Sprintf("/api/v1/sync/conflicts/%s/resolve", url.PathEscape(conflictID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("resolve conflict request failed: %w", err)
	}
	return &resp, nil
}

// ListConflicts возвращает открытые конфликты пользователя на сервере
func (c *Client) ListConflicts(ctx context.Context) ([]api.ConflictListItem, error) {
	var resp []api.ConflictListItem
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/conflicts", nil, &resp); err != nil {
		return nil, fmt.Errorf("list conflicts request failed: %w", err)
	}
	return resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.AuthHeader() {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrRemoteUnavailable, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			// 2xx с чужим телом (например, страница прокси) - API недоступен
			return fmt.Errorf("%w: failed to decode response: %w", ErrRemoteUnavailable, err)
		}
	}

	return nil
}

// statusError переводит неуспешный ответ сервера в ошибку клиента
func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		errResp.Message = strings.TrimSpace(string(body))
	}
	message := errResp.Message
	if message == "" {
		message = errResp.Error
	}

	switch {
	case status >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrRemoteUnavailable, status, message)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status == http.StatusNotFound && errResp.Code == api.CodeUnknownConflict:
		return fmt.Errorf("%w: %s", ErrUnknownConflict, message)
	}

	return &APIError{Status: status, Code: errResp.Code, Message: message}
}
