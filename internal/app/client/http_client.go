package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"snipmark/internal/app/client/config"
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/sync"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	deviceKey string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Snipmark-Client/1.0",
	}, nil
}

// SetToken устанавливает сессионный токен для веб-маршрутов
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// SetDeviceKey устанавливает ключ устройства для API экспорта
func (h *httpClient) SetDeviceKey(key string) {
	h.deviceKey = key
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// Register создает пользователя и возвращает сессионный токен
func (h *httpClient) Register(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := h.parseResponse(resp, &tr); err != nil {
		return "", err
	}
	return tr.Token, nil
}

// Login аутентифицирует пользователя и возвращает сессионный токен
func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := h.parseResponse(resp, &tr); err != nil {
		return "", err
	}
	return tr.Token, nil
}

type deviceResponse struct {
	ID   int    `json:"id"`
	Name string `json:"device_name"`
	Key  string `json:"device_key"`
}

// RegisterDevice регистрирует устройство и возвращает его ключ.
// Требует установленный сессионный токен.
func (h *httpClient) RegisterDevice(ctx context.Context, name string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/devices", map[string]string{"device_name": name})
	if err != nil {
		return "", err
	}

	var dr deviceResponse
	if err := h.parseResponse(resp, &dr); err != nil {
		return "", err
	}
	return dr.Key, nil
}

// Sources возвращает источники пользователя со вложенными сниппетами
func (h *httpClient) Sources(ctx context.Context) ([]export.SourceExport, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/sources", nil)
	if err != nil {
		return nil, err
	}

	var sources []export.SourceExport
	if err := h.parseResponse(resp, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// Markdown выгружает документ источника. latest=true отдает только сниппеты
// новее отметки синхронизации.
func (h *httpClient) Markdown(ctx context.Context, sourceID int, latest bool, exclude string) (string, error) {
	path := "/api/source/" + strconv.Itoa(sourceID) + "/markdown"

	q := url.Values{}
	if latest {
		q.Set("latest", "true")
	}
	if exclude != "" {
		q.Set("exclude", exclude)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", h.errorFromStatus(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	return string(body), nil
}

// AcknowledgeSync подтверждает успешную синхронизацию источника
func (h *httpClient) AcknowledgeSync(ctx context.Context, sourceID int) (sync.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/source/"+strconv.Itoa(sourceID)+"/sync", nil)
	if err != nil {
		return sync.Record{}, err
	}

	var rec sync.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return sync.Record{}, err
	}
	return rec, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	if h.deviceKey != "" {
		req.Header.Set("X-Api-Key", h.deviceKey)
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return h.errorFromStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}

func (h *httpClient) errorFromStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	var apiErr struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Detail != "" {
			return fmt.Errorf("сервер вернул %d: %s", resp.StatusCode, apiErr.Detail)
		}
		if apiErr.Error != "" {
			return fmt.Errorf("сервер вернул %d: %s", resp.StatusCode, apiErr.Error)
		}
	}
	return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
}
