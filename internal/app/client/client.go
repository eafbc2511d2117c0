package client

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"snipmark/internal/app/client/config"
)

// App — клиентское приложение: тонкая обвязка над HTTP клиентом и локальным
// кэшем документов.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации локального хранилища: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
	}

	// Сохраненные токен и ключ подхватываются автоматически
	if token, err := app.loadSecret(cfg.TokenPath); err == nil {
		httpCl.SetToken(token)
	}
	if key, err := app.loadSecret(cfg.DeviceKeyPath); err == nil {
		httpCl.SetDeviceKey(key)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// Register регистрирует пользователя и сохраняет выданный токен
func (a *App) Register(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Register(ctx, email, password)
	if err != nil {
		return err
	}
	a.httpClient.SetToken(token)
	return a.saveSecret(a.config.TokenPath, token)
}

// Login выполняет вход и сохраняет сессионный токен
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.httpClient.SetToken(token)
	return a.saveSecret(a.config.TokenPath, token)
}

// RegisterDevice заводит устройство на сервере и сохраняет его ключ.
// Ключ сервер показывает только один раз, поэтому потеря файла означает
// перерегистрацию устройства.
func (a *App) RegisterDevice(ctx context.Context, name string) (string, error) {
	key, err := a.httpClient.RegisterDevice(ctx, name)
	if err != nil {
		return "", err
	}

	a.httpClient.SetDeviceKey(key)
	if err := a.saveSecret(a.config.DeviceKeyPath, key); err != nil {
		return "", fmt.Errorf("ключ получен, но не сохранен: %w", err)
	}
	return key, nil
}

// HasDeviceKey сообщает, настроен ли ключ устройства
func (a *App) HasDeviceKey() bool {
	return a.httpClient.deviceKey != ""
}

// PullResult — итог выгрузки
type PullResult struct {
	Pulled  []Document
	Skipped int
	Errors  []error
}

// Pull выгружает markdown всех источников пользователя в локальный кэш.
// При latest=true берется только хвост новее отметки синхронизации: заголовок
// исключается, хвост дописывается к закэшированному документу, и после
// успешного сохранения выгрузка подтверждается — отметка двигается только
// когда документ уже лежит на диске.
func (a *App) Pull(ctx context.Context, latest bool, exclude string) (*PullResult, error) {
	sources, err := a.httpClient.Sources(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка источников: %w", err)
	}

	if latest {
		exclude = strings.Trim(exclude+",title,thumbnail", ",")
	}

	result := &PullResult{}
	for _, src := range sources {
		doc, err := a.httpClient.Markdown(ctx, src.ID, latest, exclude)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("источник %d: %w", src.ID, err))
			continue
		}

		if latest && doc == "" {
			// пустое окно: ни одного нового сниппета
			result.Skipped++
			continue
		}

		saved := Document{
			SourceID: src.ID,
			URL:      src.URL,
			Title:    src.Title,
			Markdown: doc,
			PulledAt: time.Now(),
		}
		if err := a.storage.SaveDocument(saved, latest); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("источник %d: %w", src.ID, err))
			continue
		}

		if _, err := a.httpClient.AcknowledgeSync(ctx, src.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("подтверждение %d: %w", src.ID, err))
			continue
		}

		result.Pulled = append(result.Pulled, saved)
	}

	return result, nil
}

// ListCached возвращает документы из локального кэша
func (a *App) ListCached() ([]Document, error) {
	return a.storage.ListDocuments()
}

// GetCached возвращает документ источника из локального кэша
func (a *App) GetCached(sourceID int) (Document, error) {
	return a.storage.GetDocument(sourceID)
}

func (a *App) saveSecret(path, value string) error {
	return os.WriteFile(path, []byte(value), 0600)
}

func (a *App) loadSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
