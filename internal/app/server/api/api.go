//POST /user/register            # Регистрация (публичный)
//POST /user/login               # Логин (публичный)
//POST /snippets                 # Создать сниппет (сессия)
//PUT  /snippet/{id}             # Обновить текст (сессия)
//DELETE /snippet/{id}           # Удалить сниппет (сессия)
//GET  /source/{id}/markdown     # Полный документ (сессия)
//DELETE /source/{id}            # Удалить источник (сессия)
//GET/POST /devices              # Устройства (сессия)
//DELETE /devices/{id}           # Удалить устройство (сессия)
//GET  /api/source/{id}/markdown # Экспорт для устройства (X-Api-Key)
//POST /api/source/{id}/sync     # Подтвердить синхронизацию (X-Api-Key)
//GET  /api/sources              # Источники со сниппетами (X-Api-Key)
//GET  /health                   # Проверка живости (публичный)

package api

import (
	deviceAPI "snipmark/internal/app/server/api/http/device"
	healthAPI "snipmark/internal/app/server/api/http/health"
	"snipmark/internal/app/server/api/http/middleware"
	"snipmark/internal/app/server/api/http/middleware/auth"
	"snipmark/internal/app/server/api/http/middleware/devicekey"
	"snipmark/internal/app/server/api/http/middleware/logger"
	snippetAPI "snipmark/internal/app/server/api/http/snippet"
	sourceAPI "snipmark/internal/app/server/api/http/source"
	syncAPI "snipmark/internal/app/server/api/http/sync"
	userAPI "snipmark/internal/app/server/api/http/user"
	"snipmark/internal/domain/device"
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/session"
	"snipmark/internal/domain/snippet"
	"snipmark/internal/domain/source"
	"snipmark/internal/domain/sync"
	"snipmark/internal/domain/user"
	"snipmark/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Device  *deviceAPI.Handler
	Snippet *snippetAPI.Handler
	Source  *sourceAPI.Handler
	Sync    *syncAPI.Handler
}

// New создает *chi.Mux со ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Snipmark API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
		"apiKey": {Type: "apiKey", In: "header", Name: devicekey.HeaderName},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Device.SetupRoutes(API)
	h.Snippet.SetupRoutes(API)
	h.Source.SetupRoutes(API)
	h.Sync.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)

	deviceRepo := postgres.NewDeviceRepository(storage, log)
	deviceService := device.NewService(deviceRepo, log)

	authMW := auth.New(sessionService, log)
	keyMW := devicekey.New(deviceService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	deviceHandler := deviceAPI.NewHandler(deviceService, log, middlewares.GetAllAndClear())

	snippetRepo := postgres.NewSnippetRepository(storage, log)
	sourceRepo := postgres.NewSourceRepository(storage, log)
	sourceService := source.NewService(sourceRepo, snippetRepo, log)
	snippetService := snippet.NewService(snippetRepo, sourceService, log)

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	snippetHandler := snippetAPI.NewHandler(snippetService, log, middlewares.GetAllAndClear())

	syncRepo := postgres.NewSyncRepository(storage, log)
	tracker := sync.NewService(syncRepo, log)
	exportService := export.NewService(sourceService, snippetService, tracker, log)

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	sourceHandler := sourceAPI.NewHandler(sourceService, exportService, log, middlewares.GetAllAndClear())

	middlewares.Add(keyMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	syncHandler := syncAPI.NewHandler(exportService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Device:  deviceHandler,
		Snippet: snippetHandler,
		Source:  sourceHandler,
		Sync:    syncHandler,
	}
}
