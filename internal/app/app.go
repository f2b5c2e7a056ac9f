package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cfgman "NoteNotifier/internal/config"
	"NoteNotifier/internal/delivery/handlers"
	"NoteNotifier/internal/delivery/middleware"
	"NoteNotifier/internal/gateway/telegram"
	"NoteNotifier/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

// Application основная структура приложения.
type Application struct {
	config  *cfgman.Config
	server  *ginext.Engine
	gateway *telegram.Gateway
	service *service.NotifierService
}

// New создает новое приложение.
func New() (*Application, error) {
	// Загружаем конфигурацию
	cfg, err := cfgman.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	if err := initLogger(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	app := &Application{
		config: cfg,
	}

	return app, nil
}

// Run запускает HTTP сервер и ждет сигнала завершения.
func (a *Application) Run() error {
	zlog.Logger.Info().Msg("Starting NoteNotifier server...")

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.initServices(); err != nil {
		return fmt.Errorf("failed to init services: %w", err)
	}
	if err := a.setupHTTPServer(); err != nil {
		return fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	zlog.Logger.Info().Str("address", a.config.HTTP.GetConnectionString()).Msg("HTTP server starting")
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Run(a.config.HTTP.GetConnectionString())
	}()
	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		zlog.Logger.Info().Msg("Received shutdown signal")
		return nil
	}
}

// initLogger инициализирует логгер.
func initLogger(level string) error {
	zlog.Init()

	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	return zlog.SetLevel(zerologLevel.String())
}

// initServices инициализирует шлюз Telegram и сервис уведомлений.
func (a *Application) initServices() error {
	gw, err := telegram.NewGateway(a.config.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("failed to init telegram gateway: %w", err)
	}
	a.gateway = gw
	a.service = service.NewNotifierService(gw)

	zlog.Logger.Info().Msg("Telegram gateway initialized")
	return nil
}

// setupHTTPServer настраивает HTTP сервер.
func (a *Application) setupHTTPServer() error {
	a.server = ginext.New(gin.ReleaseMode)
	a.server.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	a.server.Use(middleware.RequestIDMiddleware())
	a.server.Use(middleware.LoggingMiddleware())

	h := handlers.NewHandlersSet(a.service, a.config.Share)
	a.server.GET("/health", h.HealthHandler)
	a.server.POST("/notify", h.NotifyHandler)
	a.server.POST("/verify-telegram", h.VerifyChannelHandler)
	a.server.GET("/share/:noteId", h.ShareNoteHandler)

	return nil
}
