package config

import (
	"errors"
	"log"

	"github.com/wb-go/wbf/config"
)

// Config основная конфигурация приложения.
type Config struct {
	// HTTP сервер
	HTTP HTTPConfig `config:"http"`

	// Telegram бот
	Telegram TelegramConfig `config:"telegram"`

	// Страница шаринга заметок
	Share ShareConfig `config:"share"`

	// Логирование
	Logging LoggingConfig `config:"logging"`
}

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host string `config:"host" default:"localhost"`
	Port string `config:"port" default:"3000"`
}

// TelegramConfig конфигурация Telegram бота.
type TelegramConfig struct {
	// BotToken токен бота; значения по умолчанию нет, без него
	// приложение не запускается
	BotToken string `config:"bot_token"`
}

// ShareConfig конфигурация страницы шаринга.
type ShareConfig struct {
	AppScheme string `config:"app_scheme" default:"flutter-note-app"`
	StoreURL  string `config:"store_url"`
}

// LoggingConfig конфигурация логирования.
type LoggingConfig struct {
	Level string `config:"level" default:"info"`
}

// ErrMissingBotToken ошибка отсутствующего токена бота.
var ErrMissingBotToken = errors.New("telegram bot token is not set")

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	wbfCfg := config.New()
	if err := wbfCfg.LoadEnvFiles(".env"); err != nil {
		log.Printf("failed to load env vars: %v", err)
	}
	// Включаем переменные окружения с префиксом
	wbfCfg.EnableEnv("NOTE_NOTIFIER")

	// Устанавливаем значения по умолчанию
	wbfCfg.SetDefault("http.host", "localhost")
	wbfCfg.SetDefault("http.port", "3000")
	wbfCfg.SetDefault("share.app_scheme", "flutter-note-app")
	wbfCfg.SetDefault("share.store_url", "https://play.google.com/store/apps/details?id=com.example.note_app")
	wbfCfg.SetDefault("logging.level", "info")

	// Парсим флаги
	if err := wbfCfg.ParseFlags(); err != nil {
		return nil, err
	}

	// Создаем структуру конфигурации и загружаем данные
	appConfig := &Config{}
	if err := wbfCfg.Unmarshal(appConfig); err != nil {
		return nil, err
	}

	// Токен бота обязателен, дефолтного значения быть не должно
	if appConfig.Telegram.BotToken == "" {
		return nil, ErrMissingBotToken
	}

	return appConfig, nil
}

// GetConnectionString формирует строку подключения для HTTP.
func (c *HTTPConfig) GetConnectionString() string {
	return c.Host + ":" + c.Port
}
