package domain

import "context"

// ChatInfo информация о чате, возвращаемая Telegram Bot API.
type ChatInfo struct {
	ID    string
	Title string
}

// TelegramGateway интерфейс для исходящих вызовов Telegram Bot API.
type TelegramGateway interface {
	// SendMessage отправляет текстовое сообщение в чат или канал.
	// chatID может быть числовым id или @username
	SendMessage(ctx context.Context, chatID, text string, markdown bool) error
	// GetChat получает информацию о чате по id или @username
	GetChat(ctx context.Context, chatID string) (*ChatInfo, error)
}
