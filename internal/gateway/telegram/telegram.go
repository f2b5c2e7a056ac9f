package telegram

import (
	"context"
	"fmt"
	"strconv"

	"NoteNotifier/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Gateway реализация domain.TelegramGateway поверх Telegram Bot API.
type Gateway struct {
	bot *tgbotapi.BotAPI
}

// NewGateway создает новый экземпляр Gateway с указанным токеном бота.
func NewGateway(token string) (*Gateway, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Gateway{bot: bot}, nil
}

// SendMessage отправляет сообщение в чат. chatID может быть числовым
// id или @username. Без повторных попыток: ошибка сразу возвращается
// вызывающему вместе с описанием от Telegram.
func (g *Gateway) SendMessage(ctx context.Context, chatID, text string, markdown bool) error {
	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(chatID, text)
	}
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := g.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// GetChat получает информацию о чате по id или @username.
func (g *Gateway) GetChat(ctx context.Context, chatID string) (*domain.ChatInfo, error) {
	var cfg tgbotapi.ChatInfoConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		cfg.ChatConfig = tgbotapi.ChatConfig{ChatID: id}
	} else {
		cfg.ChatConfig = tgbotapi.ChatConfig{SuperGroupUsername: chatID}
	}

	chat, err := g.bot.GetChat(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	return &domain.ChatInfo{
		ID:    strconv.FormatInt(chat.ID, 10),
		Title: chat.Title,
	}, nil
}
