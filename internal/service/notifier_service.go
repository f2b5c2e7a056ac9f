package service

import (
	"context"
	"fmt"

	"NoteNotifier/internal/domain"
	"github.com/wb-go/wbf/zlog"
)

const (
	// Шаблон сообщения о новой заметке (Telegram Markdown).
	noteMessageTemplate = "📝 *New Note Created*\n\n*Title:* %s\n*Content:* %s"
	// Текст проверочного сообщения при подключении канала.
	confirmationText = "✅ Telegram connected successfully"
)

// NotifierService сервис отправки уведомлений о заметках через Telegram.
type NotifierService struct {
	gateway domain.TelegramGateway
}

// NewNotifierService создает новый экземпляр NotifierService.
func NewNotifierService(gateway domain.TelegramGateway) *NotifierService {
	return &NotifierService{gateway: gateway}
}

// Notify форматирует уведомление о заметке и отправляет его в канал.
func (s *NotifierService) Notify(ctx context.Context, n domain.NoteNotification) error {
	op := "Notify:"
	if n.Title == "" {
		return domain.ErrEmptyTitle
	}
	if n.Content == "" {
		return domain.ErrEmptyContent
	}
	if n.ChannelID == "" {
		return domain.ErrEmptyChannelID
	}

	zlog.Logger.Info().
		Str("title", n.Title).
		Str("channel_id", n.ChannelID).
		Msg("Received new note")

	text := fmt.Sprintf(noteMessageTemplate, n.Title, n.Content)
	if err := s.gateway.SendMessage(ctx, n.ChannelID, text, true); err != nil {
		zlog.Logger.Error().Msgf("%s failed to send notification: %v", op, err)
		return err
	}

	zlog.Logger.Info().Str("channel_id", n.ChannelID).Msg("Telegram notification sent")
	return nil
}

// VerifyChannel проверяет, что канал доступен боту, и возвращает его
// числовой идентификатор и имя. Проверочное сообщение отправляется по
// принципу best effort: его неудача не влияет на результат проверки.
func (s *NotifierService) VerifyChannel(ctx context.Context, username string) (*domain.ChannelInfo, error) {
	op := "VerifyChannel:"
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}

	chat, err := s.gateway.GetChat(ctx, username)
	if err != nil {
		zlog.Logger.Warn().Msgf("%s failed to get chat %s: %v", op, username, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrChannelNotAccessible, err)
	}

	name := chat.Title
	if name == "" {
		name = username
	}

	if err := s.gateway.SendMessage(ctx, chat.ID, confirmationText, false); err != nil {
		zlog.Logger.Warn().Msgf("%s confirmation message failed: %v", op, err)
	}

	return &domain.ChannelInfo{ID: chat.ID, Name: name}, nil
}
