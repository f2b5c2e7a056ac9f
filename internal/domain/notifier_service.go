package domain

import "context"

// NotifierService интерфейс для работы с уведомлениями о заметках.
type NotifierService interface {
	// Notify форматирует уведомление и отправляет его в канал
	Notify(ctx context.Context, n NoteNotification) error
	// VerifyChannel проверяет, что канал доступен боту, и возвращает
	// его идентификацию
	VerifyChannel(ctx context.Context, username string) (*ChannelInfo, error)
}
