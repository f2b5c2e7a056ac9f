package domain

import "errors"

var (
	// ErrEmptyTitle ошибка пустого заголовка заметки.
	ErrEmptyTitle = errors.New("title is empty")
	// ErrEmptyContent ошибка пустого содержимого заметки.
	ErrEmptyContent = errors.New("content is empty")
	// ErrEmptyChannelID ошибка пустого идентификатора канала.
	ErrEmptyChannelID = errors.New("channel id is empty")
	// ErrEmptyUsername ошибка пустого имени канала.
	ErrEmptyUsername = errors.New("channel username is empty")
	// ErrChannelNotAccessible ошибка недоступного для бота канала.
	ErrChannelNotAccessible = errors.New("channel not accessible")
)
