package domain

// NoteNotification представляет уведомление о созданной заметке.
type NoteNotification struct {
	Title     string
	Content   string
	ChannelID string
}

// ChannelInfo результат проверки канала: числовой идентификатор
// (в строковом виде, чтобы не терять точность) и отображаемое имя.
type ChannelInfo struct {
	ID   string
	Name string
}
