package handlers

type NotifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyResponse struct {
	Success     bool   `json:"success"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}

type VerifyErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
