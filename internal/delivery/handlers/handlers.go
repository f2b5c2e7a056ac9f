package handlers

import (
	"net/http"

	"NoteNotifier/internal/config"
	"NoteNotifier/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service domain.NotifierService
	share   config.ShareConfig
}

func NewHandlersSet(service domain.NotifierService, share config.ShareConfig) *Handler {
	return &Handler{
		service: service,
		share:   share,
	}
}

type NotifyRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	ChannelID string `json:"channel_id" validate:"required"`
}

type VerifyRequest struct {
	ChannelUsername string `json:"channel_username" validate:"required"`
}

var validate = validator.New()

// NotifyHandler принимает уведомление о заметке и пересылает его в Telegram.
// Валидация выполняется до любого внешнего вызова.
func (h *Handler) NotifyHandler(c *gin.Context) {
	var req NotifyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and channel_id are required"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and channel_id are required"})
		return
	}

	err := h.service.Notify(c.Request.Context(), domain.NoteNotification{
		Title:     req.Title,
		Content:   req.Content,
		ChannelID: req.ChannelID,
	})
	if err != nil {
		// Причина уже записана в лог, клиенту возвращается общее сообщение
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, NotifyResponse{
		Success: true,
		Message: "Notification sent",
	})
}

// VerifyChannelHandler проверяет, что канал доступен боту.
func (h *Handler) VerifyChannelHandler(c *gin.Context) {
	var req VerifyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel username required"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel username required"})
		return
	}

	info, err := h.service.VerifyChannel(c.Request.Context(), req.ChannelUsername)
	if err != nil {
		c.JSON(http.StatusBadRequest, VerifyErrorResponse{
			Success: false,
			Error:   "Bot is not admin or channel not accessible",
		})
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{
		Success:     true,
		ChannelID:   info.ID,
		ChannelName: info.Name,
	})
}

// HealthHandler возвращает состояние сервиса.
func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
