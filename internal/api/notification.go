package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications/:username", h.List)
}

type notificationResponse struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifs, err := h.notifications.List(c.Request.Context(), c.Param("username"))
	if err != nil {
		log.Printf("notifications query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]notificationResponse, len(notifs))
	for i, n := range notifs {
		out[i] = notificationResponse{Message: n.Message, Time: n.CreatedAt}
	}

	c.JSON(http.StatusOK, out)
}
