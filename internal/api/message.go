package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
)

type MessageHandler struct {
	messages *service.MessageService
	media    storage.MediaStore
}

func NewMessageHandler(messages *service.MessageService, media storage.MediaStore) *MessageHandler {
	return &MessageHandler{messages: messages, media: media}
}

func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/send-message", h.SendMessage)
	router.GET("/messages/:userA/:userB", h.ListMessages)
	router.GET("/chat-list/:username", h.ChatList)
}

type sendMessageRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Sender == "" || req.Receiver == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sender, receiver and text required"})
		return
	}

	if _, err := h.messages.Send(c.Request.Context(), req.Sender, req.Receiver, req.Text); err != nil {
		log.Printf("send message failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent!"})
}

type messageResponse struct {
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	msgs, err := h.messages.Conversation(c.Request.Context(), c.Param("userA"), c.Param("userB"))
	if err != nil {
		log.Printf("conversation query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = messageResponse{
			Sender:   m.Sender,
			Receiver: m.Receiver,
			Text:     m.Body,
			Time:     m.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}

type chatCandidateResponse struct {
	Username   string  `json:"username"`
	ProfilePic *string `json:"profile_pic"`
}

func (h *MessageHandler) ChatList(c *gin.Context) {
	candidates, err := h.messages.ChatCandidates(c.Request.Context(), c.Param("username"))
	if err != nil {
		log.Printf("chat list query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]chatCandidateResponse, len(candidates))
	for i, cand := range candidates {
		out[i] = chatCandidateResponse{
			Username:   cand.Username,
			ProfilePic: nullableURL(c, h.media, cand.Avatar),
		}
	}

	c.JSON(http.StatusOK, out)
}
