package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
)

type PostHandler struct {
	posts *service.PostService
	media storage.MediaStore
}

func NewPostHandler(posts *service.PostService, media storage.MediaStore) *PostHandler {
	return &PostHandler{posts: posts, media: media}
}

func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup, limited gin.HandlerFunc) {
	router.GET("/posts", h.ListPosts)
	router.GET("/reels", h.ListReels)

	upload := router.Group("")
	if limited != nil {
		upload.Use(limited)
	}
	upload.POST("/upload", h.Upload)
}

func (h *PostHandler) Upload(c *gin.Context) {
	username := c.PostForm("username")
	caption := c.PostForm("caption")
	fileHeader, err := c.FormFile("file")
	if err != nil || username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := h.posts.Create(c.Request.Context(), username, caption, fileHeader.Filename, f, fileHeader.Size, contentType); err != nil {
		log.Printf("upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Posted!"})
}

type feedPost struct {
	Username string    `json:"username"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	Avatar   *string   `json:"avatar"`
	Time     time.Time `json:"time"`
	IsVideo  bool      `json:"is_video"`
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	h.list(c, false)
}

func (h *PostHandler) ListReels(c *gin.Context) {
	h.list(c, true)
}

func (h *PostHandler) list(c *gin.Context, videosOnly bool) {
	items, err := h.posts.Feed(c.Request.Context(), videosOnly)
	if err != nil {
		log.Printf("feed query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]feedPost, len(items))
	for i, item := range items {
		out[i] = feedPost{
			Username: item.Post.Username,
			URL:      fileURL(c, h.media, item.Post.Filename),
			Caption:  item.Post.Caption,
			Avatar:   nullableURL(c, h.media, item.Avatar),
			Time:     item.Post.CreatedAt,
			IsVideo:  item.Post.IsVideo,
		}
	}

	c.JSON(http.StatusOK, out)
}
