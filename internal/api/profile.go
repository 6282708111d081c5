package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	media    storage.MediaStore
}

func NewProfileHandler(profiles *service.ProfileService, media storage.MediaStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, media: media}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, limited gin.HandlerFunc) {
	router.POST("/create-profile", h.CreateProfile)
	router.GET("/profile/:username", h.GetProfile)

	upload := router.Group("")
	if limited != nil {
		upload.Use(limited)
	}
	upload.POST("/upload-profile-pic", h.UploadProfilePic)
}

type createProfileRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username required"})
		return
	}

	if err := h.profiles.CreateOrReplace(c.Request.Context(), req.Username, req.FullName, req.Bio, req.Location); err != nil {
		log.Printf("create-profile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved!"})
}

type profilePost struct {
	URL     string    `json:"url"`
	Caption string    `json:"caption"`
	Time    time.Time `json:"time"`
	IsVideo bool      `json:"is_video"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, posts, err := h.profiles.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		log.Printf("get profile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]profilePost, len(posts))
	for i, p := range posts {
		out[i] = profilePost{
			URL:     fileURL(c, h.media, p.Filename),
			Caption: p.Caption,
			Time:    p.CreatedAt,
			IsVideo: p.IsVideo,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"full_name":   profile.FullName,
		"bio":         profile.Bio,
		"location":    profile.Location,
		"profile_pic": nullableURL(c, h.media, profile.ProfilePic),
		"posts":       out,
	})
}

func (h *ProfileHandler) UploadProfilePic(c *gin.Context) {
	username := c.PostForm("username")
	fileHeader, err := c.FormFile("file")
	if err != nil || username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Upload failed"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Upload failed"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := h.profiles.UploadAvatar(c.Request.Context(), username, fileHeader.Filename, f, fileHeader.Size, contentType); err != nil {
		log.Printf("avatar upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated!"})
}
