package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
	"github.com/finstagram/backend/internal/testhelpers"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, storage.MediaStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	media := testhelpers.SetupTestMedia(t)

	profiles := service.NewProfileService(db, media)
	auth := service.NewAuthService(db)
	posts := service.NewPostService(db, media, profiles)
	messages := service.NewMessageService(db, profiles)
	notifications := service.NewNotificationService(db)

	router := gin.New()
	health := NewHealthHandler(db)
	router.GET("/", health.Root)

	group := router.Group("/api")
	group.GET("/health", health.Health)
	NewAuthHandler(auth).RegisterRoutes(group)
	NewProfileHandler(profiles, media).RegisterRoutes(group, nil)
	NewPostHandler(posts, media).RegisterRoutes(group, nil)
	NewMediaHandler(media).RegisterRoutes(group)
	NewMessageHandler(messages, media).RegisterRoutes(group)
	NewNotificationHandler(notifications).RegisterRoutes(group)

	return router, db, media
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doUpload posts a multipart form with a file part plus the given fields.
func doUpload(t *testing.T, router *gin.Engine, path, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write form field %s: %v", k, err)
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
