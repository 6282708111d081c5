package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesWelcomeNotifications(t *testing.T) {
	router, _, _ := setupRouter(t)

	doJSON(t, router, http.MethodPost, "/api/signup", map[string]string{
		"username": "alice", "password": "pw",
	})

	w := doGet(t, router, "/api/notifications/alice")
	require.Equal(t, http.StatusOK, w.Code)

	var notifs []map[string]any
	decodeBody(t, w, &notifs)
	require.Len(t, notifs, 2)

	messages := []string{}
	for _, n := range notifs {
		messages = append(messages, n["message"].(string))
	}
	assert.Contains(t, messages, "Welcome to Finstagram!")
	assert.Contains(t, messages, "Try uploading your first photo!")
}

func TestNotificationsScopedToUser(t *testing.T) {
	router, _, _ := setupRouter(t)

	doJSON(t, router, http.MethodPost, "/api/signup", map[string]string{
		"username": "alice", "password": "pw",
	})

	w := doGet(t, router, "/api/notifications/bob")
	assert.Equal(t, http.StatusOK, w.Code)

	var notifs []map[string]any
	decodeBody(t, w, &notifs)
	assert.Empty(t, notifs)
}
