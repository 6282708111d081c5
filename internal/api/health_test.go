package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootLiveness(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend is Running", w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doGet(t, router, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}
