package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsVideoFilename(t *testing.T) {
	cases := []struct {
		name  string
		video bool
	}{
		{"clip.mp4", true},
		{"clip.MP4", true},
		{"clip.mov", true},
		{"clip.avi", true},
		{"clip.webm", true},
		{"clip.MkV", true},
		{"photo.jpg", false},
		{"photo.png", false},
		{"noextension", false},
		{"", false},
		{"archive.mp4.zip", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.video, IsVideoFilename(tc.name), tc.name)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "photo.jpg", Sanitize("photo.jpg"))
	assert.Equal(t, "my_photo_1_.jpg", Sanitize("my photo (1).jpg"))

	// Path components and traversal attempts are flattened.
	assert.Equal(t, "passwd", Sanitize("../../etc/passwd"))
	assert.Equal(t, "evil.exe", Sanitize("c:\\windows\\evil.exe"))

	// Hidden-file prefixes are stripped.
	assert.Equal(t, "env", Sanitize(".env"))
}

func TestPostFilenameIncludesTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 42)
	name := PostFilename("amy", "beach.mp4", now)
	assert.Equal(t, "amy_1700000000000000042_beach.mp4", name)
	assert.True(t, IsVideoFilename(name))
}

func TestAvatarFilenameDeterministic(t *testing.T) {
	a := AvatarFilename("amy", "me.png")
	b := AvatarFilename("amy", "me.png")
	assert.Equal(t, "avatar_amy_me.png", a)
	assert.Equal(t, a, b)
}
